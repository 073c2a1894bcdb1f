// Package catalog holds the sample printer catalog shipped with the binary.
package catalog

import (
	_ "embed"
	"fmt"

	"chromaprint/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed printers.yaml
var samplePrintersYAML []byte

// SamplePrinters decodes the embedded catalog. Each call returns fresh
// slices and maps, callers may mutate the result.
func SamplePrinters() ([]entities.Printer, error) {
	return Parse(samplePrintersYAML)
}

// Parse decodes a YAML list of printers.
func Parse(data []byte) ([]entities.Printer, error) {
	var printers []entities.Printer
	if err := yaml.Unmarshal(data, &printers); err != nil {
		return nil, fmt.Errorf("catalog.Parse: decode printers: %w", err)
	}
	for i, p := range printers {
		if p.ID == "" || p.Title == "" {
			return nil, fmt.Errorf("catalog.Parse: printer #%d: id and title are required", i)
		}
	}
	return printers, nil
}
