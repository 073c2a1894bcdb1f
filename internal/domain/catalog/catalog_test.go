package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePrinters(t *testing.T) {
	printers, err := SamplePrinters()
	require.NoError(t, err)
	require.Len(t, printers, 3)

	x1 := printers[0]
	assert.Equal(t, "chromaprint-pro-x1", x1.ID)
	assert.Equal(t, "ChromaPrint Pro X1", x1.Title)
	assert.Equal(t, "ChromaPrint", x1.Brand)
	assert.Equal(t, int64(149999), x1.PriceINR)
	assert.Contains(t, x1.Features, "Dual extruder")
	assert.Equal(t, "0.4mm", x1.Specs["nozzle"])

	r1 := printers[2]
	assert.Equal(t, "130 x 80 x 160", r1.Specs["build_volume_mm"])
	_, hasNozzle := r1.Specs["nozzle"]
	assert.False(t, hasNozzle)
}

func TestSamplePrinters_ReturnsIndependentCopies(t *testing.T) {
	first, err := SamplePrinters()
	require.NoError(t, err)
	first[0].Specs["nozzle"] = "changed"

	second, err := SamplePrinters()
	require.NoError(t, err)
	assert.Equal(t, "0.4mm", second[0].Specs["nozzle"])
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("not: [valid"))
	require.Error(t, err)

	_, err = Parse([]byte("- brand: NoTitle\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id and title are required")
}
