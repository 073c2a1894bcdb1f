package entities

import "time"

// Printer is a catalog entry of the storefront.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Specs is a free-form attribute bag (build volume, layer height, nozzle...),
// its keys differ between printer families.
type Printer struct {
	ID        string            `json:"id" yaml:"id"`
	Title     string            `json:"title" yaml:"title"`
	Brand     string            `json:"brand" yaml:"brand"`
	PriceINR  int64             `json:"price_inr" yaml:"price_inr"`
	Image     string            `json:"image" yaml:"image"`
	Features  []string          `json:"features" yaml:"features"`
	Specs     map[string]string `json:"specs" yaml:"specs"`
	CreatedAt time.Time         `json:"created_at" yaml:"-"`
}
