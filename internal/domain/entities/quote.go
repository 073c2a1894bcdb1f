package entities

import "time"

// QuoteStatus represents the lifecycle of a quote request.
type QuoteStatus string

const (
	QuoteStatusSubmitted QuoteStatus = "submitted"
	QuoteStatusPaid      QuoteStatus = "paid"
)

// Quote is a customer's request for a final price, carrying the estimate the
// customer saw when submitting it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email, sort key created_at
//
// Estimate is stored as received. The backend only reads `estimated_cost`
// from it, when a quote is paid.
type Quote struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name,omitempty"`
	Estimate  map[string]any `json:"estimate"`
	Notes     string         `json:"notes,omitempty"`
	Status    QuoteStatus    `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// EstimatedCost returns the estimated_cost recorded in the quote's estimate.
func (q Quote) EstimatedCost() (float64, bool) {
	v, ok := q.Estimate["estimated_cost"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, n > 0
	case float32:
		return float64(n), n > 0
	case int:
		return float64(n), n > 0
	case int64:
		return float64(n), n > 0
	default:
		return 0, false
	}
}
