package request

import (
	"encoding/json"

	"chromaprint/internal/usecase"
)

// QuoteRequest is the payload of POST /api/quote. Estimate is the estimator
// response the customer accepted, stored as received.
type QuoteRequest struct {
	Email    string         `json:"email" binding:"required"`
	Name     *string        `json:"name"`
	Estimate map[string]any `json:"estimate" binding:"required"`
	Notes    *string        `json:"notes"`
}

func (r QuoteRequest) ToCommand() usecase.SubmitQuoteCommand {
	cmd := usecase.SubmitQuoteCommand{Email: r.Email, Estimate: r.Estimate}
	if r.Name != nil {
		cmd.Name = *r.Name
	}
	if r.Notes != nil {
		cmd.Notes = *r.Notes
	}
	return cmd
}

// QuotePaymentCreateRequest is the payload of POST /api/quote/{quote_id}/payments.
//
// `mp_payload` is forwarded to Mercado Pago after enrichment; the amount is
// always taken from the quote.
type QuotePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
