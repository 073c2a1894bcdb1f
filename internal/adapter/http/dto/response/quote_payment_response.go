package response

import (
	"time"

	"chromaprint/internal/domain/entities"
)

type QuotePaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		Amount:       p.Amount,
		Currency:     "INR",
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}
