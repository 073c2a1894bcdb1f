package response

import (
	"time"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, User: UserResponse{Email: r.User.Email, Name: r.User.Name}}
}

type PrinterResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Brand     string            `json:"brand"`
	PriceINR  int64             `json:"price_inr"`
	Image     string            `json:"image"`
	Features  []string          `json:"features"`
	Specs     map[string]string `json:"specs"`
	CreatedAt *time.Time        `json:"created_at,omitempty"`
}

type PrinterListResponse struct {
	Items []PrinterResponse `json:"items"`
}

func FromPrinters(printers []entities.Printer) PrinterListResponse {
	items := make([]PrinterResponse, 0, len(printers))
	for _, p := range printers {
		item := PrinterResponse{
			ID:       p.ID,
			Title:    p.Title,
			Brand:    p.Brand,
			PriceINR: p.PriceINR,
			Image:    p.Image,
			Features: p.Features,
			Specs:    p.Specs,
		}
		if item.Features == nil {
			item.Features = []string{}
		}
		if item.Specs == nil {
			item.Specs = map[string]string{}
		}
		if !p.CreatedAt.IsZero() {
			createdAt := p.CreatedAt
			item.CreatedAt = &createdAt
		}
		items = append(items, item)
	}
	return PrinterListResponse{Items: items}
}

// QuoteSubmitResponse omits id when the submission was simulated.
type QuoteSubmitResponse struct {
	OK      bool   `json:"ok"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

const QuoteSubmittedMessage = "Quote submitted. Final price will be emailed (simulated)."

func FromSubmitQuoteResult(r usecase.SubmitQuoteResult) QuoteSubmitResponse {
	res := QuoteSubmitResponse{OK: true, Message: QuoteSubmittedMessage}
	if r.Persisted {
		res.ID = r.Quote.ID
	}
	return res
}

type QuoteResponse struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      *string        `json:"name"`
	Estimate  map[string]any `json:"estimate"`
	Notes     *string        `json:"notes"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
}

// FromQuote renders absent name and notes as null.
func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		ID:        q.ID,
		Email:     q.Email,
		Estimate:  q.Estimate,
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt,
	}
	if q.Name != "" {
		name := q.Name
		res.Name = &name
	}
	if q.Notes != "" {
		notes := q.Notes
		res.Notes = &notes
	}
	return res
}

func FromQuotes(quotes []entities.Quote) QuoteListResponse {
	items := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, FromQuote(q))
	}
	return QuoteListResponse{Items: items}
}
