package entities

import "testing"

func TestQuote_EstimatedCost(t *testing.T) {
	cases := []struct {
		name     string
		estimate map[string]any
		want     float64
		ok       bool
	}{
		{name: "json number", estimate: map[string]any{"estimated_cost": 536.25}, want: 536.25, ok: true},
		{name: "integer", estimate: map[string]any{"estimated_cost": int64(150)}, want: 150, ok: true},
		{name: "missing", estimate: map[string]any{"currency": "INR"}, ok: false},
		{name: "string", estimate: map[string]any{"estimated_cost": "150"}, ok: false},
		{name: "zero", estimate: map[string]any{"estimated_cost": 0.0}, ok: false},
		{name: "nil estimate", estimate: nil, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Quote{Estimate: tc.estimate}.EstimatedCost()
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
