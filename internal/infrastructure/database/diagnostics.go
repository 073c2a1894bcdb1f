package database

import (
	"context"
	"fmt"

	"chromaprint/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const maxDiagnosticErrLen = 80

// StoreProbe reports document store health for the diagnostics endpoint.
type StoreProbe struct {
	api      dynamodb.ListTablesAPIClient
	name     string
	endpoint string
}

var _ interfaces.IStoreProbe = (*StoreProbe)(nil)

// NewStoreProbe returns a probe. A nil api describes a process running
// without a document store.
func NewStoreProbe(api dynamodb.ListTablesAPIClient, region, endpoint string) *StoreProbe {
	return &StoreProbe{api: api, name: fmt.Sprintf("dynamodb/%s", region), endpoint: endpoint}
}

func (p *StoreProbe) Probe(ctx context.Context) interfaces.StoreStatus {
	status := interfaces.StoreStatus{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if p == nil || p.api == nil {
		return status
	}

	status.Database = "✅ Available"
	if p.endpoint != "" {
		status.DatabaseURL = "✅ Set"
	}
	status.DatabaseName = p.name
	status.ConnectionStatus = "Connected"

	names, err := ListTableNames(ctx, p.api)
	if err != nil {
		status.Database = "⚠️ Connected but Error: " + truncate(err.Error(), maxDiagnosticErrLen)
		return status
	}
	status.Collections = append(status.Collections, names...)
	status.Database = "✅ Connected & Working"
	return status
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
