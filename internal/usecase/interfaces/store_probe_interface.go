package interfaces

import "context"

// StoreStatus is the document store report served by the diagnostics route.
type StoreStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type IStoreProbe interface {
	Probe(ctx context.Context) StoreStatus
}
