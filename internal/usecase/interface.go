package usecase

import (
	"context"

	"boletim-audit/internal/domain"
)

// TableRepository defines the interface for fetching raw extracted tables.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go TableRepository
type TableRepository interface {
	// GetMeasurementTables returns one raw table per measurement document,
	// keyed by document name.
	GetMeasurementTables(ctx context.Context, paths []string) (map[string]domain.RawTable, error)

	// GetContractTable returns the contract price table. An empty path
	// selects the built-in fallback reference table.
	GetContractTable(ctx context.Context, path string) (domain.RawTable, error)

	// GetSupportTable returns the optional supporting-evidence table.
	GetSupportTable(ctx context.Context, path string) (domain.RawTable, error)
}
