package repository

import (
	"context"
	"time"

	"farmtrack/entities"
)

type CultivationRepository interface {
	Create(ctx context.Context, c *entities.Cultivation) error
	Delete(ctx context.Context, id string) error
	// List returns every cultivation in insertion order.
	List(ctx context.Context) ([]entities.Cultivation, error)
	// FindByIDs returns the records in the order of ids. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]entities.Cultivation, error)
}

// FarmerLinker is the part of the farmer store that owns the cultivation list.
type FarmerLinker interface {
	FindByID(ctx context.Context, id string) (*entities.Farmer, error)
	AppendCultivation(ctx context.Context, farmerID, cultivationID string, at time.Time) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	// Atomic reports whether a failed fn leaves no writes behind.
	Atomic() bool
}
