package repository

import (
	"context"
	"time"

	"farmtrack/entities"
)

type FarmerRepository interface {
	Create(ctx context.Context, f *entities.Farmer) error
	FindByID(ctx context.Context, id string) (*entities.Farmer, error)
	// List returns farmers newest first.
	List(ctx context.Context) ([]entities.Farmer, error)
	// Update persists every mutable field; id, cultivation and createdAt are left untouched.
	Update(ctx context.Context, f *entities.Farmer) error
	Delete(ctx context.Context, id string) error
	IdentityExists(ctx context.Context, id string) (bool, error)
	AppendCultivation(ctx context.Context, farmerID, cultivationID string, at time.Time) error
}
