package repository

import (
	"context"

	"farmtrack/entities"
)

type UserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
