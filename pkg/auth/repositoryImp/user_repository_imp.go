package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmtrack/database"
	"farmtrack/entities"
	"farmtrack/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(ctx context.Context, u *entities.User) error {
	return database.Translate(database.Conn(ctx, r.db).Create(u).Error, "create user", "user")
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	if err := database.Conn(ctx, r.db).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, database.Translate(err, "find user", "user")
	}
	return &u, nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var u entities.User
	if err := database.Conn(ctx, r.db).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, database.Translate(err, "find user", "user")
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]entities.User, error) {
	out := []entities.User{}
	if err := database.Conn(ctx, r.db).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, database.Translate(err, "list users", "user")
	}
	return out, nil
}
