package service

import (
	"context"

	"farmtrack/entities"
)

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*entities.User, error)
	// Login returns the user and a signed bearer token.
	Login(ctx context.Context, email, password string) (*entities.User, string, error)
	List(ctx context.Context) ([]entities.User, error)
	Get(ctx context.Context, id string) (*entities.User, error)
}

type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
}
