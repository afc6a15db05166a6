package serviceImp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/auth/repository"
	"farmtrack/pkg/auth/service"
	"farmtrack/pkg/auth/token"
)

const bcryptCost = 10

type authSvc struct {
	r      repository.UserRepository
	secret string
	ttl    time.Duration
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(r repository.UserRepository, secret string, ttl time.Duration, log *zap.Logger) service.AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &authSvc{r: r, secret: secret, ttl: ttl, log: log, now: func() time.Time { return time.Now().UTC() }}
}

func (s *authSvc) Register(ctx context.Context, in service.RegisterInput) (*entities.User, error) {
	u := &entities.User{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Role:        entities.Role(strings.TrimSpace(in.Role)),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		CreatedAt:   s.now(),
	}
	if u.Role == "" {
		u.Role = entities.RoleUser
	}
	var bad []string
	if u.Name == "" {
		bad = append(bad, "name")
	}
	if !strings.Contains(u.Email, "@") {
		bad = append(bad, "email")
	}
	if len(in.Password) < 6 || len(in.Password) > 72 {
		bad = append(bad, "password")
	}
	if !u.Role.Valid() {
		bad = append(bad, "role")
	}
	if len(bad) > 0 {
		return nil, apperr.Validation("invalid fields", bad...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Storage("hash password", err)
	}
	u.PasswordHash = string(hash)
	if err := s.r.Create(ctx, u); err != nil {
		if apperr.Is(err, apperr.KindConflict) {
			return nil, apperr.Conflict("email already registered", err)
		}
		return nil, err
	}
	s.log.Info("user registered", zap.String("id", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}

func (s *authSvc) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	u, err := s.r.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if apperr.Is(err, apperr.KindNotFound) {
		return nil, "", apperr.Unauthorized("invalid credentials")
	}
	if err != nil {
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", apperr.Unauthorized("invalid credentials")
		}
		return nil, "", apperr.Storage("compare password", err)
	}
	tok, err := token.Issue(s.secret, u.ID, string(u.Role), s.ttl, s.now())
	if err != nil {
		return nil, "", apperr.Storage("issue token", err)
	}
	return u, tok, nil
}

func (s *authSvc) List(ctx context.Context) ([]entities.User, error) {
	return s.r.List(ctx)
}

func (s *authSvc) Get(ctx context.Context, id string) (*entities.User, error) {
	return s.r.FindByID(ctx, id)
}
