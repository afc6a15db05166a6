package serviceImp

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/farmer/repository"
	"farmtrack/pkg/farmer/service"
	"farmtrack/pkg/identity"
	"farmtrack/pkg/metrics"
)

type farmerSvc struct {
	r   repository.FarmerRepository
	gen *identity.Generator
	log *zap.Logger
	m   *metrics.Metrics
	now func() time.Time
}

type Option func(*farmerSvc)

func WithLogger(l *zap.Logger) Option { return func(s *farmerSvc) { s.log = l } }
func WithMetrics(m *metrics.Metrics) Option { return func(s *farmerSvc) { s.m = m } }
func WithClock(now func() time.Time) Option { return func(s *farmerSvc) { s.now = now } }

func NewFarmerService(r repository.FarmerRepository, gen *identity.Generator, opts ...Option) service.FarmerService {
	s := &farmerSvc{
		r:   r,
		gen: gen,
		log: zap.NewNop(),
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(s)
	}
	if s.gen == nil {
		s.gen = identity.New(identity.DefaultMaxAttempts)
	}
	return s
}

func (s *farmerSvc) Create(ctx context.Context, in service.FarmerFields) (*entities.Farmer, error) {
	if missing := in.MissingRequired(); len(missing) > 0 {
		return nil, apperr.Validation("missing required fields", missing...)
	}
	now := s.now()
	f := &entities.Farmer{
		Status:      entities.StatusActive,
		Cultivation: datatypes.JSONSlice[string]{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	bad := apply(f, in.Registration())
	if len(bad) == 0 {
		bad = validate(f)
	}
	if len(bad) > 0 {
		return nil, apperr.Validation("invalid fields", bad...)
	}
	if identity.Base(f.Name) == "" {
		return nil, apperr.Validation("invalid fields", "name")
	}
	if err := s.insert(ctx, f); err != nil {
		return nil, err
	}
	s.log.Info("farmer registered", zap.String("id", f.ID), zap.String("district", f.District))
	return f, nil
}

// insert allocates an id and writes f. The store's unique key is the final
// arbiter: a duplicate-key rejection spends one attempt of the generator's
// budget and draws a new id.
func (s *farmerSvc) insert(ctx context.Context, f *entities.Farmer) error {
	collisions := 0
	id, err := s.gen.Claim(ctx, f.Name, s.r, func(id string) (bool, error) {
		f.ID = id
		err := s.r.Create(ctx, f)
		if apperr.Is(err, apperr.KindConflict) {
			collisions++
			s.m.IdentityAttempt("collision")
			s.log.Debug("farmer id taken on insert, retrying", zap.String("id", id), zap.Int("collisions", collisions))
			return true, nil
		}
		return false, err
	})
	if err == nil {
		f.ID = id
		s.m.IdentityAttempt("ok")
		return nil
	}
	f.ID = ""
	if !errors.Is(err, identity.ErrExhausted) {
		return err
	}
	s.m.IdentityAttempt("exhausted")
	s.log.Error("farmer id allocation exhausted",
		zap.String("name", f.Name),
		zap.Int("max_attempts", s.gen.MaxAttempts))
	return apperr.IdentityExhausted(identity.ErrExhausted)
}

func (s *farmerSvc) List(ctx context.Context) ([]entities.Farmer, error) {
	return s.r.List(ctx)
}

func (s *farmerSvc) Get(ctx context.Context, id string) (*entities.Farmer, error) {
	return s.r.FindByID(ctx, id)
}

func (s *farmerSvc) Update(ctx context.Context, id string, patch service.FarmerFields) (*entities.Farmer, error) {
	f, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	bad := apply(f, patch)
	if len(bad) == 0 {
		bad = validate(f)
	}
	if len(bad) > 0 {
		return nil, apperr.Validation("invalid fields", bad...)
	}
	f.UpdatedAt = s.now()
	if err := s.r.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete leaves the farmer's cultivations in place.
func (s *farmerSvc) Delete(ctx context.Context, id string) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("farmer deleted", zap.String("id", id))
	return nil
}
