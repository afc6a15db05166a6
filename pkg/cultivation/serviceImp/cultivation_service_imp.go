package serviceImp

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/cultivation/repository"
	"farmtrack/pkg/cultivation/service"
	"farmtrack/pkg/metrics"
)

type cultivationSvc struct {
	r       repository.CultivationRepository
	farmers repository.FarmerLinker
	tx      repository.TxRunner
	log     *zap.Logger
	m       *metrics.Metrics
	now     func() time.Time
	newID   func() string
}

type Option func(*cultivationSvc)

func WithLogger(l *zap.Logger) Option { return func(s *cultivationSvc) { s.log = l } }
func WithMetrics(m *metrics.Metrics) Option { return func(s *cultivationSvc) { s.m = m } }
func WithClock(now func() time.Time) Option { return func(s *cultivationSvc) { s.now = now } }

func NewCultivationService(r repository.CultivationRepository, farmers repository.FarmerLinker, tx repository.TxRunner, opts ...Option) service.CultivationService {
	s := &cultivationSvc{
		r:       r,
		farmers: farmers,
		tx:      tx,
		log:     zap.NewNop(),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *cultivationSvc) build(in service.CultivationFields) (*entities.Cultivation, error) {
	if missing := in.MissingRequired(); len(missing) > 0 {
		return nil, apperr.Validation("missing required fields", missing...)
	}
	return &entities.Cultivation{
		ID:             s.newID(),
		Crop:           strings.TrimSpace(*in.Crop),
		CropYear:       *in.CropYear,
		Season:         strings.TrimSpace(*in.Season),
		State:          strings.TrimSpace(*in.State),
		Area:           *in.Area,
		Production:     *in.Production,
		AnnualRainfall: *in.AnnualRainfall,
		Fertilizer:     strings.TrimSpace(*in.Fertilizer),
		Pesticide:      strings.TrimSpace(*in.Pesticide),
		Yield:          *in.Yield,
		CreatedAt:      s.now(),
	}, nil
}

func (s *cultivationSvc) Create(ctx context.Context, in service.CultivationFields) (*entities.Cultivation, error) {
	c, err := s.build(in)
	if err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddForFarmer writes the cultivation first, then links it. When the runner
// cannot roll back, a failed link deletes the cultivation again so no
// unowned record is left behind.
func (s *cultivationSvc) AddForFarmer(ctx context.Context, farmerID string, in service.CultivationFields) (*entities.Cultivation, error) {
	c, err := s.build(in)
	if err != nil {
		return nil, err
	}
	created := false
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.r.Create(ctx, c); err != nil {
			return err
		}
		created = true
		if _, err := s.farmers.FindByID(ctx, farmerID); err != nil {
			return err
		}
		return s.farmers.AppendCultivation(ctx, farmerID, c.ID, s.now())
	})
	if err != nil {
		if created && !s.tx.Atomic() {
			s.compensate(ctx, c.ID, farmerID, err)
		}
		return nil, err
	}
	s.log.Info("cultivation linked", zap.String("farmer_id", farmerID), zap.String("cultivation_id", c.ID))
	return c, nil
}

func (s *cultivationSvc) compensate(ctx context.Context, cultivationID, farmerID string, cause error) {
	ctx = context.WithoutCancel(ctx)
	if err := s.r.Delete(ctx, cultivationID); err != nil {
		s.log.Error("orphaned cultivation could not be removed",
			zap.String("cultivation_id", cultivationID),
			zap.String("farmer_id", farmerID),
			zap.NamedError("cause", cause),
			zap.Error(err))
		return
	}
	s.m.Compensation()
	s.log.Warn("cultivation removed after failed link",
		zap.String("cultivation_id", cultivationID),
		zap.String("farmer_id", farmerID),
		zap.NamedError("cause", cause))
}

func (s *cultivationSvc) ListAll(ctx context.Context) ([]entities.Cultivation, error) {
	return s.r.List(ctx)
}

// ListForFarmer skips list entries whose cultivation no longer exists.
func (s *cultivationSvc) ListForFarmer(ctx context.Context, farmerID string) ([]entities.Cultivation, error) {
	f, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	return s.r.FindByIDs(ctx, f.Cultivation)
}
