package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"alcyxob/training-periodization/internal/domain"
	"alcyxob/training-periodization/internal/metrics"
	"alcyxob/training-periodization/internal/periodization"
	"alcyxob/training-periodization/internal/repository"
	"alcyxob/training-periodization/internal/storage"

	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrMacroCyclePersistence  = errors.New("failed to persist macrocycle")
	ErrMacroCycleNotFound     = errors.New("macrocycle not found")
	ErrMacroCycleAccessDenied = errors.New("access denied to this macrocycle")
	ErrExportUnavailable      = errors.New("plan export is not configured")
	ErrExportFailed           = errors.New("failed to export macrocycle")
)

// CreateMacroCycleInput is the generation request accepted by the service.
type CreateMacroCycleInput = periodization.Request

// ExportResult describes an uploaded plan export.
type ExportResult struct {
	ObjectKey   string
	DownloadURL string
	ExpiresAt   time.Time
}

// MacroCycleServiceOptions holds request defaults and export settings.
type MacroCycleServiceOptions struct {
	DefaultType             domain.PeriodizationType
	DefaultIncludeNutrition bool
	ExportExpiry            time.Duration
}

// --- Service Interface ---
type MacroCycleService interface {
	CreateMacroCycle(ctx context.Context, input CreateMacroCycleInput) (*domain.MacroCycle, error)
	// PreviewMacroCycle builds a plan without persisting it.
	PreviewMacroCycle(ctx context.Context, input CreateMacroCycleInput) (*domain.MacroCycle, error)
	GetMacroCycle(ctx context.Context, userID, macroCycleID string) (*domain.MacroCycle, error)
	ListMacroCycles(ctx context.Context, userID string) ([]domain.MacroCycle, error)
	ActivateMacroCycle(ctx context.Context, userID, macroCycleID string) (*domain.MacroCycle, error)
	ExportMacroCycle(ctx context.Context, userID, macroCycleID string) (*ExportResult, error)
}

// --- Service Implementation ---

type macroCycleService struct {
	builder *periodization.Builder
	repo    repository.MacroCycleRepository
	exports storage.ExportStorage // nil disables export
	opts    MacroCycleServiceOptions
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewMacroCycleService creates a new instance of macroCycleService.
// exports, logger and m may be nil.
func NewMacroCycleService(
	builder *periodization.Builder,
	repo repository.MacroCycleRepository,
	exports storage.ExportStorage,
	opts MacroCycleServiceOptions,
	logger *zap.Logger,
	m *metrics.Metrics,
) MacroCycleService {
	if builder == nil {
		builder = periodization.NewBuilder()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ExportExpiry <= 0 {
		opts.ExportExpiry = storage.DefaultPresignedURLExpiry
	}
	return &macroCycleService{
		builder: builder,
		repo:    repo,
		exports: exports,
		opts:    opts,
		logger:  logger,
		metrics: m,
	}
}

func (s *macroCycleService) applyDefaults(input CreateMacroCycleInput) CreateMacroCycleInput {
	if input.PeriodizationType == "" {
		input.PeriodizationType = s.opts.DefaultType
	}
	if input.IncludeNutrition == nil {
		include := s.opts.DefaultIncludeNutrition
		input.IncludeNutrition = &include
	}
	return input
}

// CreateMacroCycle builds the full plan and stores it in a single Save call.
// When Save fails the built plan is discarded.
func (s *macroCycleService) CreateMacroCycle(ctx context.Context, input CreateMacroCycleInput) (*domain.MacroCycle, error) {
	started := time.Now()
	goal, level := string(input.PrimaryGoal), string(input.TrainingLevel)

	macro, err := s.builder.Build(s.applyDefaults(input))
	if err != nil {
		s.metrics.ObserveGeneration(goal, level, metrics.StatusInvalid, time.Since(started))
		return nil, err
	}

	record, err := periodization.ToRecord(macro)
	if err != nil {
		s.metrics.ObserveGeneration(goal, level, metrics.StatusPersistFailed, time.Since(started))
		return nil, fmt.Errorf("%w: %w", ErrMacroCyclePersistence, err)
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("failed to save macrocycle",
			zap.String("macroCycleId", macro.ID),
			zap.String("userId", macro.UserID),
			zap.Error(err),
		)
		s.metrics.ObserveGeneration(goal, level, metrics.StatusPersistFailed, time.Since(started))
		return nil, fmt.Errorf("%w: %w", ErrMacroCyclePersistence, err)
	}

	s.logger.Info("macrocycle created",
		zap.String("macroCycleId", macro.ID),
		zap.String("userId", macro.UserID),
		zap.String("goal", goal),
		zap.String("level", level),
		zap.Int("totalWeeks", macro.TotalWeeks),
		zap.Int("mesoCycles", len(macro.MesoCycles)),
	)
	s.metrics.ObserveGeneration(goal, level, metrics.StatusOK, time.Since(started))
	return macro, nil
}

func (s *macroCycleService) PreviewMacroCycle(ctx context.Context, input CreateMacroCycleInput) (*domain.MacroCycle, error) {
	return s.builder.Build(s.applyDefaults(input))
}

// GetMacroCycle loads a plan and checks it belongs to userID.
func (s *macroCycleService) GetMacroCycle(ctx context.Context, userID, macroCycleID string) (*domain.MacroCycle, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(macroCycleID) == "" {
		return nil, errors.New("user ID and macrocycle ID are required")
	}

	record, err := s.repo.GetByID(ctx, macroCycleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMacroCycleNotFound
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrMacroCycleAccessDenied
	}
	return periodization.FromRecord(record)
}

func (s *macroCycleService) ListMacroCycles(ctx context.Context, userID string) ([]domain.MacroCycle, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user ID is required")
	}

	records, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	plans := make([]domain.MacroCycle, 0, len(records))
	for i := range records {
		macro, err := periodization.FromRecord(&records[i])
		if err != nil {
			s.logger.Warn("skipping undecodable macrocycle record",
				zap.String("macroCycleId", records[i].ID),
				zap.Error(err),
			)
			continue
		}
		plans = append(plans, *macro)
	}
	return plans, nil
}

// ActivateMacroCycle makes the plan the user's only active one.
func (s *macroCycleService) ActivateMacroCycle(ctx context.Context, userID, macroCycleID string) (*domain.MacroCycle, error) {
	macro, err := s.GetMacroCycle(ctx, userID, macroCycleID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetActive(ctx, userID, macroCycleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMacroCycleNotFound
		}
		s.logger.Error("failed to activate macrocycle",
			zap.String("macroCycleId", macroCycleID),
			zap.String("userId", userID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("macrocycle activated", zap.String("macroCycleId", macroCycleID), zap.String("userId", userID))
	macro.IsActive = true
	return macro, nil
}

// ExportMacroCycle uploads the plan as JSON and returns a presigned download link.
func (s *macroCycleService) ExportMacroCycle(ctx context.Context, userID, macroCycleID string) (*ExportResult, error) {
	if s.exports == nil {
		return nil, ErrExportUnavailable
	}

	macro, err := s.GetMacroCycle(ctx, userID, macroCycleID)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(macro, "", "  ")
	if err != nil {
		s.metrics.IncExport(metrics.StatusExportFailed)
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	key := storage.ExportKey(userID, macroCycleID)
	if err := s.exports.PutObject(ctx, key, "application/json", body); err != nil {
		s.metrics.IncExport(metrics.StatusExportFailed)
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	url, err := s.exports.GeneratePresignedDownloadURL(ctx, key, s.opts.ExportExpiry)
	if err != nil {
		// The object is unreachable without a link.
		if delErr := s.exports.DeleteObject(ctx, key); delErr != nil {
			s.logger.Warn("failed to clean up export object", zap.String("key", key), zap.Error(delErr))
		}
		s.metrics.IncExport(metrics.StatusExportFailed)
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	s.metrics.IncExport(metrics.StatusOK)
	return &ExportResult{
		ObjectKey:   key,
		DownloadURL: url,
		ExpiresAt:   time.Now().UTC().Add(s.opts.ExportExpiry),
	}, nil
}
