package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/repository"
	apperrors "github.com/clinicflow/ledger-api/pkg/errors"
	"github.com/clinicflow/ledger-api/pkg/logger"
)

type Service struct {
	repo   repository.SettingsRepository
	logger *logger.Logger
}

func NewService(repo repository.SettingsRepository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetSettings(ctx context.Context) (model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (s *Service) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := s.repo.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// SaveProfitSplit is the one save path with a hard business rule: the three
// percentages must sum to exactly 100. The underlying store accepts any
// values; the rule lives here, in the calling layer. Existing patient records
// keep the shares they were computed with — the split is never applied
// retroactively.
func (s *Service) SaveProfitSplit(ctx context.Context, req model.ProfitSplitRequest) (model.Settings, error) {
	if sum := req.DoctorPercent + req.ClinicPercent + req.PlatformPercent; sum != 100 {
		return model.Settings{}, apperrors.NewBadRequest(
			fmt.Sprintf("profit split percentages must sum to 100, got %d", sum), nil)
	}
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	settings.DoctorPercent = req.DoctorPercent
	settings.ClinicPercent = req.ClinicPercent
	settings.PlatformPercent = req.PlatformPercent
	if err := s.repo.Save(ctx, settings); err != nil {
		return model.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	s.logger.Info("profit split updated",
		"doctor", req.DoctorPercent,
		"clinic", req.ClinicPercent,
		"platform", req.PlatformPercent)
	return settings, nil
}

func (s *Service) AddDoctor(ctx context.Context, name string) error {
	return s.rosterChange(s.repo.AddDoctor(ctx, name), "doctor")
}

func (s *Service) RemoveDoctor(ctx context.Context, name string) error {
	if err := s.repo.RemoveDoctor(ctx, name); err != nil {
		return fmt.Errorf("failed to remove doctor: %w", err)
	}
	return nil
}

func (s *Service) AddService(ctx context.Context, name string) error {
	return s.rosterChange(s.repo.AddService(ctx, name), "service")
}

func (s *Service) RemoveService(ctx context.Context, name string) error {
	if err := s.repo.RemoveService(ctx, name); err != nil {
		return fmt.Errorf("failed to remove service: %w", err)
	}
	return nil
}

func (s *Service) rosterChange(err error, kind string) error {
	if errors.Is(err, repository.ErrDuplicateEntry) {
		return apperrors.NewConflict(fmt.Sprintf("%s already exists", kind), err)
	}
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", kind, err)
	}
	return nil
}
