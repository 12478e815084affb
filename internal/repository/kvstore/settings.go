package kvstore

import (
	"context"
	"fmt"

	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/repository"
	"github.com/clinicflow/ledger-api/internal/store"
)

type SettingsRepository struct {
	s *Store
}

// Get returns the saved settings, or the built-in defaults when nothing has
// been saved yet or the persisted record is unreadable.
func (r *SettingsRepository) Get(ctx context.Context) (model.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.loadSettings(ctx), nil
}

// Save overwrites the whole record. The store accepts whatever it is given;
// the percent-sum rule is enforced on the profit-split save path by the
// calling layer.
func (r *SettingsRepository) Save(ctx context.Context, settings model.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.save(ctx, "settings_save", store.KeySettings, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (r *SettingsRepository) AddDoctor(ctx context.Context, name string) error {
	return r.addRosterEntry(ctx, name, true)
}

func (r *SettingsRepository) RemoveDoctor(ctx context.Context, name string) error {
	return r.removeRosterEntry(ctx, name, true)
}

func (r *SettingsRepository) AddService(ctx context.Context, name string) error {
	return r.addRosterEntry(ctx, name, false)
}

func (r *SettingsRepository) RemoveService(ctx context.Context, name string) error {
	return r.removeRosterEntry(ctx, name, false)
}

func (r *SettingsRepository) addRosterEntry(ctx context.Context, name string, doctors bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	settings := r.s.loadSettings(ctx)
	roster := settings.Services
	if doctors {
		roster = settings.Doctors
	}
	for _, existing := range roster {
		if existing == name {
			return repository.ErrDuplicateEntry
		}
	}
	if doctors {
		settings.Doctors = append(settings.Doctors, name)
	} else {
		settings.Services = append(settings.Services, name)
	}
	if err := r.s.save(ctx, "settings_save", store.KeySettings, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// removeRosterEntry is a no-op when the name is absent.
func (r *SettingsRepository) removeRosterEntry(ctx context.Context, name string, doctors bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	settings := r.s.loadSettings(ctx)
	remove := func(roster []string) []string {
		kept := roster[:0]
		for _, existing := range roster {
			if existing != name {
				kept = append(kept, existing)
			}
		}
		return kept
	}
	if doctors {
		settings.Doctors = remove(settings.Doctors)
	} else {
		settings.Services = remove(settings.Services)
	}
	if err := r.s.save(ctx, "settings_save", store.KeySettings, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
