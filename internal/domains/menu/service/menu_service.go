package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/internal/domains/menu/repository"
	"kahramana-backend/pkg/logger"
)

// MenuService keeps the normalized catalog in memory and swaps it
// atomically on reload or import.
type MenuService struct {
	repo            repository.Repository
	defaultCurrency string

	mu   sync.RWMutex
	menu *model.Menu
}

func NewMenuService(repo repository.Repository, defaultCurrency string) *MenuService {
	return &MenuService{
		repo:            repo,
		defaultCurrency: defaultCurrency,
	}
}

// Reload reads the document from the repository and replaces the catalog.
// The previous catalog stays in place when loading fails.
func (s *MenuService) Reload(ctx context.Context) (*model.Menu, error) {
	raw, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	menu, err := model.Normalize(raw, s.defaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.repo.Source(), err)
	}
	if menu.Skipped > 0 {
		logger.Warn("menu entries skipped", map[string]interface{}{
			"source":  s.repo.Source(),
			"skipped": menu.Skipped,
		})
	}

	s.mu.Lock()
	s.menu = menu
	s.mu.Unlock()

	logger.Info("menu loaded", map[string]interface{}{
		"source":     s.repo.Source(),
		"currency":   menu.Currency,
		"dishes":     len(menu.Dishes),
		"categories": len(menu.Categories),
	})
	return menu, nil
}

// Current returns the loaded catalog
func (s *MenuService) Current() (*model.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.menu == nil {
		return nil, model.ErrMenuNotLoaded
	}
	return s.menu, nil
}

// Get looks up a single entry by id
func (s *MenuService) Get(id string) (model.Entry, error) {
	menu, err := s.Current()
	if err != nil {
		return model.Entry{}, err
	}
	entry, ok := menu.Entry(id)
	if !ok {
		return model.Entry{}, model.ErrEntryNotFound
	}
	return entry, nil
}

// Currency is the catalog currency, or the configured default before the
// first load
func (s *MenuService) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.menu != nil {
		return s.menu.Currency
	}
	if s.defaultCurrency != "" {
		return s.defaultCurrency
	}
	return model.DefaultCurrency
}

// replace persists the new catalog and then swaps it in
func (s *MenuService) replace(ctx context.Context, menu *model.Menu) error {
	doc, err := json.MarshalIndent(menu, "", "  ")
	if err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return err
	}

	s.mu.Lock()
	s.menu = menu
	s.mu.Unlock()
	return nil
}
