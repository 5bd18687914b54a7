package service

import (
	"context"
	"errors"
	"sync"

	"kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/internal/domains/cart/repository"
	menu "kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/internal/shared/i18n"
	"kahramana-backend/pkg/logger"
)

// StoreOptions configure how a Store hydrates and persists
type StoreOptions struct {
	// LegacyKey is tried when nothing is stored under the primary key;
	// a cart found there is rewritten under the primary key.
	LegacyKey   string
	MaxQuantity int
}

// Store owns one cart: an ordered collection of lines persisted as a whole
// under a single key after every mutation. Operations never return errors;
// storage failures are logged and the in-memory cart stays authoritative.
type Store struct {
	mu      sync.Mutex
	storage repository.Storage
	key     string
	opts    StoreOptions
	lines   []model.LineItem
}

// OpenStore hydrates the cart stored under key. Missing or corrupt data
// yields an empty cart.
func OpenStore(ctx context.Context, storage repository.Storage, key string, opts StoreOptions) *Store {
	if opts.MaxQuantity <= 0 {
		opts.MaxQuantity = model.MaxQuantity
	}
	s := &Store{
		storage: storage,
		key:     key,
		opts:    opts,
		lines:   []model.LineItem{},
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	data, err := s.storage.Load(ctx, s.key)
	fromLegacy := false
	if errors.Is(err, model.ErrCartNotFound) && s.opts.LegacyKey != "" {
		data, err = s.storage.Load(ctx, s.opts.LegacyKey)
		fromLegacy = err == nil
	}
	if err != nil {
		if !errors.Is(err, model.ErrCartNotFound) {
			logger.Warn("cart load failed, starting empty", map[string]interface{}{
				"key":   s.key,
				"error": err.Error(),
			})
		}
		return
	}

	lines, err := model.DecodeLines(data, s.opts.MaxQuantity)
	if err != nil {
		logger.Warn("discarding corrupt cart", map[string]interface{}{
			"key":   s.key,
			"error": err.Error(),
		})
		return
	}
	s.lines = lines

	if fromLegacy {
		s.persist(ctx)
		if err := s.storage.Delete(ctx, s.opts.LegacyKey); err != nil {
			logger.Warn("legacy cart cleanup failed", map[string]interface{}{
				"key":   s.opts.LegacyKey,
				"error": err.Error(),
			})
		}
	}
}

// persist writes the full snapshot; failures are swallowed
func (s *Store) persist(ctx context.Context) {
	data, err := model.EncodeLines(s.lines)
	if err != nil {
		logger.Error("cart encode failed", err)
		return
	}
	if err := s.storage.Save(ctx, s.key, data); err != nil {
		logger.Warn("cart write failed, keeping in-memory state", map[string]interface{}{
			"key":   s.key,
			"error": err.Error(),
		})
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.lines {
		if s.lines[i].ID == id {
			return i
		}
	}
	return -1
}

// AddResult reports the outcome of Add. LineID is set for Added and
// Merged.
type AddResult struct {
	Outcome model.Outcome
	LineID  string
}

// Add puts one unit of entry in the cart. A line with the same composite
// id is incremented (capped at MaxQuantity); otherwise a new line with
// quantity 1 is appended. Variant entries need a valid sizeIndex.
func (s *Store) Add(ctx context.Context, entry menu.Entry, sizeIndex *int, lang i18n.Language) AddResult {
	if entry.ID == "" {
		return AddResult{Outcome: model.OutcomeRejected}
	}

	resolved, err := model.ResolvePricing(entry, sizeIndex, lang)
	if err != nil {
		return AddResult{Outcome: model.OutcomeNeedsSizeSelection}
	}

	id := model.LineID(entry.ID, resolved.SizeIndex)

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		if s.lines[i].Quantity < s.opts.MaxQuantity {
			s.lines[i].Quantity++
		}
		s.persist(ctx)
		return AddResult{Outcome: model.OutcomeMerged, LineID: id}
	}

	name := entry.Name.Resolve(lang)
	if name == "" {
		name = entry.ID
	}
	s.lines = append(s.lines, model.LineItem{
		ID:              id,
		Name:            name,
		Price:           resolved.Price,
		PriceLabel:      resolved.PriceLabel,
		IncludedInTotal: resolved.IncludedInTotal,
		Quantity:        1,
		Image:           entry.Image,
		SizeIndex:       resolved.SizeIndex,
		SizeLabel:       resolved.SizeLabel,
	})
	s.persist(ctx)
	return AddResult{Outcome: model.OutcomeAdded, LineID: id}
}

// Remove deletes the line with id
func (s *Store) Remove(ctx context.Context, id string) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, id)
}

func (s *Store) removeLocked(ctx context.Context, id string) model.Outcome {
	i := s.indexOf(id)
	if i < 0 {
		return model.OutcomeNotFound
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persist(ctx)
	return model.OutcomeRemoved
}

// SetQuantity sets the quantity of a line; n <= 0 removes it and values
// above MaxQuantity are capped
func (s *Store) SetQuantity(ctx context.Context, id string, n int) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return s.removeLocked(ctx, id)
	}
	i := s.indexOf(id)
	if i < 0 {
		return model.OutcomeNotFound
	}
	if n > s.opts.MaxQuantity {
		n = s.opts.MaxQuantity
	}
	s.lines[i].Quantity = n
	s.persist(ctx)
	return model.OutcomeUpdated
}

// SetNote replaces the note of a line
func (s *Store) SetNote(ctx context.Context, id, note string) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.OutcomeNotFound
	}
	s.lines[i].Note = note
	s.persist(ctx)
	return model.OutcomeUpdated
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []model.LineItem{}
	s.persist(ctx)
	return model.OutcomeCleared
}

// Restore replaces the cart with a client snapshot. The snapshot goes
// through the same validation as hydration: a corrupt one empties the cart.
func (s *Store) Restore(ctx context.Context, snapshot []byte) model.Outcome {
	lines, err := model.DecodeLines(snapshot, s.opts.MaxQuantity)
	if err != nil {
		logger.Warn("discarding corrupt cart snapshot", map[string]interface{}{
			"key":   s.key,
			"error": err.Error(),
		})
		lines = []model.LineItem{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	s.persist(ctx)
	return model.OutcomeRestored
}

// Lines returns a copy of the lines in insertion order
func (s *Store) Lines() []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneLines(s.lines)
}

// Totals recomputes the totals from the current lines
func (s *Store) Totals() model.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.ComputeTotals(s.lines)
}
