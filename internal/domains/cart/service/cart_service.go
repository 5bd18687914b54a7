package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"

	"kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/internal/domains/cart/repository"
	menu "kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/internal/shared/i18n"
)

// Catalog resolves entry ids; implemented by the menu service
type Catalog interface {
	Get(id string) (menu.Entry, error)
}

// Config holds the cart settings the service needs
type Config struct {
	MaxQuantity int
	// LegacyKeyFormat is a fmt pattern with one %s for the session id;
	// empty disables the legacy lookup
	LegacyKeyFormat string
}

const lockStripes = 64

// CartService serves per-session carts. Each call hydrates the session's
// Store, applies one operation and lets the Store persist it. Calls for
// the same session are serialized within this process; across processes
// the last writer wins.
type CartService struct {
	storage repository.Storage
	catalog Catalog
	cfg     Config
	locks   [lockStripes]sync.Mutex
}

func NewCartService(storage repository.Storage, catalog Catalog, cfg Config) *CartService {
	if cfg.MaxQuantity <= 0 {
		cfg.MaxQuantity = model.MaxQuantity
	}
	return &CartService{
		storage: storage,
		catalog: catalog,
		cfg:     cfg,
	}
}

// SessionKey is the storage key of a session cart
func SessionKey(sessionID string) string {
	return fmt.Sprintf(model.CacheKeyCartBySession, sessionID)
}

func (s *CartService) lock(sessionID string) func() {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	m := &s.locks[h.Sum32()%lockStripes]
	m.Lock()
	return m.Unlock
}

func (s *CartService) open(ctx context.Context, sessionID string) *Store {
	opts := StoreOptions{MaxQuantity: s.cfg.MaxQuantity}
	if strings.Contains(s.cfg.LegacyKeyFormat, "%s") {
		opts.LegacyKey = fmt.Sprintf(s.cfg.LegacyKeyFormat, sessionID)
	}
	return OpenStore(ctx, s.storage, SessionKey(sessionID), opts)
}

// withStore runs fn against the hydrated cart of sessionID and returns
// the lines afterwards
func (s *CartService) withStore(ctx context.Context, sessionID string, fn func(*Store)) []model.LineItem {
	unlock := s.lock(sessionID)
	defer unlock()

	store := s.open(ctx, sessionID)
	if fn != nil {
		fn(store)
	}
	return store.Lines()
}

// GetCart returns the session's lines
func (s *CartService) GetCart(ctx context.Context, sessionID string) []model.LineItem {
	return s.withStore(ctx, sessionID, nil)
}

// AddItemResult carries the entry so callers can offer size options on
// OutcomeNeedsSizeSelection
type AddItemResult struct {
	AddResult
	Entry menu.Entry
	Lines []model.LineItem
}

// AddItem looks the entry up in the catalog and adds one unit of it.
// Catalog errors (unknown entry, menu not loaded) are returned as-is.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req model.AddItemRequest, lang i18n.Language) (*AddItemResult, error) {
	entry, err := s.catalog.Get(req.EntryID)
	if err != nil {
		return nil, err
	}

	result := &AddItemResult{Entry: entry}
	result.Lines = s.withStore(ctx, sessionID, func(st *Store) {
		result.AddResult = st.Add(ctx, entry, req.SizeIndex, lang)
	})
	return result, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (model.Outcome, []model.LineItem) {
	var outcome model.Outcome
	lines := s.withStore(ctx, sessionID, func(st *Store) {
		outcome = st.SetQuantity(ctx, lineID, quantity)
	})
	return outcome, lines
}

func (s *CartService) UpdateNote(ctx context.Context, sessionID, lineID, note string) (model.Outcome, []model.LineItem) {
	var outcome model.Outcome
	lines := s.withStore(ctx, sessionID, func(st *Store) {
		outcome = st.SetNote(ctx, lineID, note)
	})
	return outcome, lines
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, lineID string) (model.Outcome, []model.LineItem) {
	var outcome model.Outcome
	lines := s.withStore(ctx, sessionID, func(st *Store) {
		outcome = st.Remove(ctx, lineID)
	})
	return outcome, lines
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) model.Outcome {
	var outcome model.Outcome
	s.withStore(ctx, sessionID, func(st *Store) {
		outcome = st.Clear(ctx)
	})
	return outcome
}

// RestoreCart replaces the session cart with a browser snapshot
func (s *CartService) RestoreCart(ctx context.Context, sessionID string, snapshot []byte) (model.Outcome, []model.LineItem) {
	var outcome model.Outcome
	lines := s.withStore(ctx, sessionID, func(st *Store) {
		outcome = st.Restore(ctx, snapshot)
	})
	return outcome, lines
}
