package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

const DefaultCurrency = "BHD"

type Category struct {
	ID   string        `json:"id"`
	Name LocalizedText `json:"name"`
}

// Menu is the normalized catalog document
type Menu struct {
	Currency   string     `json:"currency"`
	Categories []Category `json:"categories"`
	Dishes     []Entry    `json:"dishes"`

	// Skipped counts dishes dropped by SetDishes (no id or repeated id)
	Skipped int `json:"-"`

	index map[string]int
}

type menuJSON struct {
	Currency   json.RawMessage `json:"currency"`
	Categories json.RawMessage `json:"categories"`
	Dishes     json.RawMessage `json:"dishes"`
}

// Normalize decodes a catalog document without trusting its shape:
//   - non-array categories/dishes become empty
//   - a missing currency falls back to defaultCurrency, then BHD
//   - dishes without an id are skipped, duplicate ids keep the first
//
// Only a payload that is not a JSON object returns an error.
func Normalize(raw []byte, defaultCurrency string) (*Menu, error) {
	var doc menuJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, ErrInvalidDocument
	}

	m := &Menu{}
	var currency string
	if json.Unmarshal(doc.Currency, &currency) == nil {
		m.Currency = strings.TrimSpace(currency)
	}
	if m.Currency == "" {
		m.Currency = defaultCurrency
	}
	if m.Currency == "" {
		m.Currency = DefaultCurrency
	}

	for _, item := range rawArray(doc.Categories) {
		var c struct {
			ID   json.RawMessage `json:"id"`
			Name LocalizedText   `json:"name"`
		}
		if err := json.Unmarshal(item, &c); err != nil {
			continue
		}
		id := scalarString(c.ID)
		if id == "" {
			continue
		}
		m.Categories = append(m.Categories, Category{ID: id, Name: c.Name})
	}

	dishes := make([]Entry, 0)
	for _, item := range rawArray(doc.Dishes) {
		var e Entry
		if err := json.Unmarshal(item, &e); err != nil {
			continue
		}
		dishes = append(dishes, e)
	}
	m.SetDishes(dishes)

	if m.Categories == nil {
		m.Categories = []Category{}
	}
	return m, nil
}

// SetDishes replaces the dish list, dropping entries without an id and
// repeated ids.
func (m *Menu) SetDishes(dishes []Entry) {
	m.Dishes = make([]Entry, 0, len(dishes))
	m.index = make(map[string]int, len(dishes))
	m.Skipped = 0
	for _, e := range dishes {
		e.ID = strings.TrimSpace(e.ID)
		if e.ID == "" {
			m.Skipped++
			continue
		}
		if _, dup := m.index[e.ID]; dup {
			m.Skipped++
			continue
		}
		m.index[e.ID] = len(m.Dishes)
		m.Dishes = append(m.Dishes, e)
	}
}

// Entry looks up a dish by id
func (m *Menu) Entry(id string) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}
	if m.index == nil {
		m.SetDishes(m.Dishes)
	}
	i, ok := m.index[id]
	if !ok {
		return Entry{}, false
	}
	return m.Dishes[i], true
}

// ByCategory returns the dishes of one category in catalog order. An empty
// category id returns every dish.
func (m *Menu) ByCategory(categoryID string) []Entry {
	if m == nil {
		return nil
	}
	if categoryID == "" {
		return m.Dishes
	}
	out := make([]Entry, 0)
	for _, e := range m.Dishes {
		if e.Category == categoryID {
			out = append(out, e)
		}
	}
	return out
}

func rawArray(raw json.RawMessage) []json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}
