package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/pkg/logger"
)

const sheetName = "Menu"

// Only ID, Name EN, Name AR and Price are required on import
var excelHeaders = []string{
	"ID", "Category", "Name EN", "Name AR", "Desc EN", "Desc AR",
	"Price", "Price Label EN", "Price Label AR", "Sizes", "Image",
}

const priceCol = 6

// ================================================
// EXPORT
// ================================================

// ExportExcel writes the current catalog as a single-sheet workbook
func (s *MenuService) ExportExcel(ctx context.Context) (*excelize.File, error) {
	menu, err := s.Current()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for colIdx, header := range excelHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(excelHeaders), 1)
		f.SetCellStyle(sheetName, "A1", last, headerStyle)
	}

	for i, e := range menu.Dishes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := []interface{}{
			e.ID,
			e.Category,
			nameFor(e.Name, "en"),
			nameFor(e.Name, "ar"),
			nameFor(e.Description, "en"),
			nameFor(e.Description, "ar"),
			nil,
			nameFor(e.PriceLabel, "en"),
			nameFor(e.PriceLabel, "ar"),
			formatSizes(e.Sizes),
			e.Image,
		}
		if e.PriceShape == model.PriceNumber {
			row[priceCol] = e.Price.InexactFloat64()
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// nameFor exports a translation, or the plain name in the English column
func nameFor(t model.LocalizedText, lang string) string {
	if len(t.ByLang) > 0 {
		return t.ByLang[lang]
	}
	if lang == "en" {
		return t.Plain
	}
	return ""
}

// formatSizes renders sizes as "Label:price|Label"
func formatSizes(sizes []model.Size) string {
	parts := make([]string, 0, len(sizes))
	for _, sz := range sizes {
		if sz.Price != nil {
			parts = append(parts, sz.Label+":"+sz.Price.String())
		} else {
			parts = append(parts, sz.Label)
		}
	}
	return strings.Join(parts, "|")
}

// ================================================
// IMPORT
// ================================================

// ImportExcel replaces the catalog dishes with the rows of the first sheet.
// Currency and categories are kept; categories referenced by rows but
// missing from the catalog are appended.
func (s *MenuService) ImportExcel(ctx context.Context, r io.Reader) (*model.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, model.ErrInvalidSheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, model.ErrInvalidSheet
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	result := &model.ImportResult{}
	dishes := make([]model.Entry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		entry, err := parseRow(row, cols)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, model.RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		if entry == nil {
			continue // blank row
		}
		dishes = append(dishes, *entry)
	}

	current, err := s.Current()
	if err != nil {
		current = &model.Menu{Currency: s.Currency(), Categories: []model.Category{}}
	}
	next := &model.Menu{
		Currency:   current.Currency,
		Categories: mergeCategories(current.Categories, dishes),
	}
	next.SetDishes(dishes)
	result.Skipped += next.Skipped
	result.Imported = len(next.Dishes)

	if err := s.replace(ctx, next); err != nil {
		return nil, err
	}

	logger.Info("menu imported", map[string]interface{}{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})
	return result, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"id", "name en", "name ar", "price"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", model.ErrInvalidSheet, required)
		}
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int) (*model.Entry, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	if strings.Join(row, "") == "" {
		return nil, nil
	}

	entry := &model.Entry{
		ID:          get("id"),
		Category:    get("category"),
		Name:        model.Translations(get("name ar"), get("name en")),
		Description: model.Translations(get("desc ar"), get("desc en")),
		PriceLabel:  model.Translations(get("price label ar"), get("price label en")),
		Image:       get("image"),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if price := get("price"); price != "" {
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q", price)
		}
		entry.Price = d
		entry.PriceShape = model.PriceNumber
	} else {
		entry.PriceShape = model.PriceNull
	}

	sizes, err := parseSizes(get("sizes"))
	if err != nil {
		return nil, err
	}
	entry.Sizes = sizes
	return entry, nil
}

// parseSizes reads "Label:price|Label"
func parseSizes(s string) ([]model.Size, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "|")
	sizes := make([]model.Size, 0, len(parts))
	for _, part := range parts {
		label, price, hasPrice := strings.Cut(strings.TrimSpace(part), ":")
		sz := model.Size{Label: strings.TrimSpace(label)}
		if hasPrice && strings.TrimSpace(price) != "" {
			d, err := decimal.NewFromString(strings.TrimSpace(price))
			if err != nil {
				return nil, fmt.Errorf("invalid size price %q", part)
			}
			sz.Price = &d
		}
		sizes = append(sizes, sz)
	}
	return sizes, nil
}

func mergeCategories(existing []model.Category, dishes []model.Entry) []model.Category {
	out := append([]model.Category{}, existing...)
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[c.ID] = true
	}
	for _, d := range dishes {
		if d.Category == "" || seen[d.Category] {
			continue
		}
		seen[d.Category] = true
		out = append(out, model.Category{ID: d.Category, Name: model.Text(d.Category)})
	}
	return out
}
