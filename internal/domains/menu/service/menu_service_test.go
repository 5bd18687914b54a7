package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kahramana-backend/internal/domains/menu/model"
)

type memoryRepo struct {
	doc   []byte
	saved int
	err   error
}

func (r *memoryRepo) Load(context.Context) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.doc, nil
}

func (r *memoryRepo) Save(_ context.Context, doc []byte) error {
	r.doc = doc
	r.saved++
	return nil
}

func (r *memoryRepo) Source() string { return "memory" }

const sampleMenu = `{
	"currency": "BHD",
	"categories": [{"id": "grills", "name": {"ar": "مشاوي", "en": "Grills"}}],
	"dishes": [
		{"id": "tikka", "category": "grills", "name": {"ar": "تكا", "en": "Tikka"}, "price": 2.5},
		{"id": "qozi", "category": "rice", "name": {"ar": "قوزي", "en": "Qozi"}, "price": null,
		 "desc": {"ar": "أرز مع لحم", "en": "Rice with lamb"}, "priceLabel": {"en": "By size"},
		 "sizes": [{"label": "Half", "price": 6}, {"label": "Full", "price": 11.5}]},
		{"id": "mandi", "name": "Mandi", "price": null, "desc": "Slow cooked", "priceLabel": {"ar": "حسب الطلب", "en": "Ask us"}}
	]
}`

func TestMenuServiceReloadAndLookup(t *testing.T) {
	t.Parallel()

	svc := NewMenuService(&memoryRepo{doc: []byte(sampleMenu)}, "BHD")

	_, err := svc.Current()
	assert.ErrorIs(t, err, model.ErrMenuNotLoaded)

	_, err = svc.Reload(context.Background())
	require.NoError(t, err)

	e, err := svc.Get("qozi")
	require.NoError(t, err)
	assert.Equal(t, model.PricingVariant, e.Pricing().Kind)

	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, model.ErrEntryNotFound)

	menu, err := svc.Current()
	require.NoError(t, err)
	assert.Len(t, menu.ByCategory("grills"), 1)
}

func TestMenuServiceReloadKeepsPreviousOnError(t *testing.T) {
	t.Parallel()

	repo := &memoryRepo{doc: []byte(sampleMenu)}
	svc := NewMenuService(repo, "BHD")
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)

	repo.err = errors.New("disk gone")
	_, err = svc.Reload(context.Background())
	require.Error(t, err)

	_, err = svc.Get("tikka")
	assert.NoError(t, err)
}

func TestMenuServiceExcelRoundTrip(t *testing.T) {
	t.Parallel()

	repo := &memoryRepo{doc: []byte(sampleMenu)}
	svc := NewMenuService(repo, "BHD")
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)

	f, err := svc.ExportExcel(context.Background())
	require.NoError(t, err)
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, excelHeaders, rows[0])
	assert.Equal(t, "Half:6|Full:11.5", rows[2][9])
	assert.Equal(t, "Rice with lamb", rows[2][4])
	assert.Equal(t, "By size", rows[2][7])

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	result, err := svc.ImportExcel(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Zero(t, result.Skipped)
	assert.Equal(t, 1, repo.saved)

	qozi, err := svc.Get("qozi")
	require.NoError(t, err)
	p := qozi.Pricing()
	require.Equal(t, model.PricingVariant, p.Kind)
	require.Len(t, p.Sizes, 2)
	assert.Equal(t, "11.5", p.Sizes[1].Price.String())
	assert.Equal(t, "قوزي", qozi.Name.ByLang["ar"])
	assert.Equal(t, "أرز مع لحم", qozi.Description.ByLang["ar"])
	assert.Equal(t, "Rice with lamb", qozi.Description.ByLang["en"])
	assert.Equal(t, "By size", qozi.PriceLabel.ByLang["en"])
	assert.Empty(t, qozi.PriceLabel.ByLang["ar"])

	mandi, err := svc.Get("mandi")
	require.NoError(t, err)
	assert.Equal(t, model.PricingOnRequest, mandi.Pricing().Kind)
	assert.Equal(t, "Slow cooked", mandi.Description.ByLang["en"])
	assert.Equal(t, "حسب الطلب", mandi.PriceLabel.ByLang["ar"])
	assert.Equal(t, "Ask us", mandi.PriceLabel.ByLang["en"])

	menu, err := svc.Current()
	require.NoError(t, err)
	assert.Len(t, menu.Categories, 2, "rice category is added from the rows")
}

func TestMenuServiceImportRejectsBadRows(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"ID", "Category", "Name EN", "Name AR", "Price", "Sizes", "Image"},
		{"a", "grills", "A", "أ", "1.5", "", ""},
		{"", "grills", "No id", "", "1", "", ""},
		{"b", "grills", "B", "", "cheap", "", ""},
		{"c", "grills", "C", "", "", "Small:x", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	svc := NewMenuService(&memoryRepo{}, "BHD")
	result, err := svc.ImportExcel(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 3, result.Skipped)
	assert.Len(t, result.Errors, 3)
}

func TestMenuServiceImportRequiresHeaders(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	r := []interface{}{"Title", "Cost"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &r))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	svc := NewMenuService(&memoryRepo{}, "BHD")
	_, err := svc.ImportExcel(context.Background(), &buf)
	assert.ErrorIs(t, err, model.ErrInvalidSheet)
}
