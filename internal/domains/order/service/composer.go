package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	cart "kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/internal/domains/order/model"
	"kahramana-backend/internal/shared/i18n"
)

// Composer renders carts as WhatsApp order messages
type Composer struct {
	orderNumber OrderNumberFunc
}

func NewComposer(orderNumber OrderNumberFunc) *Composer {
	if orderNumber == nil {
		orderNumber = NewOrderNumberFunc(model.DefaultPrefix, nil)
	}
	return &Composer{orderNumber: orderNumber}
}

// Compose generates an order number and renders the message with it
func (c *Composer) Compose(lines []cart.LineItem, ctx model.ComposeContext) model.Message {
	number := c.orderNumber()
	return model.Message{
		Text:        ComposeOrderMessage(lines, ctx, number),
		OrderNumber: number,
	}
}

// ComposeOrderMessage renders:
//
//	header
//	<blank>
//	one line per cart line, in cart order
//	<blank> + total line, only when the total is above zero
//	<blank>
//	branch, location (when given) and order number lines
//
// Lines that fail LineItem.Valid are skipped and do not count toward the
// total.
func ComposeOrderMessage(lines []cart.LineItem, ctx model.ComposeContext, orderNumber string) string {
	lang := ctx.Language
	if !lang.Valid() {
		lang = i18n.Default
	}
	currency := ctx.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}
	decimals := int32(model.DefaultDecimals)
	if ctx.Decimals != nil && *ctx.Decimals >= 0 {
		decimals = int32(*ctx.Decimals)
	}

	out := []string{lang.T(i18n.KeyOrderHeader), ""}

	valid := make([]cart.LineItem, 0, len(lines))
	for _, l := range lines {
		if !l.Valid() {
			continue
		}
		valid = append(valid, l)
		out = append(out, formatLine(l, lang, currency, decimals))
	}

	total := cart.ComputeTotals(valid).Price
	if total.GreaterThan(decimal.Zero) {
		out = append(out, "", fmt.Sprintf("%s: %s %s", lang.T(i18n.KeyOrderTotal), total.StringFixed(decimals), currency))
	}

	out = append(out, "")
	if ctx.Branch != nil {
		if name := ctx.Branch.Name(lang); name != "" {
			out = append(out, fmt.Sprintf("%s: %s", lang.T(i18n.KeyOrderBranch), name))
		}
	}
	if loc := strings.TrimSpace(ctx.CustomerLocation); loc != "" {
		out = append(out, fmt.Sprintf("%s: %s", lang.T(i18n.KeyOrderLocation), loc))
	}
	out = append(out, fmt.Sprintf("%s: %s", lang.T(i18n.KeyOrderNumber), orderNumber))

	return strings.Join(out, "\n")
}

func formatLine(l cart.LineItem, lang i18n.Language, currency string, decimals int32) string {
	var b strings.Builder
	b.WriteString(l.Name)
	if l.SizeLabel != "" {
		b.WriteString(" - ")
		b.WriteString(l.SizeLabel)
	}
	fmt.Fprintf(&b, " x%d — ", l.Quantity)

	if l.IncludedInTotal {
		fmt.Fprintf(&b, "%s %s %s (%s %s)",
			l.Price.StringFixed(decimals), currency, lang.T(i18n.KeyOrderEach),
			l.Subtotal().StringFixed(decimals), currency)
	} else {
		label := l.PriceLabel
		if label == "" {
			label = lang.T(i18n.KeyPriceOnRequest)
		}
		b.WriteString(label)
	}

	if l.Note != "" {
		fmt.Fprintf(&b, " (%s)", l.Note)
	}
	return b.String()
}
