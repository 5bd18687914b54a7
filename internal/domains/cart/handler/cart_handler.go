package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/internal/domains/cart/service"
	menu "kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/internal/shared/middleware"
	"kahramana-backend/internal/shared/response"
)

// maxSnapshotBytes bounds POST /cart/restore bodies
const maxSnapshotBytes = 256 << 10

// CurrencySource reports the catalog currency; implemented by the menu
// service
type CurrencySource interface {
	Currency() string
}

// Handler handles HTTP requests for the session cart
type Handler struct {
	service  *service.CartService
	currency CurrencySource
	decimals int32
}

func NewHandler(service *service.CartService, currency CurrencySource, decimals int) *Handler {
	return &Handler{
		service:  service,
		currency: currency,
		decimals: int32(decimals),
	}
}

func (h *Handler) cartResponse(lines []model.LineItem) *model.CartResponse {
	return model.ToCartResponse(lines, h.currency.Currency(), h.decimals)
}

// ===================================
// GET /cart
// ===================================

func (h *Handler) GetCart(c *gin.Context) {
	lines := h.service.GetCart(c.Request.Context(), middleware.GetSessionID(c))
	response.Success(c, http.StatusOK, "Cart retrieved successfully", h.cartResponse(lines))
}

// ===================================
// POST /cart/items
// ===================================

// AddItem adds one unit of a menu entry. Entries priced by size answer
// 422 with the size options until the request carries size_index.
func (h *Handler) AddItem(c *gin.Context) {
	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid request", err)
		return
	}

	lang := middleware.GetLanguage(c)
	result, err := h.service.AddItem(c.Request.Context(), middleware.GetSessionID(c), req, lang)
	if err != nil {
		handleCatalogError(c, err)
		return
	}

	switch result.Outcome {
	case model.OutcomeNeedsSizeSelection:
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeSizeRequired,
			"Please choose a size",
			model.SizeSelectionResponse{
				EntryID: result.Entry.ID,
				Name:    result.Entry.Name.Resolve(lang),
				Sizes:   model.SizeOptions(result.Entry, h.decimals),
			})
	case model.OutcomeRejected:
		response.BadRequest(c, "Menu item cannot be added")
	case model.OutcomeAdded:
		response.Success(c, http.StatusCreated, "Item added to cart", model.MutationResponse{
			Outcome: result.Outcome,
			LineID:  result.LineID,
			Cart:    h.cartResponse(result.Lines),
		})
	default:
		response.Success(c, http.StatusOK, "Item quantity increased", model.MutationResponse{
			Outcome: result.Outcome,
			LineID:  result.LineID,
			Cart:    h.cartResponse(result.Lines),
		})
	}
}

// ===================================
// PUT /cart/items/:line_id
// ===================================

func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req model.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid request", err)
		return
	}

	lineID := c.Param("line_id")
	outcome, lines := h.service.UpdateQuantity(c.Request.Context(), middleware.GetSessionID(c), lineID, *req.Quantity)
	h.respondMutation(c, outcome, lineID, lines, "Cart updated")
}

// ===================================
// PATCH /cart/items/:line_id/note
// ===================================

func (h *Handler) UpdateNote(c *gin.Context) {
	var req model.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid request", err)
		return
	}

	lineID := c.Param("line_id")
	outcome, lines := h.service.UpdateNote(c.Request.Context(), middleware.GetSessionID(c), lineID, req.Note)
	h.respondMutation(c, outcome, lineID, lines, "Note updated")
}

// ===================================
// DELETE /cart/items/:line_id
// ===================================

func (h *Handler) RemoveItem(c *gin.Context) {
	lineID := c.Param("line_id")
	outcome, lines := h.service.RemoveItem(c.Request.Context(), middleware.GetSessionID(c), lineID)
	h.respondMutation(c, outcome, lineID, lines, "Item removed")
}

// ===================================
// DELETE /cart
// ===================================

func (h *Handler) ClearCart(c *gin.Context) {
	outcome := h.service.ClearCart(c.Request.Context(), middleware.GetSessionID(c))
	response.Success(c, http.StatusOK, "Cart cleared", model.MutationResponse{
		Outcome: outcome,
		Cart:    h.cartResponse(nil),
	})
}

// ===================================
// POST /cart/restore
// ===================================

// RestoreCart replaces the session cart with the JSON array a browser kept
// in local storage. An invalid snapshot empties the cart.
func (h *Handler) RestoreCart(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSnapshotBytes+1))
	if err != nil {
		response.BadRequest(c, "Could not read request body")
		return
	}
	if len(body) > maxSnapshotBytes {
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, response.CodeBadRequest, "Cart snapshot too large")
		return
	}

	outcome, lines := h.service.RestoreCart(c.Request.Context(), middleware.GetSessionID(c), body)
	response.Success(c, http.StatusOK, "Cart restored", model.MutationResponse{
		Outcome: outcome,
		Cart:    h.cartResponse(lines),
	})
}

func (h *Handler) respondMutation(c *gin.Context, outcome model.Outcome, lineID string, lines []model.LineItem, message string) {
	if outcome == model.OutcomeNotFound {
		response.NotFound(c, "Cart item not found")
		return
	}
	response.Success(c, http.StatusOK, message, model.MutationResponse{
		Outcome: outcome,
		LineID:  lineID,
		Cart:    h.cartResponse(lines),
	})
}

func handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, menu.ErrEntryNotFound):
		response.NotFound(c, "Menu item not found")
	case errors.Is(err, menu.ErrMenuNotLoaded):
		response.ServiceUnavailable(c, "Menu is not available")
	default:
		response.InternalServerError(c, "Failed to add item")
	}
}
