package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	menuHandler "kahramana-backend/internal/domains/menu/handler"
	menu "kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/internal/domains/order/model"
	"kahramana-backend/internal/domains/order/service"
	"kahramana-backend/internal/shared/middleware"
	"kahramana-backend/internal/shared/response"
	"kahramana-backend/pkg/logger"
)

// EntryLookup resolves menu entries; implemented by the menu service
type EntryLookup interface {
	Get(id string) (menu.Entry, error)
}

type Handler struct {
	checkout *service.CheckoutService
	entries  EntryLookup
}

func NewHandler(checkout *service.CheckoutService, entries EntryLookup) *Handler {
	return &Handler{checkout: checkout, entries: entries}
}

// ListBranches handles GET /branches
func (h *Handler) ListBranches(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	branches := h.checkout.Branches()

	out := make([]model.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, model.BranchResponse{
			ID:          b.ID,
			Name:        b.Name(lang),
			Phone:       b.Phone,
			WhatsApp:    b.WhatsApp,
			WhatsAppURL: service.WhatsAppLink(b.WhatsApp, ""),
		})
	}
	response.Success(c, http.StatusOK, "Branches retrieved successfully", out)
}

// Checkout handles POST /cart/checkout
func (h *Handler) Checkout(c *gin.Context) {
	var req model.CheckoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid request", err)
		return
	}

	result, err := h.checkout.Checkout(c.Request.Context(), service.CheckoutInput{
		SessionID: middleware.GetSessionID(c),
		Language:  middleware.GetLanguage(c),
		ClientIP:  middleware.GetClientIP(c),
		Request:   req,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyCart):
			response.ErrorResponse(c, http.StatusBadRequest, response.CodeEmptyCart, "Cart is empty")
		case errors.Is(err, model.ErrBranchNotFound):
			response.NotFound(c, "Branch not found")
		default:
			logger.Error("Checkout failed", err)
			response.InternalServerError(c, "Checkout failed")
		}
		return
	}

	response.Success(c, http.StatusOK, "Order message ready", result)
}

// Inquiry handles GET /menu/items/:id/inquiry?branch=
func (h *Handler) Inquiry(c *gin.Context) {
	entry, err := h.entries.Get(c.Param("id"))
	if err != nil {
		menuHandler.HandleMenuError(c, err)
		return
	}

	lang := middleware.GetLanguage(c)
	var branchName, number string
	if id := c.Query("branch"); id != "" {
		b, err := h.checkout.Branch(id)
		if err != nil {
			response.NotFound(c, "Branch not found")
			return
		}
		branchName, number = b.Name(lang), b.WhatsApp
	}

	msg := service.InquiryMessage(entry.Name.Resolve(lang), branchName, lang)
	response.Success(c, http.StatusOK, "Inquiry message ready", model.InquiryResult{
		EntryID:     entry.ID,
		Message:     msg,
		WhatsAppURL: service.WhatsAppLink(number, msg),
	})
}
