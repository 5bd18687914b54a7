package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kahramana-backend/internal/domains/menu/model"
	"kahramana-backend/internal/domains/menu/service"
	"kahramana-backend/internal/shared/middleware"
	"kahramana-backend/internal/shared/response"
	"kahramana-backend/pkg/logger"
)

const maxImportBytes = 10 << 20

type Handler struct {
	service  *service.MenuService
	decimals int32
}

func NewHandler(service *service.MenuService, decimals int) *Handler {
	return &Handler{service: service, decimals: int32(decimals)}
}

// GetMenu handles GET /menu?category=
func (h *Handler) GetMenu(c *gin.Context) {
	menu, err := h.service.Current()
	if err != nil {
		HandleMenuError(c, err)
		return
	}
	lang := middleware.GetLanguage(c)
	response.Success(c, http.StatusOK, "Menu retrieved successfully",
		menu.ToResponse(lang, c.Query("category"), h.decimals))
}

// GetItem handles GET /menu/items/:id
func (h *Handler) GetItem(c *gin.Context) {
	entry, err := h.service.Get(c.Param("id"))
	if err != nil {
		HandleMenuError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Menu item retrieved successfully",
		entry.ToResponse(middleware.GetLanguage(c), h.decimals))
}

// Reload handles POST /admin/menu/reload
func (h *Handler) Reload(c *gin.Context) {
	menu, err := h.service.Reload(c.Request.Context())
	if err != nil {
		logger.Error("Menu reload failed", err)
		response.ServiceUnavailable(c, "Failed to reload menu")
		return
	}
	response.Success(c, http.StatusOK, "Menu reloaded", gin.H{
		"dishes":     len(menu.Dishes),
		"categories": len(menu.Categories),
		"skipped":    menu.Skipped,
	})
}

// Import handles POST /admin/menu/import (multipart form, field "file")
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file field")
		return
	}
	if fileHeader.Size > maxImportBytes {
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, response.CodeBadRequest, "File too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read file")
		return
	}
	defer f.Close()

	result, err := h.service.ImportExcel(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, model.ErrInvalidSheet) {
			response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
			return
		}
		logger.Error("Menu import failed", err)
		response.BadRequest(c, "Invalid spreadsheet")
		return
	}
	response.Success(c, http.StatusOK, "Menu imported", result)
}

// Export handles GET /admin/menu/export
func (h *Handler) Export(c *gin.Context) {
	f, err := h.service.ExportExcel(c.Request.Context())
	if err != nil {
		HandleMenuError(c, err)
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error("Menu export failed", err)
		response.InternalServerError(c, "Failed to export menu")
		return
	}

	filename := fmt.Sprintf("menu_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// HandleMenuError maps catalog errors to responses
func HandleMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrEntryNotFound):
		response.NotFound(c, "Menu item not found")
	case errors.Is(err, model.ErrMenuNotLoaded):
		response.ServiceUnavailable(c, "Menu is not available")
	default:
		logger.Error("Menu request failed", err)
		response.InternalServerError(c, "Internal server error")
	}
}
