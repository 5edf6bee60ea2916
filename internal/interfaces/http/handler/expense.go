package handler

import (
	"strconv"
	"time"

	expenseapp "github.com/expensetracker/backend/internal/application/expense"
	"github.com/expensetracker/backend/internal/infrastructure/logger"
	"github.com/expensetracker/backend/internal/infrastructure/notice"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ExpenseHandler handles expense-related API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *expenseapp.ExpenseService
	notices        *noticeWriter
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *expenseapp.ExpenseService, noticeStore notice.Store, noticeTTL time.Duration) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		notices:        &noticeWriter{store: noticeStore, ttl: noticeTTL},
	}
}

// ExpenseRequest represents the request body for creating or updating
// an expense. The date is a calendar day in YYYY-MM-DD format; the
// amount accepts both JSON numbers and strings.
type ExpenseRequest struct {
	ID          *uint           `json:"id,omitempty"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// RegisterRoutes registers expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.List)
		expenses.GET("/categories", h.Categories)
		expenses.GET("/:id", h.GetByID)
		expenses.POST("", h.Create)
		expenses.PUT("/:id", h.Update)
		expenses.DELETE("/:id", h.Delete)
	}
}

// List returns expenses filtered by category and date range
func (h *ExpenseHandler) List(c *gin.Context) {
	filter := expenseapp.ListFilter{
		Category: c.Query("category"),
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.BadRequest(c, "start_date must be in YYYY-MM-DD format")
			return
		}
		filter.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.BadRequest(c, "end_date must be in YYYY-MM-DD format")
			return
		}
		// Inclusive upper bound covering the whole day
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndDate = &end
	}

	result, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Categories returns the fixed category enumeration
func (h *ExpenseHandler) Categories(c *gin.Context) {
	h.Success(c, gin.H{"categories": expenseapp.CategoryNames()})
}

// GetByID returns a single expense
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	id, ok := h.expenseID(c)
	if !ok {
		return
	}

	resp, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Create records a new expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}

	date, ok := h.parseBodyDate(c, req.Date)
	if !ok {
		return
	}

	resp, err := h.expenseService.Create(c.Request.Context(), expenseapp.CreateExpenseRequest{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.notices.success(c, "Expense added successfully!")
	h.Created(c, resp)
}

// Update edits an existing expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := h.expenseID(c)
	if !ok {
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}

	date, ok := h.parseBodyDate(c, req.Date)
	if !ok {
		return
	}

	resp, err := h.expenseService.Update(c.Request.Context(), id, expenseapp.UpdateExpenseRequest{
		ID:          req.ID,
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.notices.success(c, "Expense updated successfully!")
	h.Success(c, resp)
}

// Delete removes an expense. Always responds 204, deletes are idempotent.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := h.expenseID(c)
	if !ok {
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.notices.success(c, "Expense deleted successfully!")
	h.NoContent(c)
}

func (h *ExpenseHandler) expenseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.BadRequest(c, "Expense ID must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// parseBodyDate parses the request body date. An empty string passes
// through as the zero time so the domain reports "Date is required"
// together with any other violations.
func (h *ExpenseHandler) parseBodyDate(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, raw); err != nil {
			h.BadRequest(c, "date must be in YYYY-MM-DD format")
			return time.Time{}, false
		}
	}
	return date, true
}

// noticeWriter stores one-shot notices for the caller's session.
// Requests without a session header skip notices silently; a storage
// failure is logged but never fails the mutation that produced it.
type noticeWriter struct {
	store notice.Store
	ttl   time.Duration
}

func (w *noticeWriter) success(c *gin.Context, message string) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" || w.store == nil {
		return
	}

	n := notice.Notice{Kind: notice.KindSuccess, Message: message}
	if err := w.store.Put(c.Request.Context(), sessionID, n, w.ttl); err != nil {
		logger.GetGinLogger(c).Warn("Failed to store notice", zap.Error(err))
	}
}
