package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/money"
	"fintrack/internal/services"
)

// BudgetHandler handles budget-related requests
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetListQuery represents the budget listing query parameters.
// Month defaults to the current calendar month when omitted.
type BudgetListQuery struct {
	Month string `form:"month" binding:"omitempty,datetime=2006-01"`
}

// BudgetRequest represents the budget upsert payload.
// Month defaults to the current calendar month when omitted.
type BudgetRequest struct {
	Category string      `json:"category" binding:"required,max=50"`
	Amount   money.Cents `json:"amount" binding:"required"`
	Month    string      `json:"month" binding:"omitempty,datetime=2006-01"`
}

// GetBudgets lists the user's budgets for a month
// @Summary     List budgets
// @Description List the user's budgets for the given month (defaults to the current month)
// @Tags        budgets
// @Produce     json
// @Param       month query string false "Month (YYYY-MM)"
// @Success     200 {array} models.Budget "Budgets"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query BudgetListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month"))
		return
	}

	budgets, err := h.budgetService.ListBudgets(userID, query.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// UpsertBudget creates or replaces a budget
// @Summary     Upsert budget
// @Description Insert a budget for (category, month) or replace its amount, then return the month's full budget set
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body BudgetRequest true "Budget data"
// @Success     200 {array} models.Budget "Budgets for the resolved month"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category and amount are required"))
		return
	}

	budgets, err := h.budgetService.UpsertBudget(userID, req.Category, req.Amount, req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}
