package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hikaru-dev/calc-forest-api/internal/dto"
	apierrors "github.com/hikaru-dev/calc-forest-api/internal/errors"
	"github.com/hikaru-dev/calc-forest-api/internal/middleware"
	"github.com/hikaru-dev/calc-forest-api/internal/models"
	"github.com/hikaru-dev/calc-forest-api/internal/services"
)

// CalculationHandler coordinates calculation-tree HTTP handlers.
type CalculationHandler struct {
	calcService *services.CalculationService
}

// NewCalculationHandler creates a new CalculationHandler.
func NewCalculationHandler(calcService *services.CalculationService) *CalculationHandler {
	return &CalculationHandler{
		calcService: calcService,
	}
}

// List returns the whole forest, ordered by id ascending. No authentication
// required: anyone may read the shared tree.
func (h *CalculationHandler) List(c *gin.Context) {
	calcs, err := h.calcService.ListAll()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch calculations")
		return
	}

	c.JSON(http.StatusOK, dto.ToCalculationDTOs(calcs))
}

// CreateRoot starts a new tree from a user-chosen number.
func (h *CalculationHandler) CreateRoot(c *gin.Context) {
	type CreateRootRequest struct {
		Number *float64 `json:"number" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Access denied")
		return
	}

	var req CreateRootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Number required")
		return
	}

	calc, err := h.calcService.CreateRoot(userID, *req.Number)
	if err != nil {
		respondCalculationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCalculationDTO(*calc))
}

// CreateOperation appends an operation node under the parent named in the URL.
func (h *CalculationHandler) CreateOperation(c *gin.Context) {
	type CreateOperationRequest struct {
		Operation string   `json:"operation" binding:"required"`
		Number    *float64 `json:"number" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Access denied")
		return
	}

	parentID, err := strconv.ParseUint(c.Param("parentId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid parent id")
		return
	}

	var req CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Operation and number required")
		return
	}

	calc, err := h.calcService.CreateChild(userID, parentID, models.Operation(req.Operation), *req.Number)
	if err != nil {
		respondCalculationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCalculationDTO(*calc))
}

func respondCalculationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidOperation):
		apierrors.BadRequest(c, "Invalid operation")
	case errors.Is(err, services.ErrDivisionByZero):
		apierrors.BadRequest(c, "Division by zero")
	case errors.Is(err, services.ErrInvalidNumber):
		apierrors.BadRequest(c, "Number must be finite")
	case errors.Is(err, services.ErrParentNotFound):
		apierrors.NotFound(c, "Parent not found")
	default:
		apierrors.InternalError(c, "Failed to create calculation")
	}
}
