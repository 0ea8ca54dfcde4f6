package dto

import (
	"time"

	"github.com/hikaru-dev/calc-forest-api/internal/models"
)

// CalculationDTO represents a calculation node in API responses. ParentID and
// Operation serialize as null for root nodes.
type CalculationDTO struct {
	ID        uint64            `json:"id"`
	UserID    uint64            `json:"user_id"`
	ParentID  *uint64           `json:"parent_id"`
	Operation *models.Operation `json:"operation"`
	Number    float64           `json:"number"`
	Result    float64           `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
}

// ToCalculationDTO converts a Calculation model to CalculationDTO
func ToCalculationDTO(calc models.Calculation) CalculationDTO {
	return CalculationDTO{
		ID:        calc.ID,
		UserID:    calc.UserID,
		ParentID:  calc.ParentID,
		Operation: calc.Operation,
		Number:    calc.Number,
		Result:    calc.Result,
		CreatedAt: calc.CreatedAt,
	}
}

// ToCalculationDTOs converts the full listing. The client renders the whole
// forest from this flat, id-ascending slice.
func ToCalculationDTOs(calcs []models.Calculation) []CalculationDTO {
	items := make([]CalculationDTO, len(calcs))
	for i, calc := range calcs {
		items[i] = ToCalculationDTO(calc)
	}
	return items
}
