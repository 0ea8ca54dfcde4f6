package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/hikaru-dev/calc-forest-api/internal/models"
	"github.com/hikaru-dev/calc-forest-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidNumber    = errors.New("number must be a finite value")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrParentNotFound   = errors.New("parent not found")
)

// CalculationService owns the calculation forest: validation, derivation and
// persistence of nodes. All validation happens before any insert, so a failed
// call never leaves a partial write behind.
type CalculationService struct {
	calcRepo repository.CalculationRepository
}

// NewCalculationService creates a new CalculationService.
func NewCalculationService(calcRepo repository.CalculationRepository) *CalculationService {
	return &CalculationService{
		calcRepo: calcRepo,
	}
}

// ListAll returns the entire forest in creation order.
func (s *CalculationService) ListAll() ([]models.Calculation, error) {
	calcs, err := s.calcRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	return calcs, nil
}

// ListChildren returns the direct children of a node, or the roots when
// parentID is nil.
func (s *CalculationService) ListChildren(parentID *uint64) ([]models.Calculation, error) {
	calcs, err := s.calcRepo.ListByParent(parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	return calcs, nil
}

// CreateRoot starts a new tree with a user-chosen value. A root's result is
// its number and it carries no operation.
func (s *CalculationService) CreateRoot(userID uint64, number float64) (*models.Calculation, error) {
	if !isFinite(number) {
		return nil, ErrInvalidNumber
	}

	calc := &models.Calculation{
		UserID: userID,
		Number: number,
		Result: number,
	}

	if err := s.calcRepo.Create(calc); err != nil {
		return nil, fmt.Errorf("failed to create calculation: %w", err)
	}

	return calc, nil
}

// CreateChild appends an operation node under an existing parent. The child's
// result is derived from the parent's result once, at creation time.
func (s *CalculationService) CreateChild(userID, parentID uint64, operation models.Operation, number float64) (*models.Calculation, error) {
	if !operation.Valid() {
		return nil, ErrInvalidOperation
	}
	if !isFinite(number) {
		return nil, ErrInvalidNumber
	}
	if operation == models.OperationDiv && number == 0 {
		return nil, ErrDivisionByZero
	}

	parent, err := s.calcRepo.FindByID(parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, fmt.Errorf("failed to find parent: %w", err)
	}

	calc := &models.Calculation{
		UserID:    userID,
		ParentID:  &parent.ID,
		Operation: &operation,
		Number:    number,
		Result:    operation.Apply(parent.Result, number),
	}

	if err := s.calcRepo.Create(calc); err != nil {
		return nil, fmt.Errorf("failed to create calculation: %w", err)
	}

	return calc, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
