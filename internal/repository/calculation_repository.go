package repository

import (
	"github.com/hikaru-dev/calc-forest-api/internal/database"
	"github.com/hikaru-dev/calc-forest-api/internal/models"
	"gorm.io/gorm"
)

// GormCalculationRepository is a GORM implementation of CalculationRepository
type GormCalculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository creates a new CalculationRepository
func NewCalculationRepository(db *gorm.DB) CalculationRepository {
	return &GormCalculationRepository{db: db}
}

// Create inserts a new calculation node
func (r *GormCalculationRepository) Create(calc *models.Calculation) error {
	return r.db.Create(calc).Error
}

// FindByID finds a calculation by ID
func (r *GormCalculationRepository) FindByID(id uint64) (*models.Calculation, error) {
	var calc models.Calculation
	if err := r.db.First(&calc, id).Error; err != nil {
		return nil, err
	}
	return &calc, nil
}

// ListAll returns the entire forest, ordered by id ascending
func (r *GormCalculationRepository) ListAll() ([]models.Calculation, error) {
	var calcs []models.Calculation
	if err := r.db.Scopes(database.InCreationOrder).Find(&calcs).Error; err != nil {
		return nil, err
	}
	return calcs, nil
}

// ListByParent returns one level of the tree, ordered by id ascending
func (r *GormCalculationRepository) ListByParent(parentID *uint64) ([]models.Calculation, error) {
	var calcs []models.Calculation
	if err := r.db.Scopes(database.ByParent(parentID), database.InCreationOrder).Find(&calcs).Error; err != nil {
		return nil, err
	}
	return calcs, nil
}
