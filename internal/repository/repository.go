package repository

import (
	"github.com/hikaru-dev/calc-forest-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user. Returns ErrDuplicateUsername if the username
	// is already taken (enforced by the unique index, so two concurrent
	// creates cannot both succeed).
	Create(user *models.User) error

	// FindByUsername finds a user by username (case-sensitive exact match)
	FindByUsername(username string) (*models.User, error)
}

// CalculationRepository defines the interface for calculation data access.
// The table is append-only: there are no update or delete operations.
type CalculationRepository interface {
	// Create inserts a new calculation node
	Create(calc *models.Calculation) error

	// FindByID finds a calculation by ID
	FindByID(id uint64) (*models.Calculation, error)

	// ListAll returns the entire forest, ordered by id ascending
	ListAll() ([]models.Calculation, error)

	// ListByParent returns one level of the tree, ordered by id ascending.
	// A nil parentID selects the root nodes.
	ListByParent(parentID *uint64) ([]models.Calculation, error)
}
