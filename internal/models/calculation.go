package models

import (
	"time"
)

// Operation is the closed set of arithmetic operations a child node can apply
// to its parent's result.
type Operation string

const (
	OperationAdd Operation = "+"
	OperationSub Operation = "-"
	OperationMul Operation = "*"
	OperationDiv Operation = "/"
)

// Valid reports whether op is one of the four supported operations.
func (op Operation) Valid() bool {
	switch op {
	case OperationAdd, OperationSub, OperationMul, OperationDiv:
		return true
	default:
		return false
	}
}

// Apply derives a child node's result from its parent's result and the
// user-supplied operand. Precondition for OperationDiv: operand != 0, which
// the calculation service enforces before any node is created.
func (op Operation) Apply(parentResult, operand float64) float64 {
	switch op {
	case OperationAdd:
		return parentResult + operand
	case OperationSub:
		return parentResult - operand
	case OperationMul:
		return parentResult * operand
	case OperationDiv:
		return parentResult / operand
	default:
		return operand
	}
}

// Calculation is one node in the shared calculation forest. A node with a nil
// ParentID is a root: its Result equals its Number and Operation is nil.
// Nodes are append-only; they are never updated or deleted.
type Calculation struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	UserID    uint64     `gorm:"not null;index" json:"user_id"`
	ParentID  *uint64    `gorm:"index" json:"parent_id"`
	Operation *Operation `gorm:"type:varchar(1)" json:"operation"`
	Number    float64    `gorm:"not null" json:"number"`
	Result    float64    `gorm:"not null" json:"result"`
	CreatedAt time.Time  `json:"created_at"`

	// Relations
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Parent   *Calculation  `gorm:"foreignKey:ParentID" json:"-"`
	Children []Calculation `gorm:"foreignKey:ParentID" json:"-"`
}
