package database

import (
	"gorm.io/gorm"
)

// InCreationOrder orders rows by id ascending. Ids are assigned sequentially,
// so this is creation order.
func InCreationOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// ByParent filters calculations to one level of the tree. A nil parentID
// selects the root nodes.
func ByParent(parentID *uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if parentID == nil {
			return db.Where("parent_id IS NULL")
		}
		return db.Where("parent_id = ?", *parentID)
	}
}
