package services

import "gorm.io/gorm"

// siblingOrder is the canonical read order for tree children. Duplicate
// order indices are tolerated on write and resolved here by creation order.
const siblingOrder = "order_index ASC, id ASC"

// NextOrderIndex returns the append position for a new child: one past the
// highest order index among its siblings, or 0 when the parent is empty.
func NextOrderIndex(db *gorm.DB, model interface{}, parentColumn string, parentID uint) int {
	var next int
	db.Model(model).
		Where(parentColumn+" = ?", parentID).
		Select("COALESCE(MAX(order_index) + 1, 0)").
		Scan(&next)
	return next
}
