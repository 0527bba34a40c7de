package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate takes a row lock on the parent entity so concurrent writers
// cannot both validate against a stale sibling-weight snapshot. SQLite (used
// by the tests) has no row locks; its single writer serializes the
// transaction anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
