// Package tenant isolates rows by company. Every table in the schema
// carries a company_id column; repositories apply Scope on each query
// so one company can never read another's attendance or pay data.
package tenant

import "gorm.io/gorm"

func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
