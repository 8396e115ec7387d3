package repo

import (
	"github.com/KNICEX/price-watch/internal/entity"
	"gorm.io/gorm"
)

// InitTables is idempotent and safe to call on every start.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Signal{})
}
