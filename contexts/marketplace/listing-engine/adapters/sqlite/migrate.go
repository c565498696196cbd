package sqliteadapter

import "gorm.io/gorm"

// Migrate creates the partitions table when it does not exist yet.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&partitionModel{})
}
