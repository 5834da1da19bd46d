package db

import (
	"time"

	"gorm.io/datatypes"
)

// Event is an audit record written in the same transaction as the operation
// it describes.
type Event struct {
	ID        uint           `gorm:"primaryKey"`
	ImageID   *uint          `gorm:"index"`
	DesignID  *int64         `gorm:"index"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
