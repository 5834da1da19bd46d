package db

import (
	"time"

	"gorm.io/datatypes"
)

// Image is one uploaded artwork. Free-tier images have exactly one layer and
// explicit dimensions; pro-tier images have two or more layers and none.
// Rows are immutable after creation except AuthorID, which may be cleared
// once when the owning credential is deleted.
type Image struct {
	ID            uint                        `gorm:"primaryKey"`
	AuthorID      *uint                       `gorm:"index"`
	AuthorName    string                      `gorm:"size:64;not null"`
	ImageName     string                      `gorm:"size:128"`
	Width         *int                        `gorm:"type:smallint"`
	Height        *int                        `gorm:"type:smallint"`
	TypeCode      int                         `gorm:"type:smallint;not null"`
	Pro           bool                        `gorm:"not null"`
	Layers        datatypes.JSONSlice[[]byte] `gorm:"not null"`
	DeletionToken []byte                      `gorm:"type:bytea;not null"`
	CreatedAt     time.Time                   `gorm:"not null;index:idx_images_created_at,sort:desc"`
	Designs       []Design                    `gorm:"constraint:OnDelete:RESTRICT"`
}
