package db

import "time"

// Design is one tile of an Image, keyed by the id the game-facing system
// assigned to it. Pro and SizeBytes are frozen copies taken at creation so
// the garbage collector never joins against images.
type Design struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false"`
	ImageID   uint      `gorm:"not null;uniqueIndex:idx_designs_image_position"`
	Position  int       `gorm:"type:smallint;not null;uniqueIndex:idx_designs_image_position"`
	Pro       bool      `gorm:"not null;index:idx_designs_stale"`
	SizeBytes int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_designs_stale"`
}
