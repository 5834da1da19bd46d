package designs

import (
	"time"

	"gorm.io/gorm"
)

// Store implements the vault's persistence operations on top of gorm.
// All multi-row writes run in a single transaction so readers only ever see
// an image together with its full tile set.
type Store struct {
	db *gorm.DB
}

func NewStore(conn *gorm.DB) *Store {
	return &Store{db: conn}
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
