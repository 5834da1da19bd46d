package db

import "time"

// Authorization is an issued upload credential. Revocation clears Secret but
// keeps the row so images uploaded under it stay attributable.
type Authorization struct {
	ID          uint      `gorm:"primaryKey"`
	Secret      []byte    `gorm:"type:bytea"`
	Description string    `gorm:"size:128;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	Images      []Image   `gorm:"foreignKey:AuthorID"`
}

func (a *Authorization) Revoked() bool {
	return len(a.Secret) == 0
}
