package designs

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"design-vault/internal/db"

	"gorm.io/gorm"
)

const secretSize = 32

// IssueAuthorization creates a new upload credential and returns it together
// with the encoded upload token.
func (s *Store) IssueAuthorization(description string) (db.Authorization, string, error) {
	if strings.TrimSpace(description) == "" {
		return db.Authorization{}, "", errors.New("description is required")
	}
	secret := make([]byte, secretSize)
	if _, err := rand.Read(secret); err != nil {
		return db.Authorization{}, "", fmt.Errorf("generate secret: %w", err)
	}
	auth := db.Authorization{
		Secret:      secret,
		Description: description,
		CreatedAt:   timeNowUTC(),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&auth).Error; err != nil {
			return err
		}
		return recordEvent(tx, "authorization_issued", nil, nil, EventPayload{UserID: auth.ID})
	})
	if err != nil {
		return db.Authorization{}, "", err
	}
	return auth, EncodeToken(auth.ID, secret), nil
}

// RevokeAuthorization clears the credential's secret but keeps the row so
// images uploaded under it stay attributable. Revoking an already-revoked
// credential is a no-op.
func (s *Store) RevokeAuthorization(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var auth db.Authorization
		if err := tx.First(&auth, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownUser
			}
			return err
		}
		if auth.Revoked() {
			return nil
		}
		if err := tx.Model(&db.Authorization{}).Where("id = ?", userID).Update("secret", nil).Error; err != nil {
			return err
		}
		return recordEvent(tx, "authorization_revoked", nil, nil, EventPayload{UserID: userID})
	})
}

// VerifyAuthorization reports whether the credential exists, is unrevoked,
// and matches secret.
func (s *Store) VerifyAuthorization(userID uint, secret []byte) bool {
	var auth db.Authorization
	if err := s.db.First(&auth, userID).Error; err != nil {
		return false
	}
	if auth.Revoked() {
		return false
	}
	return subtle.ConstantTimeCompare(auth.Secret, secret) == 1
}

// VerifyToken parses and verifies an encoded upload token in one step.
func (s *Store) VerifyToken(token string) (uint, bool) {
	userID, secret, err := ParseToken(token)
	if err != nil {
		return 0, false
	}
	if !s.VerifyAuthorization(userID, secret) {
		return 0, false
	}
	return userID, true
}

// DeleteAuthorization removes the credential outright. Images uploaded under
// it are never deleted; their owner reference is cleared instead so the
// denormalized author name remains their only provenance.
func (s *Store) DeleteAuthorization(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var auth db.Authorization
		if err := tx.First(&auth, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownUser
			}
			return err
		}
		if err := tx.Model(&db.Image{}).Where("author_id = ?", userID).Update("author_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db.Authorization{}, userID).Error; err != nil {
			return err
		}
		return recordEvent(tx, "authorization_deleted", nil, nil, EventPayload{UserID: userID})
	})
}
