package designs

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"

	"design-vault/internal/db"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	deletionTokenSize = 32
	defaultFeedLimit  = 20
	maxFeedLimit      = 100
)

// CreateImageParams describes a completed upload. Layers is the ordered tile
// payload sequence produced by the external tiling component, and DesignIDs
// are the ids the game-facing system assigned to each tile, in the same
// order. Width and Height are zero when absent.
type CreateImageParams struct {
	AuthorID   *uint
	AuthorName string
	ImageName  string
	TypeCode   int
	Layers     [][]byte
	Width      int
	Height     int
	DesignIDs  []int64
}

// CreateImage validates the tiering invariant and persists the image row,
// its design rows, and the audit event as one unit of work. No rows are
// written when validation fails.
func (s *Store) CreateImage(params CreateImageParams) (db.Image, []db.Design, error) {
	if len(params.Layers) == 0 {
		return db.Image{}, nil, ErrEmptyImage
	}
	pro := len(params.Layers) > 1
	if pro && (params.Width != 0 || params.Height != 0) {
		return db.Image{}, nil, ErrDimensionsForbidden
	}
	if !pro && (params.Width <= 0 || params.Height <= 0) {
		return db.Image{}, nil, ErrDimensionsRequired
	}
	if len(params.DesignIDs) != len(params.Layers) {
		return db.Image{}, nil, ErrTileCountMismatch
	}
	for _, id := range params.DesignIDs {
		if id <= 0 || id > maxDesignID {
			return db.Image{}, nil, ErrInvalidDesignID
		}
	}

	authorName := params.AuthorName
	if authorName == "" {
		authorName = "Anonymous"
	}
	deletionToken := make([]byte, deletionTokenSize)
	if _, err := rand.Read(deletionToken); err != nil {
		return db.Image{}, nil, fmt.Errorf("generate deletion token: %w", err)
	}

	image := db.Image{
		AuthorID:      params.AuthorID,
		AuthorName:    authorName,
		ImageName:     params.ImageName,
		TypeCode:      params.TypeCode,
		Pro:           pro,
		Layers:        datatypes.NewJSONSlice(params.Layers),
		DeletionToken: deletionToken,
		CreatedAt:     timeNowUTC(),
	}
	if !pro {
		width, height := params.Width, params.Height
		image.Width = &width
		image.Height = &height
	}

	var designs []db.Design
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if params.AuthorID != nil {
			var count int64
			if err := tx.Model(&db.Authorization{}).Where("id = ?", *params.AuthorID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrUnknownUser
			}
		}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
		created, err := createTiles(tx, &image, params.DesignIDs)
		if err != nil {
			return err
		}
		designs = created
		return recordEvent(tx, "image_created", &image.ID, nil, EventPayload{
			AuthorName: authorName,
			ImageName:  params.ImageName,
			LayerCount: len(params.Layers),
			Pro:        pro,
		})
	})
	if err != nil {
		return db.Image{}, nil, err
	}
	return image, designs, nil
}

// GetImage fetches a single image record.
func (s *Store) GetImage(imageID uint) (db.Image, error) {
	var image db.Image
	if err := s.db.First(&image, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.Image{}, ErrUnknownImage
		}
		return db.Image{}, err
	}
	return image, nil
}

// ListRecentImages returns the reverse-chronological upload feed.
func (s *Store) ListRecentImages(limit, offset int) ([]db.Image, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}
	var images []db.Image
	err := s.db.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&images).Error
	return images, err
}

// DeleteImage is the only sanctioned way to remove an image: it requires the
// deletion token issued at upload and removes the design rows and the image
// row in one transaction. It returns the deleted design ids in tile order so
// the caller can free the corresponding in-game slots.
func (s *Store) DeleteImage(imageID uint, deletionToken []byte) ([]int64, error) {
	var designIDs []int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var image db.Image
		if err := tx.First(&image, imageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownImage
			}
			return err
		}
		if subtle.ConstantTimeCompare(image.DeletionToken, deletionToken) != 1 {
			return ErrBadDeletionToken
		}
		if err := tx.Model(&db.Design{}).
			Where("image_id = ?", imageID).
			Order("position ASC").
			Pluck("id", &designIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("image_id = ?", imageID).Delete(&db.Design{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db.Image{}, imageID).Error; err != nil {
			return err
		}
		return recordEvent(tx, "image_deleted", &imageID, nil, EventPayload{Count: len(designIDs)})
	})
	if err != nil {
		return nil, err
	}
	return designIDs, nil
}
