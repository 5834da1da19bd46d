package designs

import (
	"design-vault/internal/db"

	"gorm.io/gorm"
)

// createTiles inserts one design row per layer, positions 0..N-1, freezing
// the parent's pro flag and each layer's byte length onto the row. It runs
// inside the image-creation transaction, so an image is never visible
// without its full tile set.
func createTiles(tx *gorm.DB, image *db.Image, designIDs []int64) ([]db.Design, error) {
	if image.ID == 0 {
		return nil, ErrUnknownImage
	}
	if len(designIDs) != len(image.Layers) {
		return nil, ErrTileCountMismatch
	}
	now := timeNowUTC()
	designs := make([]db.Design, len(designIDs))
	for i, id := range designIDs {
		designs[i] = db.Design{
			ID:        id,
			ImageID:   image.ID,
			Position:  i,
			Pro:       image.Pro,
			SizeBytes: int64(len(image.Layers[i])),
			CreatedAt: now,
		}
	}
	if err := tx.Create(&designs).Error; err != nil {
		return nil, err
	}
	return designs, nil
}

// ListDesignsForImage returns the image's surviving tiles in position order.
// Positions are contiguous from 0 at creation; gaps mean tiles the garbage
// collector has reclaimed, not an error.
func (s *Store) ListDesignsForImage(imageID uint) ([]db.Design, error) {
	var count int64
	if err := s.db.Model(&db.Image{}).Where("id = ?", imageID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUnknownImage
	}
	var designs []db.Design
	err := s.db.
		Where("image_id = ?", imageID).
		Order("position ASC").
		Find(&designs).Error
	return designs, err
}

// DeleteDesign removes a single tile. It never touches the parent image and
// deleting an already-deleted id is a no-op.
func (s *Store) DeleteDesign(designID int64) error {
	return s.db.Delete(&db.Design{}, designID).Error
}
