package designs

import (
	"encoding/json"

	"design-vault/internal/db"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventPayload struct {
	UserID     uint   `json:"user_id,omitempty"`
	AuthorName string `json:"author,omitempty"`
	ImageName  string `json:"image_name,omitempty"`
	LayerCount int    `json:"layer_count,omitempty"`
	Pro        bool   `json:"pro,omitempty"`
	Count      int    `json:"count,omitempty"`
	Bytes      int64  `json:"bytes,omitempty"`
}

// recordEvent writes an audit row inside the caller's transaction so the
// event commits or rolls back together with the operation it describes.
func recordEvent(tx *gorm.DB, eventType string, imageID *uint, designID *int64, payload EventPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := db.Event{
		ImageID:   imageID,
		DesignID:  designID,
		Type:      eventType,
		Payload:   datatypes.JSON(data),
		CreatedAt: timeNowUTC(),
	}
	return tx.Create(&event).Error
}
