package designs

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"design-vault/internal/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	// Named in-memory databases keep each test isolated while letting the
	// connection pool share one database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return NewStore(conn)
}

func mustCreateFreeImage(t *testing.T, store *Store, designID int64) (db.Image, []db.Design) {
	t.Helper()
	image, designs, err := store.CreateImage(CreateImageParams{
		AuthorName: "Villager",
		ImageName:  "leaf",
		TypeCode:   1,
		Layers:     [][]byte{bytes.Repeat([]byte{0xAB}, 64)},
		Width:      32,
		Height:     32,
		DesignIDs:  []int64{designID},
	})
	if err != nil {
		t.Fatalf("create free image: %v", err)
	}
	return image, designs
}

func mustCreateProImage(t *testing.T, store *Store, designIDs ...int64) (db.Image, []db.Design) {
	t.Helper()
	layers := make([][]byte, len(designIDs))
	for i := range layers {
		layers[i] = bytes.Repeat([]byte{byte(i + 1)}, 128)
	}
	image, designs, err := store.CreateImage(CreateImageParams{
		AuthorName: "Villager",
		ImageName:  "mural",
		TypeCode:   2,
		Layers:     layers,
		DesignIDs:  designIDs,
	})
	if err != nil {
		t.Fatalf("create pro image: %v", err)
	}
	return image, designs
}

func backdateDesign(t *testing.T, store *Store, designID int64, age time.Duration) {
	t.Helper()
	ts := time.Now().UTC().Add(-age)
	if err := store.db.Model(&db.Design{}).Where("id = ?", designID).Update("created_at", ts).Error; err != nil {
		t.Fatalf("backdate design %d: %v", designID, err)
	}
}

func designCount(t *testing.T, store *Store) int64 {
	t.Helper()
	var count int64
	if err := store.db.Model(&db.Design{}).Count(&count).Error; err != nil {
		t.Fatalf("count designs: %v", err)
	}
	return count
}

func imageCount(t *testing.T, store *Store) int64 {
	t.Helper()
	var count int64
	if err := store.db.Model(&db.Image{}).Count(&count).Error; err != nil {
		t.Fatalf("count images: %v", err)
	}
	return count
}

func designExists(t *testing.T, store *Store, designID int64) bool {
	t.Helper()
	var count int64
	if err := store.db.Model(&db.Design{}).Where("id = ?", designID).Count(&count).Error; err != nil {
		t.Fatalf("look up design %d: %v", designID, err)
	}
	return count == 1
}
