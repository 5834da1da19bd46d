package designs

import (
	"fmt"
	"log"

	"design-vault/internal/db"

	"gorm.io/gorm"
)

// Sweep batches are kept small so a sweep never holds a long write
// transaction while uploads are in flight.
const sweepBatchSize = 50

// SweepTarget bounds one garbage-collection sweep. A sweep stops as soon as
// either set target is reached; a zero target is ignored.
type SweepTarget struct {
	MaxDesigns int
	MaxBytes   int64
}

func (t SweepTarget) met(r SweepResult) bool {
	if t.MaxDesigns <= 0 && t.MaxBytes <= 0 {
		return true
	}
	if t.MaxDesigns > 0 && r.Designs >= t.MaxDesigns {
		return true
	}
	if t.MaxBytes > 0 && r.Bytes >= t.MaxBytes {
		return true
	}
	return false
}

// SweepResult reports what a sweep actually reclaimed.
type SweepResult struct {
	Designs int
	Bytes   int64
}

// Reclaim deletes design rows until the target is met or candidates are
// exhausted. Candidates are ordered free-tier first, oldest first within
// each tier, so disposable single-tile designs are always reclaimed before
// any tile of a composite. Image rows are never touched. Rows deleted by a
// concurrent sweep count as already reclaimed; a failing batch aborts the
// sweep and reports what was reclaimed before the failure.
func (s *Store) Reclaim(target SweepTarget) (SweepResult, error) {
	var result SweepResult
	for !target.met(result) {
		var candidates []db.Design
		if err := s.db.
			Order("pro ASC, created_at ASC, id ASC").
			Limit(sweepBatchSize).
			Find(&candidates).Error; err != nil {
			return result, fmt.Errorf("fetch sweep candidates: %w", err)
		}
		if len(candidates) == 0 {
			break
		}

		planned := result
		var batch []db.Design
		var ids []int64
		for _, candidate := range candidates {
			if target.met(planned) {
				break
			}
			batch = append(batch, candidate)
			ids = append(ids, candidate.ID)
			planned.Designs++
			planned.Bytes += candidate.SizeBytes
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id IN ?", ids).Delete(&db.Design{}).Error; err != nil {
				return err
			}
			for i := range batch {
				err := recordEvent(tx, "design_reclaimed", &batch[i].ImageID, &batch[i].ID, EventPayload{
					Pro:   batch[i].Pro,
					Bytes: batch[i].SizeBytes,
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return result, fmt.Errorf("delete sweep batch: %w", err)
		}
		for _, id := range ids {
			log.Printf("gc: reclaimed design %s", FormatDesignCode(id))
		}
		result = planned
	}
	return result, nil
}
