package designs

import (
	"context"
	"log"
	"time"
)

// Sweeper runs periodic garbage-collection sweeps. The external scheduler is
// just a ticker; all policy lives in Store.Reclaim.
type Sweeper struct {
	store    *Store
	interval time.Duration
	target   SweepTarget
}

func NewSweeper(store *Store, interval time.Duration, target SweepTarget) *Sweeper {
	return &Sweeper{store: store, interval: interval, target: target}
}

// Run sweeps immediately, then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.sweep()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	result, err := s.store.Reclaim(s.target)
	if err != nil {
		log.Printf("gc sweep failed after reclaiming %d designs: %v", result.Designs, err)
		return
	}
	if result.Designs > 0 {
		log.Printf("gc sweep reclaimed %d designs (%d bytes)", result.Designs, result.Bytes)
	}
}
