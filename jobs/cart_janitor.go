// Package jobs holds the background workers that run alongside the HTTP
// server.
package jobs

import (
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/tomb.v2"

	"github.com/arbazessaqkhan/jktfeed/models"
	"github.com/arbazessaqkhan/jktfeed/store"
)

const sweepInterval = time.Hour

// CartJanitor periodically deletes cart rows that have not been touched
// within the configured TTL. Session carts have no account linkage, so
// abandoned ones would otherwise accumulate forever.
type CartJanitor struct {
	store      *store.Store
	defaultTTL time.Duration
	tomb       tomb.Tomb
}

// NewCartJanitor creates a janitor with the given fallback TTL. The
// cart_ttl_hours setting, when present, overrides it at each sweep.
func NewCartJanitor(st *store.Store, defaultTTL time.Duration) *CartJanitor {
	return &CartJanitor{store: st, defaultTTL: defaultTTL}
}

// Start launches the sweep loop
func (j *CartJanitor) Start() {
	j.tomb.Go(j.run)
}

// Stop asks the loop to exit and waits for it
func (j *CartJanitor) Stop() error {
	j.tomb.Kill(nil)
	return j.tomb.Wait()
}

func (j *CartJanitor) run() error {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Sweep()
		case <-j.tomb.Dying():
			return nil
		}
	}
}

// Sweep deletes cart rows older than the effective TTL once
func (j *CartJanitor) Sweep() {
	cutoff := time.Now().Add(-j.effectiveTTL())
	removed, err := j.store.PurgeAbandonedCarts(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("cart sweep failed")
		return
	}
	if removed > 0 {
		log.Info().Int64("removed", removed).Msg("purged abandoned cart rows")
	}
}

func (j *CartJanitor) effectiveTTL() time.Duration {
	setting, err := j.store.GetSetting(models.SettingCartTTLHours)
	if err == nil {
		if hours, convErr := strconv.Atoi(setting.Value); convErr == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return j.defaultTTL
}
