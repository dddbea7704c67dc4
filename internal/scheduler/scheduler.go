// Package scheduler runs the periodic refresh loop: pull a fresh snapshot
// from the producer boundary, persist it, re-evaluate, and log what changed.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/gorocky/warroom/internal/engine"
	"github.com/gorocky/warroom/internal/model"
	"github.com/gorocky/warroom/internal/store"
)

// Source supplies fresh snapshots from the external scrape pipeline.
type Source interface {
	FetchSnapshot(ctx context.Context) (model.Snapshot, error)
}

// Scheduler owns the cron loop and the wiring between source, store, and
// engine. Overrides and dismissals stay caller-held maps, swapped in
// atomically via SetSideTables before a tick reads them.
type Scheduler struct {
	cron        *cron.Cron
	source      Source
	snapshots   *store.SnapshotStore
	competitors *store.CompetitorFile
	engine      *engine.Engine
	rules       []model.AlertRule
	overrides   map[string]float64
	dismissed   map[string]bool
	log         zerolog.Logger
	ctx         context.Context
}

// New creates a scheduler. The cron spec uses the six-field form with a
// leading seconds column.
func New(ctx context.Context, src Source, snaps *store.SnapshotStore, comps *store.CompetitorFile, eng *engine.Engine, rules []model.AlertRule, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithSeconds()),
		source:      src,
		snapshots:   snaps,
		competitors: comps,
		engine:      eng,
		rules:       rules,
		log:         log,
		ctx:         ctx,
	}
}

// SetSideTables replaces the override and dismissed maps the next tick
// reads. Callers pass fresh maps rather than mutating the old ones.
func (s *Scheduler) SetSideTables(overrides map[string]float64, dismissed map[string]bool) {
	s.overrides = overrides
	s.dismissed = dismissed
}

// Register adds the refresh task under the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start begins the cron loop.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron loop and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshTask() {
	if err := s.RunOnce(s.ctx); err != nil {
		s.log.Warn().Err(err).Msg("refresh skipped")
	}
}

// RunOnce executes a single refresh pass: fetch, append, evaluate, log.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	snap, err := s.source.FetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("fetch snapshot: %w", err)
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}

	history, err := s.snapshots.Append(snap)
	if err != nil {
		return fmt.Errorf("append snapshot: %w", err)
	}

	comps, err := s.competitors.Load()
	if err != nil {
		return fmt.Errorf("load competitors: %w", err)
	}

	report := s.engine.Evaluate(time.Now(), engine.Input{
		Snapshots:   history,
		Competitors: comps,
		Rules:       s.rules,
		Overrides:   s.overrides,
		Dismissed:   s.dismissed,
	})

	s.log.Info().
		Float64("market_position_pct", report.KPIs.MarketPositionPct).
		Int("active_alerts", report.KPIs.ActiveAlerts).
		Str("freshness", report.KPIs.DataFreshness).
		Msg("evaluation complete")

	for _, a := range report.Alerts {
		s.log.Warn().
			Str("id", a.ID).
			Str("kind", string(a.Kind)).
			Str("competitor", a.CompetitorID).
			Str("sku", a.SKU).
			Float64("price", a.NewPrice).
			Float64("suggested", a.SuggestedPrice).
			Msg(a.Message)
	}
	for _, m := range report.RuleMatches {
		s.log.Info().
			Str("rule", m.Rule.Name).
			Str("competitor", m.CompetitorID).
			Str("sku", m.SKU).
			Float64("current", m.CurrentPrice).
			Float64("previous", m.PreviousPrice).
			Msg("rule fired")
	}
	return nil
}
