package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/gorocky/warroom/internal/alerts"
	"github.com/gorocky/warroom/internal/config"
	"github.com/gorocky/warroom/internal/engine"
	"github.com/gorocky/warroom/internal/report"
	"github.com/gorocky/warroom/internal/scheduler"
	"github.com/gorocky/warroom/internal/store"
	"github.com/gorocky/warroom/internal/util"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config")
	daemon := flag.Bool("daemon", false, "run the cron refresh loop instead of a single evaluation")
	csvPath := flag.String("csv", "", "write the comparison table to a CSV file")
	flag.Parse()

	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := util.NewLogger(cfg.LogLevel)

	snaps := store.OpenSnapshots(cfg.Store.SnapshotPath, cfg.Store.KeepSnapshots)
	comps := store.OpenCompetitors(cfg.Store.CompetitorPath)
	eng := engine.NewWithConfig(cfg.Pricing.MarkupFactor, cfg.DetectorConfig())

	if *daemon {
		runDaemon(cfg, snaps, comps, eng, log)
		return
	}

	if err := runOnce(cfg, snaps, comps, eng, *csvPath); err != nil {
		log.Error().Err(err).Msg("evaluation failed")
		os.Exit(1)
	}
}

func runOnce(cfg *config.Config, snaps *store.SnapshotStore, comps *store.CompetitorFile, eng *engine.Engine, csvPath string) error {
	snapshots, err := snaps.Load()
	if err != nil {
		return err
	}
	roster, err := comps.Load()
	if err != nil {
		return err
	}

	result := eng.Evaluate(time.Now(), engine.Input{
		Snapshots:   snapshots,
		Competitors: roster,
		Rules:       alerts.DefaultRules(),
	})

	fmt.Printf("Market Position: %+.1f%% vs market avg\n", result.KPIs.MarketPositionPct)
	fmt.Printf("Active Alerts:   %d\n", result.KPIs.ActiveAlerts)
	fmt.Printf("Last Scrape:     %s\n", result.KPIs.DataFreshness)

	for _, a := range result.Alerts {
		fmt.Printf("  [%s] %s (suggested $%.2f)\n", a.Kind, a.Message, a.SuggestedPrice)
	}
	for _, m := range result.RuleMatches {
		fmt.Printf("  [rule] %s: %s/%s %.2f -> %.2f\n", m.Rule.Name, m.CompetitorID, m.SKU, m.PreviousPrice, m.CurrentPrice)
	}

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		if err := report.WriteBattlegroundCSV(f, roster, result.Table); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	return nil
}

func runDaemon(cfg *config.Config, snaps *store.SnapshotStore, comps *store.CompetitorFile, eng *engine.Engine, log zerolog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inbox := store.NewInbox(cfg.Store.InboxPath)
	sched := scheduler.New(ctx, inbox, snaps, comps, eng, alerts.DefaultRules(), log)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Error().Err(err).Msg("scheduler setup failed")
		os.Exit(1)
	}

	sched.Start()
	log.Info().Str("cron", cfg.Schedule.RefreshCron).Msg("refresh loop started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutting down")
	sched.Stop()
}
