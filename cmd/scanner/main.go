package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SwingScout/internal/collector"
	"SwingScout/internal/config"
	"SwingScout/internal/notifier"
	"SwingScout/internal/scanner"
	"SwingScout/internal/scheduler"
	"SwingScout/internal/store"
	"SwingScout/internal/strategy"
	"SwingScout/internal/universe"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SwingScout starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init universe resolver
	resolver := universe.NewResolver(cfg.Universe.BulkListURL, cfg.Universe.IndexAPIURL, cfg.Proxy, cfg.Scan.MaxUniverse)

	// Init collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher, collector.Params{
		LookbackDays: cfg.Scan.LookbackDays,
		MinBars:      cfg.Scan.MinBars,
		EMAShortSpan: cfg.Scan.EMAShortSpan,
		EMALongSpan:  cfg.Scan.EMALongSpan,
		RSIPeriod:    cfg.Scan.RSIPeriod,
		VolumeWindow: cfg.Scan.VolumeWindow,
		HighWindow:   cfg.Scan.HighWindow,
	})

	// Init classifier
	cls := strategy.NewClassifier(strategy.Criteria{
		RSIMin:         cfg.Scan.RSIMin,
		RSIMax:         cfg.Scan.RSIMax,
		VolumeMultiple: cfg.Scan.VolumeMultiple,
		ProximityRatio: cfg.Scan.ProximityRatio,
	})

	// Init result store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			st = store.NewNoopStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewNoopStore()
	}

	// Init notification channels
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Proxy)
	em := notifier.NewEmailNotifier(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	disp := notifier.NewDispatcher(tn, em, st)

	// Init orchestrator
	orch := scanner.NewOrchestrator(resolver, col, cls, st, scanner.Options{
		PaceInterval:  time.Duration(cfg.Scan.PaceMillis) * time.Millisecond,
		ProgressEvery: cfg.Scan.ProgressEvery,
	})

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, orch, disp, st, tn, cfg.Telegram.AdminChatID)
	if err := sched.RegisterAll(cfg.Scan.Cron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling for admin commands
	go tn.StartPolling(ctx, cfg.Telegram.AdminChatID, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] SwingScout is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SwingScout stopped")
}
