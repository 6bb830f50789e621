package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"crashwatch/internal/collector"
	"crashwatch/internal/config"
	"crashwatch/internal/logger"
	"crashwatch/internal/monitor"
	"crashwatch/internal/notifier"
	"crashwatch/internal/recorder"
	"crashwatch/internal/scheduler"
	"crashwatch/internal/state"
	"crashwatch/internal/strategy"
)

func main() {
	daemon := flag.Bool("daemon", false, "run on the configured cron schedule instead of once")
	flag.Parse()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Validation happens before any network I/O: a missing webhook must fail
	// without sending anything.
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	var fetcher collector.Fetcher
	if cfg.DataSource.Source == "quote" {
		fetcher = collector.NewQuoteFetcher()
	} else {
		fetcher = collector.NewChartFetcher(cfg.Proxy)
	}
	log.Infof("data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, collector.SymbolSet{
		Primary:    cfg.Symbols.Primary,
		Broad:      cfg.Symbols.Broad,
		Volatility: cfg.Symbols.Volatility,
	}, log)

	store := state.NewStore(cfg.State.File, log)
	slack := notifier.NewSlackNotifier(cfg.Slack.WebhookURL, cfg.Proxy)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warnf("init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	runner := monitor.NewRunner(col, store, slack, rec, strategy.Thresholds{
		MajorDrawdown: cfg.Thresholds.MajorDrawdown,
		MinorDrawdown: cfg.Thresholds.MinorDrawdown,
		Volatility:    cfg.Thresholds.Volatility,
	}, log)

	if !*daemon {
		if err := runner.Run(); err != nil {
			log.Errorf("run: %v", err)
			log.Sync()
			os.Exit(1)
		}
		return
	}

	sched := scheduler.NewScheduler(runner, log)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Infof("crashwatch is running (schedule %q), press Ctrl+C to stop", cfg.Schedule.Cron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Infof("shutdown signal received, stopping")
}
