package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ChurnIntelligence/src/config"
	"ChurnIntelligence/src/dashboard"
	"ChurnIntelligence/src/datapush"
	"ChurnIntelligence/src/datasource/file"
	"ChurnIntelligence/src/processor"
	"ChurnIntelligence/src/storage"

	"github.com/go-gota/gota/dataframe"
	"github.com/robfig/cron"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadConfig("./config", "config.json")
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := storage.NewLogger(cfg.LogName)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// The dataset is read exactly once; a missing or malformed file is
	// fatal, retrying a static file would not help.
	loader := file.NewDatasetLoader(cfg.DataFile, cfg.SheetName)
	df, err := loader.Load()
	if err != nil {
		logger.Fatal(err.Error())
		log.Fatal("Failed to load dataset:", err)
	}
	logger.Info(fmt.Sprintf("dataset loaded: %d rows from %s", df.Nrow(), cfg.DataFile))
	if df.Nrow() == 0 {
		logger.Warning("dataset has no rows; all views will report no data")
	}

	if cfg.WatchDataFile {
		startDatasetWatcher(cfg.DataFile, logger)
	}

	c := cron.New()
	if err := scheduleLogRotation(c, logger, cfg.LogMaxSize, logRotateSpec); err != nil {
		logger.Error("create log rotation schedule: " + err.Error())
	}

	if cfg.Report.Schedule != "" {
		exporter := &datapush.ReportExporter{OutputDir: cfg.Report.OutputDir}
		var pusher *datapush.SummaryPusher
		if cfg.Report.WebhookURL != "" {
			pusher = datapush.NewSummaryPusher(cfg.Report.WebhookURL, time.Duration(cfg.Report.WebhookTimeout))
		}

		err = c.AddFunc(cfg.Report.Schedule, func() {
			runReport(df, exporter, pusher, logger)
		})
		if err != nil {
			logger.Error("create report schedule: " + err.Error())
			return
		}
		logger.Info(fmt.Sprintf("report exporter scheduled (%s)", cfg.Report.Schedule))
	}

	c.Start()
	defer c.Stop()

	api := dashboard.NewAPI(df, logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: corsHandler.Handler(api.Router()),
	}

	go func() {
		logger.Info("dashboard listening on " + cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error: " + err.Error())
		}
	}()

	waitForShutdown(srv, logger)
}

// logRotateSpec is how often the log file size is checked against the
// configured maximum.
const logRotateSpec = "@every 1m"

// scheduleLogRotation adds the periodic log size check to the cron
// instance.
func scheduleLogRotation(c *cron.Cron, logger *storage.Logger, maxSize, spec string) error {
	return c.AddFunc(spec, func() {
		if err := logger.CheckRotate(maxSize); err != nil {
			logger.Error("log rotation: " + err.Error())
		}
	})
}

// startDatasetWatcher warns when the backing file changes. The cached
// table is never reloaded; operators restart to pick up new data.
func startDatasetWatcher(path string, logger *storage.Logger) {
	monitor, err := file.NewFileMonitor(path)
	if err != nil {
		logger.Error("create dataset watcher: " + err.Error())
		return
	}

	go func() {
		err := monitor.Watch(func(changed string) {
			logger.Warning(fmt.Sprintf("dataset %s changed on disk; restart to load the new data", changed))
		})
		if err != nil {
			logger.Error("dataset watcher stopped: " + err.Error())
		}
	}()
}

func runReport(df dataframe.DataFrame, exporter *datapush.ReportExporter, pusher *datapush.SummaryPusher, logger *storage.Logger) {
	t1 := time.Now()
	path, err := exporter.Export(df)
	if err != nil {
		logger.Error("export report: " + err.Error())
		return
	}
	logger.Info(fmt.Sprintf("report exported to %s (%v)", path, time.Since(t1)))

	if pusher == nil {
		return
	}

	stats, err := processor.Headline(df)
	if err != nil {
		logger.Error("summarize for push: " + err.Error())
		return
	}
	if err := pusher.Push(stats, processor.RiskDistribution(df), path); err != nil {
		logger.Error("push summary: " + err.Error())
		return
	}
	logger.Info("summary pushed to webhook")
}

func waitForShutdown(srv *http.Server, logger *storage.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("Received signal: " + sig.String() + ", shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown: " + err.Error())
	}
	logger.Close()
}
