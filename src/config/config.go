package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds the dashboard service configuration.
type Config struct {
	// DataFile is the backing dataset, a CSV or XLSX file with one row
	// per customer. It is read exactly once per process lifetime.
	DataFile string `json:"data_file"`
	// SheetName selects the worksheet when DataFile is an XLSX file.
	SheetName string `json:"sheet_name"`
	// WatchDataFile enables a watcher that warns when the backing file
	// changes on disk. The in-memory table is never reloaded.
	WatchDataFile bool `json:"watch_data_file"`

	ListenAddr string `json:"listen_addr"`

	LogName    string `json:"log_name"`
	LogMaxSize string `json:"log_max_size"`

	Report struct {
		// Schedule is a cron spec (e.g. "@daily" or "0 0 7 * * *").
		// Empty disables the report exporter.
		Schedule  string `json:"schedule"`
		OutputDir string `json:"output_dir"`
		// WebhookURL receives the headline summary as JSON after each
		// export. Empty disables the push.
		WebhookURL     string   `json:"webhook_url"`
		WebhookTimeout Duration `json:"webhook_timeout"`
	} `json:"report"`
}

var (
	once     sync.Once
	instance *Config
	loadErr  error
)

// LoadConfig reads the configuration once per process and returns the
// same result on every later call, a load failure included.
func LoadConfig(jsonFolder, jsonFile string) (*Config, error) {
	once.Do(func() {
		instance, loadErr = loadConfig(filepath.Join(jsonFolder, jsonFile))
	})
	return instance, loadErr
}

func loadConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configFile, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataFile == "" {
		c.DataFile = filepath.Join("data", "processed", "dashboard_data.csv")
	}
	if c.SheetName == "" {
		c.SheetName = "Sheet1"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.LogName == "" {
		c.LogName = "app.log"
	}
	if c.LogMaxSize == "" {
		c.LogMaxSize = "10 * 1024 * 1024"
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "reports"
	}
	if c.Report.WebhookTimeout == 0 {
		c.Report.WebhookTimeout = Duration(10 * time.Second)
	}
}

func (c *Config) validate() error {
	if c.Report.Schedule != "" && c.Report.OutputDir == "" {
		return fmt.Errorf("report schedule set but no output directory configured")
	}
	return nil
}

// Duration wraps time.Duration so config files can carry values like
// "5m" or "10s".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
