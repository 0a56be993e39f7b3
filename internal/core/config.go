package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/innerguide/guide-api/internal/core/srv"
	"github.com/innerguide/guide-api/pkg/sqlstore"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var conf CoreConfig
	if err = toml.Unmarshal(raw, &conf); err != nil {
		panic(err)
	}
	conf.applyDefaults()
	return conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	c.applyDefaults()
	return c
}

type CoreConfig struct {
	Addr   string                 `toml:"addr"`
	Log    Log                    `toml:"log"`
	SQLite sqlstore.ConnectConfig `toml:"sqlite"`

	AI srv.AIConfig `toml:"ai"`

	Security Security `toml:"security"`
	Import   Import   `toml:"import"`
	Geo      Geo      `toml:"geo"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("GUIDE_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.SQLite.DSN = os.Getenv("GUIDE_API_SQLITE_DSN")
	c.AI.FromENV()
	c.Security.FromENV()
	c.Import.FromENV()
	c.Geo.FromENV()
}

func (c *CoreConfig) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":33033"
	}
	if c.SQLite.DSN == "" {
		c.SQLite.DSN = "guide.db"
	}
	if c.Import.InsightIntervalSeconds <= 0 {
		c.Import.InsightIntervalSeconds = 2
	}
	if c.Import.CopyRetentionDays <= 0 {
		c.Import.CopyRetentionDays = 90
	}
	if c.Geo.Endpoint == "" {
		c.Geo.Endpoint = "http://ip-api.com/json"
	}
	if c.Geo.TimeoutSeconds <= 0 {
		c.Geo.TimeoutSeconds = 3
	}
}

type Security struct {
	// AccessToken guards all /api routes when set. Empty means open,
	// which fits the single-user local deployment.
	AccessToken string `toml:"access_token"`
}

func (s *Security) FromENV() {
	s.AccessToken = os.Getenv("GUIDE_API_ACCESS_TOKEN")
}

type Import struct {
	// seconds between insight enrichment calls after a bulk import
	InsightIntervalSeconds int `toml:"insight_interval_seconds"`
	// stored raw copies older than this are swept by the cron job
	CopyRetentionDays int `toml:"copy_retention_days"`
}

func (i *Import) FromENV() {
	i.InsightIntervalSeconds, _ = strconv.Atoi(os.Getenv("GUIDE_API_IMPORT_INSIGHT_INTERVAL"))
	i.CopyRetentionDays, _ = strconv.Atoi(os.Getenv("GUIDE_API_IMPORT_COPY_RETENTION_DAYS"))
}

type Geo struct {
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func (g *Geo) FromENV() {
	g.Endpoint = os.Getenv("GUIDE_API_GEO_ENDPOINT")
	g.TimeoutSeconds, _ = strconv.Atoi(os.Getenv("GUIDE_API_GEO_TIMEOUT"))
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("GUIDE_API_LOG_LEVEL")
	l.Path = os.Getenv("GUIDE_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
