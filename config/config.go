// SPDX-License-Identifier: MIT
//
// Package config holds the lvroute runtime configuration.
//
// Values are resolved with priority env > file > defaults. A missing file is
// not an error (defaults apply); a file that exists but does not parse is.
// Command-line flags are applied on top by the CLI.
//
// Example file:
//
//	data:
//	  nodes: data/nodes.csv
//	  edges: data/edges.csv
//	router:
//	  astar: true
//	  max_cost: 0        # 0 = unlimited
//	server:
//	  addr: ":8080"
//	log:
//	  level: debug
//	  format: json
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/router"
)

// ErrInvalid wraps every Validate finding.
var ErrInvalid = errors.New("config: invalid")

// Config is the full runtime configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Router RouterConfig `yaml:"router"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig names the map sources. Map (YAML) wins over Nodes/Edges (CSV).
type DataConfig struct {
	Nodes    string `yaml:"nodes"`
	Edges    string `yaml:"edges"`
	Map      string `yaml:"map"`
	Directed bool   `yaml:"directed"`
}

// RouterConfig mirrors the router options. Zero limits mean unlimited.
type RouterConfig struct {
	AStar        bool    `yaml:"astar"`
	MaxCost      float64 `yaml:"max_cost"`
	ImpassableAt float64 `yaml:"impassable_at"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data: DataConfig{
			Nodes: "data/nodes.csv",
			Edges: "data/edges.csv",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load resolves the configuration from defaults, the file at path (optional,
// may be empty) and LVROUTE_* environment variables, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("LVROUTE_NODES"); v != "" {
		cfg.Data.Nodes = v
	}
	if v := os.Getenv("LVROUTE_EDGES"); v != "" {
		cfg.Data.Edges = v
	}
	if v := os.Getenv("LVROUTE_MAP"); v != "" {
		cfg.Data.Map = v
	}
	if v := os.Getenv("LVROUTE_ASTAR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Router.AStar = b
		}
	}
	if v := os.Getenv("LVROUTE_MAX_COST"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Router.MaxCost = f
		}
	}
	if v := os.Getenv("LVROUTE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LVROUTE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LVROUTE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Validate reports every invalid field at once, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Router.MaxCost < 0 || math.IsNaN(c.Router.MaxCost) {
		bad("router.max_cost must be ≥ 0, got %g", c.Router.MaxCost)
	}
	if c.Router.ImpassableAt < 0 || math.IsNaN(c.Router.ImpassableAt) {
		bad("router.impassable_at must be ≥ 0, got %g", c.Router.ImpassableAt)
	}
	if c.Server.Addr == "" {
		bad("server.addr is empty")
	}
	if c.Server.ShutdownTimeout < 0 {
		bad("server.shutdown_timeout must be ≥ 0, got %s", c.Server.ShutdownTimeout)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		bad("log.level %q (want debug, info, warn or error)", c.Log.Level)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		bad("log.format %q (want text or json)", c.Log.Format)
	}

	return errors.Join(errs...)
}

// RouterOptions translates the router section into router options.
func (c Config) RouterOptions() []router.Option {
	var opts []router.Option
	if c.Router.AStar {
		opts = append(opts, router.WithAStar())
	}
	if c.Router.MaxCost > 0 {
		opts = append(opts, router.WithMaxCost(c.Router.MaxCost))
	}
	if c.Router.ImpassableAt > 0 {
		opts = append(opts, router.WithImpassableThreshold(c.Router.ImpassableAt))
	}

	return opts
}

// Logger builds a logger writing to w with the configured level and format.
// Unknown levels fall back to info, unknown formats to text.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	hopts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.EqualFold(c.Log.Format, "json") {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}

	return slog.New(h)
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
