package config

import (
    "fmt"
    "os"
    "strconv"
    "time"

    "gopkg.in/yaml.v3"

    "threathunter/internal/services/viewstate"
)

type Config struct {
    Env              string        `yaml:"env"`
    ListenAddr       string        `yaml:"listen_addr"`
    DatabaseURL      string        `yaml:"database_url"`
    RedisURL         string        `yaml:"redis_url"`
    SearchDelay      time.Duration `yaml:"search_delay"`
    InfographicDelay time.Duration `yaml:"infographic_delay"`
    ProgressSteps    int           `yaml:"progress_steps"`
    SessionTTL       time.Duration `yaml:"session_ttl"`
    SweepInterval    time.Duration `yaml:"sweep_interval"`
    SeverityPolicy   string        `yaml:"severity_policy"`
    SessionCookie    string        `yaml:"session_cookie"`
}

func Default() Config {
    return Config{
        Env:              "development",
        ListenAddr:       ":8080",
        SearchDelay:      viewstate.DefaultSearchDelay,
        InfographicDelay: viewstate.DefaultInfographicDelay,
        ProgressSteps:    4,
        SessionTTL:       30 * time.Minute,
        SweepInterval:    time.Minute,
        SeverityPolicy:   "legacy",
        SessionCookie:    "hunt_session",
    }
}

// Load builds the configuration from defaults, then the YAML file at path
// (or CONFIG_FILE when path is empty), then environment variables.
func Load(path string) (Config, error) {
    cfg := Default()
    if path == "" {
        path = os.Getenv("CONFIG_FILE")
    }
    if path != "" {
        buf, err := os.ReadFile(path)
        if err != nil {
            return cfg, fmt.Errorf("read config %s: %w", path, err)
        }
        if err := yaml.Unmarshal(buf, &cfg); err != nil {
            return cfg, fmt.Errorf("parse config %s: %w", path, err)
        }
    }

    cfg.Env = getenv("APP_ENV", cfg.Env)
    cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
    cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
    cfg.RedisURL = getenv("REDIS_URL", cfg.RedisURL)
    cfg.SearchDelay = getenvDuration("SEARCH_DELAY", cfg.SearchDelay)
    cfg.InfographicDelay = getenvDuration("INFOGRAPHIC_DELAY", cfg.InfographicDelay)
    cfg.ProgressSteps = getenvInt("PROGRESS_STEPS", cfg.ProgressSteps)
    cfg.SessionTTL = getenvDuration("SESSION_TTL", cfg.SessionTTL)
    cfg.SweepInterval = getenvDuration("SWEEP_INTERVAL", cfg.SweepInterval)
    cfg.SeverityPolicy = getenv("SEVERITY_POLICY", cfg.SeverityPolicy)
    cfg.SessionCookie = getenv("SESSION_COOKIE", cfg.SessionCookie)

    return cfg, cfg.validate()
}

func (c Config) validate() error {
    if c.ListenAddr == "" {
        return fmt.Errorf("listen address is empty")
    }
    if c.SearchDelay < 0 || c.InfographicDelay < 0 {
        return fmt.Errorf("delays must not be negative")
    }
    if c.ProgressSteps < 1 {
        return fmt.Errorf("progress steps must be at least 1, got %d", c.ProgressSteps)
    }
    if c.SessionCookie == "" {
        return fmt.Errorf("session cookie name is empty")
    }
    return nil
}

// StoreKind names the session store the settings select. Postgres wins when
// both URLs are set.
func (c Config) StoreKind() string {
    switch {
    case c.DatabaseURL != "":
        return "postgres"
    case c.RedisURL != "":
        return "redis"
    default:
        return "memory"
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func getenvInt(key string, def int) int {
    if v := os.Getenv(key); v != "" {
        if out, err := strconv.Atoi(v); err == nil {
            return out
        }
    }
    return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
    if v := os.Getenv(key); v != "" {
        if d, err := time.ParseDuration(v); err == nil {
            return d
        }
    }
    return def
}
