package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ListenAddr    string
	StoreDriver   string
	DatabaseURL   string
	SQLitePath    string
	SeedDemo      bool
	LogLevel      string
	MaxCPU        int
	ShutdownWait  time.Duration
	DefaultWindow time.Duration

	SimulatorEnabled bool
	SimulatorEvery   time.Duration
	SimulatorDevices []string
}

func Parse() (*Config, error) {
	var errs []error
	c := &Config{}
	c.ListenAddr = getenv("LISTEN_ADDR", ":3001")
	c.StoreDriver = strings.ToLower(getenv("STORE_DRIVER", DriverPostgres))
	c.DatabaseURL = getenv("DATABASE_URL", "")
	c.SQLitePath = getenv("SQLITE_PATH", "./data/sensors.db")
	c.SeedDemo = mustBool(getenv("SEED_DEMO", "false"))
	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.MaxCPU = mustInt(getenv("MAX_CPU", "0"))
	c.ShutdownWait = mustDuration(getenv("SHUTDOWN_WAIT", "5s"), 5*time.Second)
	c.DefaultWindow = mustDuration(getenv("DEFAULT_WINDOW", "24h"), 24*time.Hour)
	c.SimulatorEnabled = mustBool(getenv("SIMULATOR_ENABLED", "true"))
	c.SimulatorEvery = mustDuration(getenv("SIMULATOR_EVERY", "1m"), time.Minute)
	c.SimulatorDevices = splitList(getenv("SIMULATOR_DEVICES", "Pump A,Motor B"))

	if c.DatabaseURL == "" && os.Getenv("DB_HOST") != "" {
		c.DatabaseURL = dsnFromParts(
			os.Getenv("DB_HOST"),
			getenv("DB_PORT", "5432"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
		)
	}

	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL or DB_HOST is required for the postgres driver"))
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, fmt.Errorf("SQLITE_PATH must not be empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.StoreDriver))
	}
	if c.MaxCPU < 0 {
		errs = append(errs, fmt.Errorf("MAX_CPU must be >= 0"))
	}
	if c.SimulatorEnabled && len(c.SimulatorDevices) == 0 {
		errs = append(errs, fmt.Errorf("SIMULATOR_DEVICES must list at least one device when the simulator is enabled"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func mustInt(s string) int { n, _ := strconv.Atoi(s); return n }
func mustBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
func mustDuration(s string, def time.Duration) time.Duration {
	d, _ := time.ParseDuration(s)
	if d <= 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dsnFromParts(host, port, user, password, name string) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + name,
	}
	if user != "" {
		if password != "" {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
	}
	return u.String()
}
