// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

// DefaultResetSchedule fires every Saturday at 12:00
const DefaultResetSchedule = "0 12 * * 6"

// DefaultUsers is the seed list used when USERS is not set
var DefaultUsers = []string{"Cula", "Fjordi", "Peki", "Reznovi", "Rroni", "Tella", "Zingo", "Zorki"}

// ErrDatabaseConfig is returned when storage connection parameters are missing
var ErrDatabaseConfig = errors.New("database configuration missing")

// dbEnvVars are the individual connection settings used when DATABASE_URL is unset
var dbEnvVars = []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"}

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	Users         []string
	ResetSchedule string
	Timezone      string
	SeedDemo      bool
}

// Location resolves the configured timezone, falling back to the local zone
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var users string

	fs := flag.NewFlagSet("friday-picker", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&users, "users", "", "Comma-separated user names to seed")
	fs.StringVar(&cfg.ResetSchedule, "reset-schedule", "", "Cron expression for the weekly reset")
	fs.StringVar(&cfg.Timezone, "tz", "", "IANA timezone for week boundaries and the reset schedule")
	fs.BoolVar(&cfg.SeedDemo, "seed-demo", false, "Insert demo options, attendance and votes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		dbURL, err := postgresURLFromEnv()
		if err != nil {
			return Config{}, err
		}
		cfg.DatabaseURL = dbURL
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = inferDatabaseType(cfg.DatabaseURL)
	}
	if cfg.DatabaseType != DatabasePostgres && cfg.DatabaseType != DatabaseSQLite {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if users == "" {
		users = os.Getenv("USERS")
	}
	cfg.Users = splitUsers(users)
	if len(cfg.Users) == 0 {
		cfg.Users = DefaultUsers
	}

	if cfg.ResetSchedule == "" {
		cfg.ResetSchedule = os.Getenv("RESET_SCHEDULE")
	}
	if cfg.ResetSchedule == "" {
		cfg.ResetSchedule = DefaultResetSchedule
	}

	if cfg.Timezone == "" {
		cfg.Timezone = os.Getenv("TIMEZONE")
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// postgresURLFromEnv builds a connection string from DB_HOST, DB_PORT, DB_USER,
// DB_PASSWORD and DB_NAME. All five must be present.
func postgresURLFromEnv() (string, error) {
	var missing []string
	values := make(map[string]string, len(dbEnvVars))
	for _, name := range dbEnvVars {
		v := os.Getenv(name)
		if v == "" {
			missing = append(missing, name)
		}
		values[name] = v
	}

	if len(missing) == len(dbEnvVars) {
		return "", fmt.Errorf("%w: use -d, DATABASE_URL, or set all of %s",
			ErrDatabaseConfig, strings.Join(dbEnvVars, ", "))
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: missing %s", ErrDatabaseConfig, strings.Join(missing, ", "))
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(values["DB_USER"], values["DB_PASSWORD"]),
		Host:     net.JoinHostPort(values["DB_HOST"], values["DB_PORT"]),
		Path:     "/" + values["DB_NAME"],
		RawQuery: "sslmode=disable",
	}
	return u.String(), nil
}

func inferDatabaseType(dbURL string) string {
	if strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://") {
		return DatabasePostgres
	}
	return DatabaseSQLite
}

func splitUsers(s string) []string {
	var users []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			users = append(users, name)
		}
	}
	return users
}
