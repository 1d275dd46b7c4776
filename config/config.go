package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DataSource selects where team data and admin records are read from.
type DataSource string

const (
	DataSourceAuto     DataSource = ""
	DataSourceLocal    DataSource = "local"
	DataSourceSupabase DataSource = "supabase"
	DataSourcePostgres DataSource = "postgres"
)

// UnmarshalText implements encoding.TextUnmarshaler for DataSource.
func (d *DataSource) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch DataSource(v) {
	case DataSourceAuto, DataSourceLocal, DataSourceSupabase, DataSourcePostgres:
		*d = DataSource(v)
		return nil
	default:
		return fmt.Errorf("invalid DataSource: %q (valid options: local, supabase, postgres)", v)
	}
}

type StripeConfig struct {
	SecretKey string        `env:"SECRET_KEY,required,notEmpty"`
	Timeout   time.Duration `env:"TIMEOUT"             envDefault:"20s"`
}

type SupabaseConfig struct {
	URL            string        `env:"URL"`
	AnonKey        string        `env:"ANON_KEY"`
	ServiceRoleKey string        `env:"SERVICE_ROLE_KEY"`
	DatabaseURL    string        `env:"DB_URL"`
	Timeout        time.Duration `env:"TIMEOUT"          envDefault:"10s"`
}

// HasREST tells whether the REST and auth endpoints can be reached.
func (s SupabaseConfig) HasREST() bool {
	return s.URL != "" && s.AnonKey != ""
}

type Config struct {
	Port       string     `env:"PORT"        envDefault:"8080"`
	DataSource DataSource `env:"DATA_SOURCE"`

	Stripe   StripeConfig   `envPrefix:"STRIPE_"`
	Supabase SupabaseConfig `envPrefix:"SUPABASE_"`
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	return Parse()
}

// Parse reads the configuration from the environment and resolves the data source once.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DataSource == DataSourceAuto {
		cfg.DataSource = cfg.detectDataSource()
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) detectDataSource() DataSource {
	switch {
	case c.Supabase.DatabaseURL != "":
		return DataSourcePostgres
	case c.Supabase.HasREST():
		return DataSourceSupabase
	default:
		return DataSourceLocal
	}
}

// Validate checks that the selected data source is fully configured.
func (c Config) Validate() error {
	switch c.DataSource {
	case DataSourceSupabase:
		if !c.Supabase.HasREST() {
			return errors.New("DATA_SOURCE=supabase requires SUPABASE_URL and SUPABASE_ANON_KEY")
		}
	case DataSourcePostgres:
		if c.Supabase.DatabaseURL == "" {
			return errors.New("DATA_SOURCE=postgres requires SUPABASE_DB_URL")
		}
	}
	return nil
}
