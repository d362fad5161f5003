package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

const driverName = "mysql"

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// TardinessConfig drives the late-arrival detector.
// Cutoff/Until are wall-clock "HH:MM" values in Timezone.
type TardinessConfig struct {
	Timezone string `yaml:"timezone"`
	Cutoff   string `yaml:"cutoff"`
	Until    string `yaml:"until"`
}

// ReportConfig drives the weekly timesheet job.
// Weekday follows time.Weekday numbering (0 = Sunday).
type ReportConfig struct {
	Weekday  int    `yaml:"weekday"`
	At       string `yaml:"at"`
	SpoolDir string `yaml:"spool_dir"`
}

type Config struct {
	Version     string          `yaml:"version"`
	Mode        string          `yaml:"mode"`
	DB          DatabaseConfig  `yaml:"database"`
	Certificate Certs           `yaml:"certificate"`
	Auth        AuthConfig      `yaml:"auth"`
	Tardiness   TardinessConfig `yaml:"tardiness"`
	Report      ReportConfig    `yaml:"report"`
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

func Connect(c DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&tls=false&timeout=3s&readTimeout=5s&writeTimeout=5s&loc=UTC",
		c.Username, c.Password, c.Host, c.Port, c.DBName)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	// Pool sizing: keep the sum below MySQL max_connections.
	db.SetMaxOpenConns(80)
	db.SetMaxIdleConns(20)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// EnsureSchema creates the tables this service owns if they are missing.
// records carries UNIQUE(user_id, date) so the check-in upsert can be a
// single INSERT ... ON DUPLICATE KEY UPDATE.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id   BIGINT PRIMARY KEY,
			real_name VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			id         BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id    BIGINT NOT NULL,
			full_name  VARCHAR(255) NOT NULL,
			date       VARCHAR(16) NOT NULL,
			department VARCHAR(32) NOT NULL,
			check_in   VARCHAR(5) NULL,
			check_out  VARCHAR(5) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_user_date (user_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS auth_accounts (
			id            VARCHAR(64) PRIMARY KEY,
			password_hash VARCHAR(255) NOT NULL,
			role          VARCHAR(32) NOT NULL,
			is_disabled   TINYINT NOT NULL DEFAULT 0,
			created_at    DATETIME(6) NOT NULL
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
