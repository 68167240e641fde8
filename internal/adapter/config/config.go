package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Portone  *Portone
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
	// ResetQuotaOnLevelUp controls whether a donation level-up resets
	// the receive counter. Off by default: the historical policy keeps
	// the counter across level-ups.
	ResetQuotaOnLevelUp bool `env:"RESET_QUOTA_ON_LEVELUP"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Portone struct {
	Host      string        `env:"PORTONE_API_ADDRESS"`
	APIKey    string        `env:"PORTONE_API_KEY"`
	APISecret string        `env:"PORTONE_API_SECRET"`
	Timeout   time.Duration `env:"PORTONE_TIMEOUT"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var portone Portone
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&portone.Host, "p", "https://api.iamport.kr", "Payment gateway address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.BoolVar(&app.ResetQuotaOnLevelUp, "q", false, "Reset donation receive quota on level-up")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&portone)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment gateway config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Portone:  &portone,
		App:      &app,
	}

	return &config, nil
}
