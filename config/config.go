package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string `toml:"env" env:"ENV"`
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Redis     RedisConfigs    `toml:"redis"`
	Scratch   ScratchConfigs  `toml:"scratch"`
	Cron      CronConfigs     `toml:"cron"`
	Catalog   Catalog         `toml:"catalog"`
	Seed      SeedConfigs     `toml:"seed"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host" env:"DATABASE_HOST"`
	Port     string `toml:"port" env:"DATABASE_PORT"`
	Database string `toml:"database" env:"DATABASE_NAME"`
	User     string `toml:"user" env:"DATABASE_USER"`
	Password string `toml:"password" env:"DATABASE_PASSWORD"`
	LogLevel string `toml:"log_level" env:"DATABASE_LOG_LEVEL"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host         string   `toml:"host" env:"API_SERVER_HOST"`
	Port         string   `toml:"port" env:"API_SERVER_PORT"`
	AllowOrigins []string `toml:"allow_origins"`
	MaxLimit     int      `toml:"max_limit"`
	DefaultLimit int      `toml:"default_limit"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret" env:"TOKEN_SECRET"`
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string   `toml:"name"`
	Expiration Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr" env:"REDIS_ADDRESS"`
}

type ScratchConfigs struct {
	// Cooldown is the minimum interval between two ordinary scratches of a user.
	Cooldown Duration `toml:"cooldown"`

	// MissPercent is the share of attempts ending with no prize, whatever the
	// pool contains.
	MissPercent int `toml:"miss_percent"`

	// WeightScale turns fractional award weights into integer ticket counts.
	WeightScale int `toml:"weight_scale"`

	// MaxRetries bounds how many times a hit is redrawn after the chosen prize
	// ran out under a concurrent award.
	MaxRetries int `toml:"max_retries"`

	// UniqueReleaseTime gates the unique prize on top of its own release time.
	UniqueReleaseTime time.Time `toml:"unique_release_time"`

	// RateLimit and RateBurst throttle the scratch endpoint per user.
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
}

type CronConfigs struct {
	LeaderboardRefresh string `toml:"leaderboard_refresh"`
	InventoryReport    string `toml:"inventory_report"`
}

type SeedConfigs struct {
	Users  []SeedUser  `toml:"users"`
	Donors []SeedDonor `toml:"donors"`
}

type SeedUser struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	IsAdmin  bool   `toml:"is_admin"`
}

type SeedDonor struct {
	Name   string    `toml:"name"`
	Amount float64   `toml:"amount"`
	Date   time.Time `toml:"date"`
}

// Duration lets TOML files spell durations as "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configurations used when a field is absent in the file.
func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "INFO",
		Database: DatabaseConfigs{
			Host:     "localhost",
			Port:     "3306",
			Database: "scratchcard",
			User:     "mysql",
			LogLevel: "error",
		},
		ApiServer: ServerConfigs{
			Port:         "8080",
			AllowOrigins: []string{"*"},
			MaxLimit:     100,
			DefaultLimit: 20,
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: Duration{7 * 24 * time.Hour},
			},
		},
		Redis: RedisConfigs{Addr: "localhost:6379"},
		Scratch: ScratchConfigs{
			Cooldown:    Duration{24 * time.Hour},
			MissPercent: 30,
			WeightScale: 10,
			MaxRetries:  3,
			RateLimit:   1,
			RateBurst:   2,
		},
		Cron: CronConfigs{
			LeaderboardRefresh: "*/10 * * * *",
			InventoryReport:    "0 * * * *",
		},
	}
}
