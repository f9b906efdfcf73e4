package sim

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the settings of a scripted session.
type Config struct {
	// BlueprintDir holds <name>.json blueprints. Empty serves only the built-ins.
	BlueprintDir string `env:"SOS_BLUEPRINTS"`
	Blueprint    string `env:"SOS_BLUEPRINT"`
	// Seed for the damage RNG. Zero picks a random seed.
	Seed uint64 `env:"SOS_SEED"`
	// DB is the SQLite file bodies are saved to. Empty disables persistence.
	DB string `env:"SOS_DB"`
	// ID names the body in the database.
	ID      string `env:"SOS_ID"`
	LogFile string `env:"SOS_LOG"`
	// AuditLog receives one JSON line per combat event. Empty disables auditing.
	AuditLog string        `env:"SOS_AUDIT"`
	CacheTTL time.Duration `env:"SOS_CACHE_TTL"`
}

func DefaultConfig() Config {
	return Config{
		Blueprint: "humanoid",
		ID:        "subject",
		CacheTTL:  5 * time.Minute,
	}
}

// LoadConfig returns DefaultConfig overridden by any SOS_* environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
