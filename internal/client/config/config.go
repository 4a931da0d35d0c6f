package config

import (
	"time"

	"github.com/dmitrijs2005/krishi/internal/client/services"
)

// Config holds runtime settings for the Krishi CLI.
//
// Fields:
//   - StoreDriver / StoreDSN: "sqlite" with a file path, or "postgres" with a pgx DSN.
//   - SessionTTL: lifetime of a login session.
//   - LoginDelay / SignupDelay: simulated backend latency; zero disables it.
//   - SecurityCheckInterval: how often the audit trail is scanned.
//   - TokenSecret: HMAC key for session tokens.
//   - ClientIP: address recorded on sessions and audit events.
//   - LogLevel: slog level (-4 debug, 0 info, 4 warn, 8 error).
//   - AmbientLanguage: the client's language setting, taken from $LANG.
//   - DynamicTranslation: translate free-form text on language switches.
type Config struct {
	StoreDriver           string        `env:"STORE_DRIVER"`
	StoreDSN              string        `env:"STORE_DSN"`
	SessionTTL            time.Duration `env:"SESSION_TTL"`
	LoginDelay            time.Duration `env:"LOGIN_DELAY"`
	SignupDelay           time.Duration `env:"SIGNUP_DELAY"`
	SecurityCheckInterval time.Duration `env:"SECURITY_CHECK_INTERVAL"`
	TokenSecret           string        `env:"TOKEN_SECRET"`
	ClientIP              string        `env:"CLIENT_IP"`
	LogLevel              int           `env:"LOG_LEVEL"`
	AmbientLanguage       string        `env:"AMBIENT_LANGUAGE"`
	DynamicTranslation    bool          `env:"DYNAMIC_TRANSLATION"`
}

// LoadDefaults populates c with development defaults.
// NOTE: TokenSecret must be overridden outside local use.
func (c *Config) LoadDefaults() {
	c.StoreDriver = "sqlite"
	c.StoreDSN = "krishi.db"
	c.SessionTTL = services.DefaultSessionTTL
	c.LoginDelay = services.DefaultLoginDelay
	c.SignupDelay = services.DefaultSignupDelay
	c.SecurityCheckInterval = services.DefaultSecurityCheckInterval
	c.TokenSecret = "krishi-dev-secret"
	c.ClientIP = "127.0.0.1"
	c.LogLevel = 4
	c.AmbientLanguage = ""
	c.DynamicTranslation = true
}

// LoadConfig applies defaults, then the optional JSON file, then the
// environment, then command-line flags. Later sources win.
func LoadConfig(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
