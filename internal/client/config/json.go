package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/krishi/internal/flagx"
	"github.com/dmitrijs2005/krishi/internal/timex"
)

// JsonConfig is the on-disk form. Durations use timex.Duration so they can
// be written as "1.5s" or as integer nanoseconds. Absent fields keep the
// value from earlier layers.
type JsonConfig struct {
	StoreDriver           *string         `json:"store_driver"`
	StoreDSN              *string         `json:"store_dsn"`
	SessionTTL            *timex.Duration `json:"session_ttl"`
	LoginDelay            *timex.Duration `json:"login_delay"`
	SignupDelay           *timex.Duration `json:"signup_delay"`
	SecurityCheckInterval *timex.Duration `json:"security_check_interval"`
	TokenSecret           *string         `json:"token_secret"`
	ClientIP              *string         `json:"client_ip"`
	LogLevel              *int            `json:"log_level"`
	AmbientLanguage       *string         `json:"ambient_language"`
	DynamicTranslation    *bool           `json:"dynamic_translation"`
}

// parseJson overlays cfg with the file named by -c / -config in args.
// Without the flag nothing happens.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.StoreDriver, jc.StoreDriver)
	setString(&cfg.StoreDSN, jc.StoreDSN)
	setString(&cfg.TokenSecret, jc.TokenSecret)
	setString(&cfg.ClientIP, jc.ClientIP)
	setString(&cfg.AmbientLanguage, jc.AmbientLanguage)
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.SignupDelay != nil {
		cfg.SignupDelay = jc.SignupDelay.Duration
	}
	if jc.SecurityCheckInterval != nil {
		cfg.SecurityCheckInterval = jc.SecurityCheckInterval.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.DynamicTranslation != nil {
		cfg.DynamicTranslation = *jc.DynamicTranslation
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
