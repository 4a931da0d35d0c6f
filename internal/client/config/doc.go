// Package config loads runtime configuration for the Krishi CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: KS_STORE_DRIVER, KS_STORE_DSN, KS_SESSION_TTL,
//     KS_LOGIN_DELAY, KS_SIGNUP_DELAY, KS_SECURITY_CHECK_INTERVAL,
//     KS_TOKEN_SECRET, KS_CLIENT_IP, KS_LOG_LEVEL, KS_AMBIENT_LANGUAGE,
//     KS_DYNAMIC_TRANSLATION, plus LANG for the ambient language.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string      store DSN (file path for sqlite)
//	-driver string store driver: sqlite or postgres
//	-l int         log level
//	-lang string   ambient language
//
// # JSON schema
//
//	{
//	  "store_driver": "sqlite",
//	  "store_dsn": "data/krishi.db",
//	  "session_ttl": "168h",
//	  "login_delay": "1.5s",
//	  "signup_delay": "2s",
//	  "security_check_interval": "30s",
//	  "token_secret": "change-me",
//	  "client_ip": "127.0.0.1",
//	  "log_level": 0,
//	  "ambient_language": "ml_IN.UTF-8",
//	  "dynamic_translation": true
//	}
package config
