package config

import (
	"flag"
	"os"
	"sync"
	"time"
)

const (
	defaultServerAddr    = ":8080"
	defaultDatabaseDSN   = ""
	defaultLogLevel      = "debug"
	defaultPasscode      = ""
	defaultCapabilityTTL = 12 * time.Hour
	defaultTimezone      = "America/Chicago"
	defaultPickupMode    = "asap"
)

type Config struct {
	ServerAddr  string
	DatabaseDSN string
	LogLevel    string
	// StaffPasscode is the shared secret unlocking privileged operations.
	// Either plaintext or a bcrypt hash of the passcode.
	StaffPasscode string
	// CapabilityKey signs capability tokens issued on successful authentication.
	CapabilityKey string
	CapabilityTTL time.Duration
	// Timezone is the counter's local timezone, used for the display board
	// and pickup slot comparison.
	Timezone string
	// PickupMode selects the pickup policy: "asap" or "slots".
	PickupMode string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "brewboard server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "brewboard database DSN")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.StaffPasscode, "passcode", defaultPasscode, "staff passcode (plaintext or bcrypt hash)")
		flag.StringVar(&cfg.CapabilityKey, "capability-key", "", "capability token signing key (hex)")
		flag.DurationVar(&cfg.CapabilityTTL, "capability-ttl", defaultCapabilityTTL, "capability token lifetime")
		flag.StringVar(&cfg.Timezone, "tz", defaultTimezone, "counter timezone for display and pickup slots")
		flag.StringVar(&cfg.PickupMode, "pickup-mode", defaultPickupMode, "pickup policy: asap or slots")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if databaseURIEnv := os.Getenv("DATABASE_URI"); databaseURIEnv != "" {
			cfg.DatabaseDSN = databaseURIEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if passcodeEnv := os.Getenv("STAFF_PASSCODE"); passcodeEnv != "" {
			cfg.StaffPasscode = passcodeEnv
		}
		if keyEnv := os.Getenv("CAPABILITY_KEY"); keyEnv != "" {
			cfg.CapabilityKey = keyEnv
		}
		if ttlEnv := os.Getenv("CAPABILITY_TTL"); ttlEnv != "" {
			if d, err := time.ParseDuration(ttlEnv); err == nil {
				cfg.CapabilityTTL = d
			}
		}
		if tzEnv := os.Getenv("COUNTER_TIMEZONE"); tzEnv != "" {
			cfg.Timezone = tzEnv
		}
		if pickupEnv := os.Getenv("PICKUP_MODE"); pickupEnv != "" {
			cfg.PickupMode = pickupEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
