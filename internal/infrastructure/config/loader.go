package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "SR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	cfg, _, err := Load()
	return cfg, err
}

// Load reads the configuration and also returns the viper instance, so that
// callers can watch the file for changes
func Load() (*Config, *viper.Viper, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	cfg, err := Decode(v)
	if err != nil {
		return nil, nil, err
	}
	cfg.Environment = env
	return cfg, v, nil
}

// Decode unmarshals the current viper state and converts the raw duration
// numbers into durations
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	processDurations(&cfg)
	return &cfg, nil
}

func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 5)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("ledger.queueSize", 100)
	v.SetDefault("ledger.idleTimeout", 30) // seconds
	v.SetDefault("ledger.lockTimeoutMs", 5000)

	v.SetDefault("economy.defaultSpinCost", 150)
	v.SetDefault("economy.sellPercent", 50)
	v.SetDefault("economy.nearTargetBoostPercent", 0)
	v.SetDefault("economy.referralBonusPercent", 0)
	v.SetDefault("economy.referralSignupBonusReferrer", 0)
	v.SetDefault("economy.referralSignupBonusInvitee", 0)
	v.SetDefault("economy.minWithdraw", 1000)
	v.SetDefault("economy.maxInvoiceAmount", 1_000_000)

	v.SetDefault("telegram.botEnabled", false)
	v.SetDefault("telegram.pollTimeoutSeconds", 30)
	v.SetDefault("telegram.maxInflight", 32)
	v.SetDefault("telegram.initDataMaxAge", 86400) // seconds

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("scheduler.reconcileSpec", "@hourly")
	v.SetDefault("scheduler.digestSpec", "0 9 * * *")
	v.SetDefault("scheduler.lockCleanupSpec", "@every 1m")
}

// getEnvironment determines the environment from SR_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes secrets and deployment settings from the
// environment win over the config file
func processEnvOverrides(v *viper.Viper) {
	strOverrides := map[string]string{
		"SR_DB_HOST":             "database.host",
		"SR_DB_PORT":             "database.port",
		"SR_DB_USERNAME":         "database.username",
		"SR_DB_PASSWORD":         "database.password",
		"SR_DB_NAME":             "database.database",
		"SR_DB_SSL_MODE":         "database.sslMode",
		"SR_SERVER_HOST":         "server.host",
		"SR_LOGGER_LEVEL":        "logger.level",
		"SR_TELEGRAM_BOT_TOKEN":  "telegram.botToken",
		"SR_TELEGRAM_BOT_NAME":   "telegram.botUsername",
		"SR_TELEGRAM_WEBAPP_URL": "telegram.webAppURL",
		"SR_INTERNAL_API_TOKEN":  "security.internalAPIToken",
	}
	for env, key := range strOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"SR_SERVER_PORT":                   "server.port",
		"SR_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"SR_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"SR_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"SR_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"SR_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"SR_LEDGER_QUEUE_SIZE":             "ledger.queueSize",
		"SR_LEDGER_LOCK_TIMEOUT_MS":        "ledger.lockTimeoutMs",
	}
	for env, key := range intOverrides {
		if val := getEnvInt(env, 0); val > 0 {
			v.Set(key, val)
		}
	}

	if val, ok := os.LookupEnv("SR_TELEGRAM_BOT_ENABLED"); ok {
		if enabled, err := strconv.ParseBool(val); err == nil {
			v.Set("telegram.botEnabled", enabled)
		}
	}

	if raw := os.Getenv("SR_ADMIN_TELEGRAM_IDS"); raw != "" {
		v.Set("security.adminTelegramIDs", ParseIDList(raw))
	}
}

// ParseIDList parses a comma or space separated list of positive ids,
// skipping anything that is not one
func ParseIDList(raw string) []int64 {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	ids := make([]int64, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Ledger.IdleTimeout = time.Duration(config.Ledger.IdleTimeout) * time.Second
	config.Telegram.InitDataMaxAge = time.Duration(config.Telegram.InitDataMaxAge) * time.Second
}
