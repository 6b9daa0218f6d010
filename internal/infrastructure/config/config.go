package config

import (
	"time"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Ledger      LedgerConfig    `mapstructure:"ledger"`
	Economy     EconomyConfig   `mapstructure:"economy"`
	Telegram    TelegramConfig  `mapstructure:"telegram"`
	Security    SecurityConfig  `mapstructure:"security"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// LedgerConfig tunes the per-user operation queues
type LedgerConfig struct {
	QueueSize     int           `mapstructure:"queueSize"`
	IdleTimeout   time.Duration `mapstructure:"idleTimeout"` // seconds
	LockTimeoutMs int64         `mapstructure:"lockTimeoutMs"`
	Holder        string        `mapstructure:"holder"`
}

// EconomyConfig is the tunable economy. It is re-read when the config
// file changes.
type EconomyConfig struct {
	DefaultSpinCost             int64            `mapstructure:"defaultSpinCost"`
	SellPercent                 int64            `mapstructure:"sellPercent"`
	NearTargetBoostPercent      int64            `mapstructure:"nearTargetBoostPercent"`
	TicketTargets               map[string]int64 `mapstructure:"ticketTargets"`
	ReferralBonusPercent        int64            `mapstructure:"referralBonusPercent"`
	ReferralSignupBonusReferrer int64            `mapstructure:"referralSignupBonusReferrer"`
	ReferralSignupBonusInvitee  int64            `mapstructure:"referralSignupBonusInvitee"`
	MinWithdraw                 int64            `mapstructure:"minWithdraw"`
	MaxInvoiceAmount            int64            `mapstructure:"maxInvoiceAmount"`
}

// Settings converts the section into the domain snapshot
func (e EconomyConfig) Settings() entity.EconomySettings {
	s := entity.EconomySettings{
		DefaultSpinCost:             e.DefaultSpinCost,
		SellPercent:                 e.SellPercent,
		NearTargetBoostPercent:      e.NearTargetBoostPercent,
		TicketTargets:               e.TicketTargets,
		ReferralBonusPercent:        e.ReferralBonusPercent,
		ReferralSignupBonusReferrer: e.ReferralSignupBonusReferrer,
		ReferralSignupBonusInvitee:  e.ReferralSignupBonusInvitee,
		MinWithdraw:                 e.MinWithdraw,
		MaxInvoiceAmount:            e.MaxInvoiceAmount,
	}
	if s.DefaultSpinCost <= 0 {
		s.DefaultSpinCost = entity.DefaultSpinCost
	}
	if s.MinWithdraw <= 0 {
		s.MinWithdraw = entity.DefaultMinWithdraw
	}
	if s.MaxInvoiceAmount <= 0 {
		s.MaxInvoiceAmount = entity.DefaultMaxInvoiceAmount
	}
	return s.Clone()
}

// TelegramConfig contains Bot API settings
type TelegramConfig struct {
	BotToken           string        `mapstructure:"botToken"`
	BotUsername        string        `mapstructure:"botUsername"`
	BotEnabled         bool          `mapstructure:"botEnabled"`
	PollTimeoutSeconds int           `mapstructure:"pollTimeoutSeconds"`
	MaxInflight        int           `mapstructure:"maxInflight"`
	WebAppURL          string        `mapstructure:"webAppURL"`
	InitDataMaxAge     time.Duration `mapstructure:"initDataMaxAge"` // seconds, 0 disables the check
}

// SecurityConfig contains access control settings
type SecurityConfig struct {
	InternalAPIToken string  `mapstructure:"internalAPIToken"`
	AdminTelegramIDs []int64 `mapstructure:"adminTelegramIDs"`
}

// SchedulerConfig contains cron specs of the background jobs
type SchedulerConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Timezone        string `mapstructure:"timezone"`
	ReconcileSpec   string `mapstructure:"reconcileSpec"`
	DigestSpec      string `mapstructure:"digestSpec"`
	LockCleanupSpec string `mapstructure:"lockCleanupSpec"`
}
