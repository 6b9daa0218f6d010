package config

import (
	"slices"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/provider"
)

// EconomyProvider serves economy snapshots and swaps them atomically when
// the config file changes
type EconomyProvider struct {
	current atomic.Pointer[entity.EconomySettings]
	logger  core.Logger
}

var _ provider.EconomySource = (*EconomyProvider)(nil)

// NewEconomyProvider creates a provider holding the given settings
func NewEconomyProvider(settings entity.EconomySettings, logger core.Logger) *EconomyProvider {
	p := &EconomyProvider{logger: logger}
	p.Store(settings)
	return p
}

// Snapshot returns an independent copy of the current settings
func (p *EconomyProvider) Snapshot() entity.EconomySettings {
	return p.current.Load().Clone()
}

// Store replaces the current settings
func (p *EconomyProvider) Store(settings entity.EconomySettings) {
	s := settings.Clone()
	p.current.Store(&s)
}

// Watch re-reads the economy section whenever viper reports a change of
// the config file. Other sections need a restart.
func (p *EconomyProvider) Watch(v *viper.Viper) {
	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := Decode(v)
		if err != nil {
			p.logger.Warn("Config reload failed, keeping economy settings", map[string]any{
				"file":  e.Name,
				"error": err.Error(),
			})
			return
		}
		p.Store(cfg.Economy.Settings())
		p.logger.Info("Economy settings reloaded", map[string]any{
			"file":              e.Name,
			"default_spin_cost": cfg.Economy.DefaultSpinCost,
			"sell_percent":      cfg.Economy.SellPercent,
			"boost_percent":     cfg.Economy.NearTargetBoostPercent,
		})
	})
	v.WatchConfig()
}

// AdminDirectory is the static admin list from the configuration
type AdminDirectory struct {
	ids []int64
}

var _ provider.AdminDirectory = (*AdminDirectory)(nil)

// NewAdminDirectory creates a directory of the given Telegram ids
func NewAdminDirectory(ids []int64) *AdminDirectory {
	clean := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 && !slices.Contains(clean, id) {
			clean = append(clean, id)
		}
	}
	slices.Sort(clean)
	return &AdminDirectory{ids: clean}
}

func (d *AdminDirectory) IsAdmin(userID int64) bool {
	_, found := slices.BinarySearch(d.ids, userID)
	return found
}

func (d *AdminDirectory) AdminIDs() []int64 {
	return slices.Clone(d.ids)
}
