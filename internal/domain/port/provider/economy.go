package provider

import "github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"

// EconomySource hands out the current economy settings. Every call returns
// an independent snapshot, so a request keeps one view for its whole run.
type EconomySource interface {
	Snapshot() entity.EconomySettings
}

// AdminDirectory answers whether a Telegram user is an administrator
type AdminDirectory interface {
	IsAdmin(userID int64) bool
	AdminIDs() []int64
}
