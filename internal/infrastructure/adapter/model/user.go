package model

import (
	"time"
)

// User represents the database model for users. The id is the Telegram user id.
type User struct {
	ID              int64     `gorm:"primaryKey;autoIncrement:false"`
	Balance         int64     `gorm:"not null;default:0;check:chk_users_balance,balance >= 0"`
	TicketsSneakers int64     `gorm:"not null;default:0;check:chk_users_tickets_sneakers,tickets_sneakers >= 0"`
	TicketsBracelet int64     `gorm:"not null;default:0;check:chk_users_tickets_bracelet,tickets_bracelet >= 0"`
	ReferrerID      *int64    `gorm:"index"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
