package model

import (
	"time"
)

// WithdrawRequest is a queued cash-out
type WithdrawRequest struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;index"`
	Amount    int64     `gorm:"not null"`
	Status    string    `gorm:"not null;size:16;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for WithdrawRequest
func (WithdrawRequest) TableName() string {
	return "withdraw_requests"
}

// PrizeRequest is a queued physical prize redemption
type PrizeRequest struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;index"`
	PrizeType string    `gorm:"not null;size:16"`
	Status    string    `gorm:"not null;size:16;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for PrizeRequest
func (PrizeRequest) TableName() string {
	return "prize_requests"
}
