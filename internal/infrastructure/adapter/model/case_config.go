package model

import (
	"time"
)

// CaseConfig stores one roulette case with its prize table as a JSON array
type CaseConfig struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Title     string    `gorm:"not null;size:255"`
	SpinCost  int64     `gorm:"not null"`
	Slots     int64     `gorm:"not null;default:0"`
	Prizes    []byte    `gorm:"type:jsonb;not null;default:'[]'"`
	IsEnabled *bool     `gorm:"not null;default:true"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for CaseConfig
func (CaseConfig) TableName() string {
	return "case_configs"
}
