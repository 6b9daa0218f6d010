package model

import (
	"time"
)

// UserLock is a short lease on a user, held by one API replica at a time
type UserLock struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"`
	Holder    string    `gorm:"not null;size:128"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for UserLock
func (UserLock) TableName() string {
	return "user_locks"
}
