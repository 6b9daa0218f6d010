package model

import (
	"time"
)

// Transaction is an append-only ledger row. Meta holds the typed payload as
// a JSON document with a "kind" key.
type Transaction struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index:idx_transactions_user_created,priority:1"`
	Type        string    `gorm:"not null;size:32;index"`
	Amount      int64     `gorm:"not null"`
	Description string    `gorm:"not null;size:255;default:''"`
	Meta        []byte    `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt   time.Time `gorm:"not null;index:idx_transactions_user_created,priority:2"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
