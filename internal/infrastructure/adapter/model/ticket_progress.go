package model

// TicketProgress is the running count of unsold hidden tickets per user and
// prize code
type TicketProgress struct {
	UserID    int64  `gorm:"primaryKey;autoIncrement:false"`
	PrizeCode string `gorm:"primaryKey;size:64"`
	Accrued   int64  `gorm:"not null;default:0"`
}

// TableName specifies the table name for TicketProgress
func (TicketProgress) TableName() string {
	return "ticket_progress"
}
