package core

import "context"

// Invoice describes a Stars invoice to be issued by the payment provider
type Invoice struct {
	UserID      int64
	Amount      int64
	Title       string
	Description string
	Payload     string
}

// InvoiceProvider issues payment links for Stars deposits
type InvoiceProvider interface {
	CreateInvoiceLink(ctx context.Context, invoice Invoice) (string, error)
}

// Notifier delivers plain text messages to Telegram chats
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}
