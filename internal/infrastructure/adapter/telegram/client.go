// Package telegram adapts the Telegram Bot API: Stars invoice links,
// Mini App initData verification, chat notifications and the update loop
// that settles payments and binds referrals.
package telegram

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
)

// StarsCurrency is the currency code of Telegram Stars
const StarsCurrency = "XTR"

// API is the part of the Bot API the adapter uses
type API interface {
	CreateInvoiceLink(ctx context.Context, params *telego.CreateInvoiceLinkParams) (*string, error)
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	AnswerPreCheckoutQuery(ctx context.Context, params *telego.AnswerPreCheckoutQueryParams) error
	UpdatesViaLongPolling(ctx context.Context, params *telego.GetUpdatesParams, options ...telego.LongPollingOption) (<-chan telego.Update, error)
}

// Client issues invoices and sends messages through the bot
type Client struct {
	api    API
	logger coreport.Logger
}

var (
	_ coreport.InvoiceProvider = (*Client)(nil)
	_ coreport.Notifier        = (*Client)(nil)
)

// NewBotAPI creates the telego bot for token
func NewBotAPI(token string) (*telego.Bot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return bot, nil
}

// NewClient creates a client over api
func NewClient(api API, logger coreport.Logger) *Client {
	return &Client{api: api, logger: logger}
}

// CreateInvoiceLink issues a Stars invoice. Stars invoices carry a single
// price and no provider token.
func (c *Client) CreateInvoiceLink(ctx context.Context, invoice coreport.Invoice) (string, error) {
	link, err := c.api.CreateInvoiceLink(ctx, &telego.CreateInvoiceLinkParams{
		Title:       invoice.Title,
		Description: invoice.Description,
		Payload:     invoice.Payload,
		Currency:    StarsCurrency,
		Prices: []telego.LabeledPrice{
			{Label: invoice.Title, Amount: int(invoice.Amount)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create invoice link: %w", err)
	}
	if link == nil || *link == "" {
		return "", fmt.Errorf("create invoice link: empty link")
	}

	c.logger.Debug("Invoice link created", map[string]any{
		"user_id": invoice.UserID,
		"amount":  invoice.Amount,
	})
	return *link, nil
}

// Notify sends a plain text message to a chat
func (c *Client) Notify(ctx context.Context, chatID int64, text string) error {
	if _, err := c.api.SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
		return fmt.Errorf("send message to %d: %w", chatID, err)
	}
	return nil
}
