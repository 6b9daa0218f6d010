package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
)

func TestClient_CreateInvoiceLink(t *testing.T) {
	api := newFakeAPI()
	client := NewClient(api, logger.NewNoopLogger())

	link, err := client.CreateInvoiceLink(context.Background(), coreport.Invoice{
		UserID:      42,
		Amount:      250,
		Title:       "Top up",
		Description: "Top up 250 Stars",
		Payload:     "deposit:42:250",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/$invoice", link)

	require.Len(t, api.invoices, 1)
	params := api.invoices[0]
	assert.Equal(t, StarsCurrency, params.Currency)
	assert.Equal(t, "deposit:42:250", params.Payload)
	require.Len(t, params.Prices, 1)
	assert.Equal(t, 250, params.Prices[0].Amount)
	assert.Empty(t, params.ProviderToken)
}

func TestClient_CreateInvoiceLinkError(t *testing.T) {
	api := newFakeAPI()
	api.linkErr = errors.New("Bad Request")
	client := NewClient(api, logger.NewNoopLogger())

	_, err := client.CreateInvoiceLink(context.Background(), coreport.Invoice{UserID: 1, Amount: 1})
	assert.Error(t, err)
}

func TestClient_Notify(t *testing.T) {
	api := newFakeAPI()
	client := NewClient(api, logger.NewNoopLogger())

	require.NoError(t, client.Notify(context.Background(), 99, "hello"))
	sent := api.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(99), sent[0].ChatID.ID)
	assert.Equal(t, "hello", sent[0].Text)
}
