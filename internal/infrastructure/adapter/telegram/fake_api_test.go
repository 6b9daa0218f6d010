package telegram

import (
	"context"
	"sync"

	"github.com/mymmrac/telego"
)

type fakeAPI struct {
	mu       sync.Mutex
	link     string
	linkErr  error
	invoices []*telego.CreateInvoiceLinkParams
	messages []*telego.SendMessageParams
	answers  []*telego.AnswerPreCheckoutQueryParams
	updates  chan telego.Update
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{link: "https://t.me/$invoice", updates: make(chan telego.Update)}
}

func (f *fakeAPI) CreateInvoiceLink(_ context.Context, params *telego.CreateInvoiceLinkParams) (*string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invoices = append(f.invoices, params)
	if f.linkErr != nil {
		return nil, f.linkErr
	}
	link := f.link
	return &link, nil
}

func (f *fakeAPI) SendMessage(_ context.Context, params *telego.SendMessageParams) (*telego.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, params)
	return &telego.Message{}, nil
}

func (f *fakeAPI) AnswerPreCheckoutQuery(_ context.Context, params *telego.AnswerPreCheckoutQueryParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, params)
	return nil
}

func (f *fakeAPI) UpdatesViaLongPolling(context.Context, *telego.GetUpdatesParams, ...telego.LongPollingOption) (<-chan telego.Update, error) {
	return f.updates, nil
}

func (f *fakeAPI) sent() []*telego.SendMessageParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*telego.SendMessageParams(nil), f.messages...)
}
