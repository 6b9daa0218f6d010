package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	timeprovider "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
)

const testBotToken = "123456:TEST-token"

// signInitData builds initData the way Telegram signs it
func signInitData(token string, values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(token))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))

	signed := url.Values{}
	for k := range values {
		signed.Set(k, values.Get(k))
	}
	signed.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return signed.Encode()
}

func TestInitDataVerifier(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := timeprovider.NewManualTimeProvider(now)
	verifier := NewInitDataVerifier(testBotToken, time.Hour, clock)

	fresh := url.Values{
		"auth_date": {strconv.FormatInt(now.Add(-time.Minute).Unix(), 10)},
		"query_id":  {"AAH"},
		"user":      {`{"id":42,"first_name":"Ann"}`},
	}

	t.Run("valid", func(t *testing.T) {
		id, err := verifier.Verify(signInitData(testBotToken, fresh))
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("wrong token", func(t *testing.T) {
		_, err := verifier.Verify(signInitData("999:other", fresh))
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		old := url.Values{
			"auth_date": {strconv.FormatInt(now.Add(-2*time.Hour).Unix(), 10)},
			"user":      {`{"id":42}`},
		}
		_, err := verifier.Verify(signInitData(testBotToken, old))
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("no user", func(t *testing.T) {
		noUser := url.Values{"auth_date": fresh["auth_date"]}
		_, err := verifier.Verify(signInitData(testBotToken, noUser))
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := verifier.Verify("")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
