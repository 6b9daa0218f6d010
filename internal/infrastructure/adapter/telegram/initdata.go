package telegram

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	tu "github.com/mymmrac/telego/telegoutil"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
)

// InitDataVerifier authenticates Mini App requests by the initData string
// Telegram signs with the bot token
type InitDataVerifier struct {
	botToken     string
	maxAge       time.Duration
	timeProvider coreport.TimeProvider
}

// NewInitDataVerifier creates a verifier. maxAge of zero accepts initData
// of any age.
func NewInitDataVerifier(botToken string, maxAge time.Duration, timeProvider coreport.TimeProvider) *InitDataVerifier {
	return &InitDataVerifier{
		botToken:     botToken,
		maxAge:       maxAge,
		timeProvider: timeProvider,
	}
}

type webAppUser struct {
	ID int64 `json:"id"`
}

// Verify checks the signature and freshness of initData and returns the
// Telegram id of the user it was issued for
func (v *InitDataVerifier) Verify(initData string) (int64, error) {
	if initData == "" || v.botToken == "" {
		return 0, errs.ErrUnauthorized
	}

	values, err := tu.ValidateWebAppData(v.botToken, initData)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}

	if v.maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad auth_date", errs.ErrUnauthorized)
		}
		if v.timeProvider.Since(time.Unix(authDate, 0)).Std() > v.maxAge {
			return 0, fmt.Errorf("%w: initData expired", errs.ErrUnauthorized)
		}
	}

	var user webAppUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil || user.ID <= 0 {
		return 0, fmt.Errorf("%w: no user in initData", errs.ErrUnauthorized)
	}
	return user.ID, nil
}
