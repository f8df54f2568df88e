package monobank

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/aegis-sign/monobank/pkg/apierrors"
)

func TestPersonalSendsTokenAndDecodesUserInfo(t *testing.T) {
	bank := newFakeBank(t)
	bank.handle("/personal/client-info", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "token-1", r.Header.Get("X-Token"))
		require.Empty(t, r.Header.Get("X-Sign"))
		_, _ = io.WriteString(w, userInfoBody)
	})
	client := bank.personal(t)

	info, err := client.GetUserInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "client-1", info.ClientID)
	require.Equal(t, "acc-uah", info.Accounts[0].ID)
	require.Equal(t, "UAH", info.Accounts[0].Currency.Code)
	require.Equal(t, []string{"537541******1234"}, info.Accounts[0].MaskedPan)
	require.Equal(t, int64(2500), info.Accounts[1].Balance)
}

func TestGetCurrencyList(t *testing.T) {
	bank := newFakeBank(t)
	bank.handle("/bank/currency", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"currencyCodeA":840,"currencyCodeB":980,"date":1700000000,"rateBuy":36.65,"rateSell":37.4406},
			{"currencyCodeA":985,"currencyCodeB":980,"date":1700000000,"rateCross":9.2}
		]`)
	})
	client := bank.personal(t)

	rates, err := client.GetCurrencyList(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 2)
	require.Equal(t, "USD", rates[0].CurrencyA.Code)
	require.Equal(t, "37.4406", rates[0].RateSell.Decimal.String())
	require.False(t, rates[0].RateCross.Valid)
	require.Equal(t, "PLN", rates[1].CurrencyA.Code)
	require.True(t, rates[1].RateCross.Valid)
}

func TestGetStatementDefaultsAndEmptyBody(t *testing.T) {
	path := "/personal/statement/0/1699913600/1700000000"
	bank := newFakeBank(t)
	bank.handle(path, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})
	client := bank.personal(t)

	from := time.Unix(testNow, 0).Add(-24*time.Hour + 300*time.Millisecond)
	txs, err := client.GetStatement(context.Background(), "", from, time.Time{})
	require.NoError(t, err)
	require.NotNil(t, txs)
	require.Empty(t, txs)
	require.Equal(t, 1, bank.count(path))
}

func TestGetStatementValidatesRange(t *testing.T) {
	bank := newFakeBank(t)
	client := bank.personal(t)
	ctx := context.Background()
	now := time.Unix(testNow, 0)

	_, err := client.GetStatement(ctx, "0", time.Time{}, now)
	require.True(t, apierrors.Is(err, apierrors.CodeInvalidRequestParams))
	_, err = client.GetStatement(ctx, "0", now, now.Add(-time.Hour))
	require.True(t, apierrors.Is(err, apierrors.CodeInvalidRequestParams))
	require.Zero(t, bank.total())
}

func TestGetStatementLeavesRangeLimitToServer(t *testing.T) {
	from, to := time.Unix(testNow, 0).Add(-60*24*time.Hour), time.Unix(testNow, 0)
	path := statementPath(DefaultAccount, from, to)
	bank := newFakeBank(t)
	bank.handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"errorDescription":"Period must be no more than 31 days"}`)
	})
	client := bank.personal(t)

	_, err := client.GetStatement(context.Background(), "0", from, to)
	require.True(t, apierrors.Is(err, apierrors.CodeInvalidRequestParams))
	require.Equal(t, "Period must be no more than 31 days", err.Error())
	require.Equal(t, 1, bank.count(path))
}

func TestGetStatementEscapesAccount(t *testing.T) {
	bank := newFakeBank(t)
	bank.handle("/personal/statement/a b/1699913600/1700000000", func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.EscapedPath(), "/personal/statement/a%20b/"))
		_, _ = io.WriteString(w, `[]`)
	})
	client := bank.personal(t)

	_, err := client.GetStatement(context.Background(), "a b", time.Unix(1699913600, 0), time.Unix(testNow, 0))
	require.NoError(t, err)
}

func TestStatementByCurrencyCodePopulatesCacheOnce(t *testing.T) {
	bank := newFakeBank(t)
	bank.handle("/personal/client-info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, userInfoBody)
	})
	var mu sync.Mutex
	var accounts []string
	statement := func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		accounts = append(accounts, strings.Split(r.URL.Path, "/")[3])
		mu.Unlock()
		_, _ = io.WriteString(w, `[]`)
	}
	bank.handle("/personal/statement/acc-uah/1699913600/1700000000", statement)
	bank.handle("/personal/statement/acc-usd/1699913600/1700000000", statement)
	client := bank.personal(t)
	ctx := context.Background()
	from, to := time.Unix(1699913600, 0), time.Unix(testNow, 0)

	for _, code := range []string{"UAH", "uah", "980", "840"} {
		_, err := client.GetStatementByCurrencyCode(ctx, code, from, to)
		require.NoError(t, err, code)
	}
	require.Equal(t, 1, bank.count("/personal/client-info"))
	require.Equal(t, []string{"acc-uah", "acc-uah", "acc-uah", "acc-usd"}, accounts)

	_, err := client.GetStatementByCurrencyCode(ctx, "EUR", from, to)
	require.True(t, apierrors.Is(err, apierrors.CodeInvalidRequestParams))
	require.True(t, errors.Is(err, ErrNoAccountForCurrency))
	require.Equal(t, 1, bank.count("/personal/client-info"))

	_, err = client.GetStatementByCurrencyCode(ctx, "XYZ", from, to)
	require.True(t, apierrors.Is(err, apierrors.CodeInvalidRequestParams))
	require.Equal(t, 1, bank.count("/personal/client-info"))

	client.ResetCurrencyCache()
	_, err = client.GetStatementByCurrencyCode(ctx, "UAH", from, to)
	require.NoError(t, err)
	require.Equal(t, 2, bank.count("/personal/client-info"))
}

func TestStatementByCurrencyCodeLastAccountWins(t *testing.T) {
	bank := newFakeBank(t)
	bank.handle("/personal/client-info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"name":"Test User","accounts":[
			{"id":"black","balance":1,"creditLimit":0,"currencyCode":980,"cashbackType":"UAH"},
			{"id":"white","balance":2,"creditLimit":0,"currencyCode":980,"cashbackType":"UAH"}
		]}`)
	})
	bank.handle("/personal/statement/white/1699913600/1700000000", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	client := bank.personal(t)

	_, err := client.GetStatementByCurrencyCode(context.Background(), "UAH", time.Unix(1699913600, 0), time.Unix(testNow, 0))
	require.NoError(t, err)
	require.Equal(t, 1, bank.count("/personal/statement/white/1699913600/1700000000"))
	require.Zero(t, bank.count("/personal/statement/black/1699913600/1700000000"))
}

func TestStatementByCurrencyCodeUserInfoFailureLeavesCacheEmpty(t *testing.T) {
	failures := 1
	var mu sync.Mutex
	bank := newFakeBank(t)
	bank.handle("/personal/client-info", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if failures > 0 {
			failures--
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = io.WriteString(w, userInfoBody)
	})
	bank.handle("/personal/statement/acc-uah/1699913600/1700000000", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	client := bank.personal(t)
	ctx := context.Background()
	from, to := time.Unix(1699913600, 0), time.Unix(testNow, 0)

	_, err := client.GetStatementByCurrencyCode(ctx, "UAH", from, to)
	apiErr, ok := apierrors.FromError(err)
	require.True(t, ok)
	require.Equal(t, apierrors.CodeTooManyRequests, apiErr.Code)
	require.Equal(t, time.Minute, apiErr.RetryAfter())

	_, err = client.GetStatementByCurrencyCode(ctx, "UAH", from, to)
	require.NoError(t, err)
	require.Equal(t, 2, bank.count("/personal/client-info"))
}

func TestSetWebhookValidatesURL(t *testing.T) {
	bank := newFakeBank(t)
	bank.handle("/personal/webhook", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "token-1", r.Header.Get("X-Token"))
	})
	client := bank.personal(t)

	require.True(t, apierrors.Is(client.SetWebhook(context.Background(), "not a url"), apierrors.CodeInvalidRequestParams))
	require.Zero(t, bank.total())
	require.NoError(t, client.SetWebhook(context.Background(), "https://example.com/hook"))
	require.Equal(t, 1, bank.count("/personal/webhook"))
}

func TestPersonalRecordsMetrics(t *testing.T) {
	bank := newFakeBank(t)
	bank.handle("/bank/currency", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	reg := prometheus.NewRegistry()
	client := bank.personal(t, WithRegisterer(reg))

	_, err := client.GetCurrencyList(context.Background())
	require.NoError(t, err)
	_, err = client.GetUserInfo(context.Background())
	require.True(t, apierrors.Is(err, apierrors.CodeNotFound))

	n, err := testutil.GatherAndCount(reg, "monobank_client_requests_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestNewPersonalRequiresToken(t *testing.T) {
	_, err := NewPersonal(DefaultConfig())
	require.True(t, apierrors.Is(err, apierrors.CodeInvalidRequestParams))

	cfg := DefaultConfig()
	cfg.Token = "token"
	cfg.BaseURL = "not-a-url"
	_, err = NewPersonal(cfg)
	require.True(t, apierrors.Is(err, apierrors.CodeInvalidRequestParams))

	client, err := CreatePersonal("token")
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestDefaultClockIsWallClock(t *testing.T) {
	o := buildOptions(DefaultConfig(), nil)
	before := time.Now()
	now := o.clock.Now()
	require.False(t, now.Before(before))
	require.WithinDuration(t, before, now, time.Second)
}
