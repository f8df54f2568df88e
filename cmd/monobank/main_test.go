package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aegis-sign/monobank/pkg/apierrors"
	"github.com/aegis-sign/monobank/pkg/signer"
)

func TestWaitForGrantPollsUntilConfirmed(t *testing.T) {
	results := []bool{false, false, true}
	calls := 0
	err := waitForGrant(context.Background(), time.Millisecond, func(context.Context) (bool, error) {
		granted := results[calls]
		calls++
		return granted, nil
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestWaitForGrantRetriesTooManyRequests(t *testing.T) {
	calls := 0
	err := waitForGrant(context.Background(), time.Millisecond, func(context.Context) (bool, error) {
		calls++
		if calls == 1 {
			return false, apierrors.New(apierrors.CodeTooManyRequests, "")
		}
		return true, nil
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestWaitForGrantStopsOnPermanentError(t *testing.T) {
	calls := 0
	err := waitForGrant(context.Background(), time.Millisecond, func(context.Context) (bool, error) {
		calls++
		return false, apierrors.New(apierrors.CodeNotFound, "")
	}, nil)
	require.True(t, apierrors.Is(err, apierrors.CodeNotFound))
	require.Equal(t, 1, calls)
}

func TestWaitForGrantHonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := waitForGrant(ctx, 5*time.Millisecond, func(context.Context) (bool, error) {
		return false, nil
	}, nil)
	require.True(t, errors.Is(err, context.DeadlineExceeded), "%v", err)
}

func TestParseTime(t *testing.T) {
	now := time.Unix(1700000000, 0)
	got, err := parseTime("", now)
	require.NoError(t, err)
	require.True(t, got.IsZero())

	got, err = parseTime("24h", now)
	require.NoError(t, err)
	require.Equal(t, int64(1699913600), got.Unix())

	got, err = parseTime("1699913600", now)
	require.NoError(t, err)
	require.Equal(t, int64(1699913600), got.Unix())

	got, err = parseTime("2023-11-14T22:13:20Z", now)
	require.NoError(t, err)
	require.Equal(t, int64(1700000000), got.Unix())

	_, err = parseTime("yesterday", now)
	require.Error(t, err)
}

func TestCurrencyCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bank/currency", r.URL.Path)
		require.Equal(t, "token-1", r.Header.Get("X-Token"))
		_, _ = io.WriteString(w, `[{"currencyCodeA":840,"currencyCodeB":980,"date":1700000000,"rateBuy":36.65,"rateSell":37.44}]`)
	}))
	defer srv.Close()
	t.Setenv("MONOBANK_BASE_URL", srv.URL)
	t.Setenv("MONOBANK_TOKEN", "token-1")

	out, err := run(t, "currency")
	require.NoError(t, err)
	var rates []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rates))
	require.Len(t, rates, 1)
	require.EqualValues(t, 840, rates[0]["currencyCodeA"])
}

func TestCurrencyCommandRequiresCredentials(t *testing.T) {
	t.Setenv("MONOBANK_TOKEN", "")
	t.Setenv("MONOBANK_KEY_ID", "")
	_, err := run(t, "currency")
	require.Error(t, err)
}

func TestCorporateRequestRejectsUnknownPermission(t *testing.T) {
	_, err := run(t, "corporate", "request", "--permissions", "sx")
	require.True(t, apierrors.Is(err, apierrors.CodeInvalidPermissionValue))
}

func TestConfigFileIsOverriddenByEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monobank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baseURL: http://127.0.0.1:1\ntoken: from-file\n"), 0o600))
	t.Setenv("MONOBANK_TOKEN", "from-env")

	c := &cli{configPath: path}
	cfg, err := c.loadConfig()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:1", cfg.BaseURL)
	require.Equal(t, "from-env", cfg.Token)
}

func TestKeygenWritesUsableKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.pem")
	out, err := run(t, "keygen", "--out", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "-----BEGIN PUBLIC KEY-----"))

	s, err := signer.New(path)
	require.NoError(t, err)
	pub, err := s.PublicKeyPEM()
	require.NoError(t, err)
	require.Equal(t, string(pub), out)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
