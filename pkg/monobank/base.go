// Package monobank 实现 monobank 开放 API 的 personal（X-Token）与 corporate（签名授权）两种客户端。
//
// 两种客户端共享同一套 statement / client-info / currency 逻辑，差异仅在于鉴权头的生成方式。
package monobank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aegis-sign/monobank/internal/transport"
	"github.com/aegis-sign/monobank/pkg/apierrors"
	"github.com/aegis-sign/monobank/pkg/iso4217"
	"github.com/aegis-sign/monobank/pkg/validator"
)

// ErrNoAccountForCurrency 表示用户信息中没有该币种的账户。
var ErrNoAccountForCurrency = errors.New("no account for currency")

// authorizer 为已解析的资源路径生成鉴权头；personal 模式返回 nil。
type authorizer func(path string) (http.Header, error)

func noAuth(string) (http.Header, error) { return nil, nil }

// baseClient 实现两种模式共用的 API 调用，鉴权头由 authorizer 注入。
type baseClient struct {
	http   *transport.Client
	clock  Clock
	logger *slog.Logger

	mu sync.Mutex
	// accounts 以 scope（personal 为空串，corporate 为 requestId）划分，
	// scope 存在即表示已填充过。
	accounts map[string]map[int]string
}

func newBaseClient(cfg Config, header http.Header, o options) (*baseClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, apierrors.Wrap(apierrors.CodeInvalidRequestParams, err.Error(), err)
	}
	var metrics *transport.Metrics
	if o.registerer != nil {
		metrics = transport.NewMetrics(o.registerer)
	}
	tc, err := transport.New(transport.Config{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		Header:     header,
		HTTPClient: o.httpClient,
		Limiter:    o.limiter,
		Metrics:    metrics,
		Logger:     o.logger,
	})
	if err != nil {
		return nil, apierrors.Wrap(apierrors.CodeInvalidRequestParams, err.Error(), err)
	}
	return &baseClient{
		http:     tc,
		clock:    o.clock,
		logger:   o.logger,
		accounts: make(map[string]map[int]string),
	}, nil
}

func (c *baseClient) currencyList(ctx context.Context) ([]CurrencyInfo, error) {
	var out []CurrencyInfo
	if _, err := c.http.DoJSON(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   EndpointCurrencyList,
	}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []CurrencyInfo{}
	}
	return out, nil
}

func (c *baseClient) userInfo(ctx context.Context, auth authorizer) (UserInfo, error) {
	header, err := auth(EndpointClientInfo)
	if err != nil {
		return UserInfo{}, err
	}
	var out UserInfo
	if _, err := c.http.DoJSON(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   EndpointClientInfo,
		Header: header,
	}, &out); err != nil {
		return UserInfo{}, err
	}
	return out, nil
}

func (c *baseClient) statement(ctx context.Context, account string, from, to time.Time, auth authorizer) ([]Transaction, error) {
	path, err := c.resolveStatementPath(account, from, to)
	if err != nil {
		return nil, err
	}
	header, err := auth(path)
	if err != nil {
		return nil, err
	}
	var out []Transaction
	if _, err := c.http.DoJSON(ctx, transport.Request{
		Method:   http.MethodGet,
		Path:     path,
		Endpoint: EndpointAccountStatement,
		Header:   header,
	}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Transaction{}
	}
	return out, nil
}

// resolveStatementPath 校验参数并展开路径；to 为零值时取当前时间。
func (c *baseClient) resolveStatementPath(account string, from, to time.Time) (string, error) {
	if strings.TrimSpace(account) == "" {
		account = DefaultAccount
	}
	if from.IsZero() {
		return "", apierrors.New(apierrors.CodeInvalidRequestParams, "statement \"from\" time is required")
	}
	if to.IsZero() {
		to = c.clock.Now()
	}
	from, to = from.Truncate(time.Second), to.Truncate(time.Second)
	if from.After(to) {
		return "", apierrors.New(apierrors.CodeInvalidRequestParams, "statement \"from\" must not be after \"to\"")
	}
	return statementPath(account, from, to), nil
}

// statementByCurrency 将币种解析为账户后查询流水。scope 内的缓存最多填充一次。
func (c *baseClient) statementByCurrency(ctx context.Context, scope, currency string, from, to time.Time, auth authorizer) ([]Transaction, error) {
	cur, ok := iso4217.Lookup(currency)
	if !ok {
		return nil, apierrors.New(apierrors.CodeInvalidRequestParams,
			fmt.Sprintf("unknown currency code %q", currency))
	}
	account, populated := c.lookupAccount(scope, cur.Number)
	if account == "" && !populated {
		info, err := c.userInfo(ctx, auth)
		if err != nil {
			return nil, err
		}
		c.populate(scope, info.Accounts)
		account, _ = c.lookupAccount(scope, cur.Number)
	}
	if account == "" {
		return nil, apierrors.Wrap(apierrors.CodeInvalidRequestParams,
			fmt.Sprintf("There is no account for currencyCode %q", cur.Code),
			fmt.Errorf("%w %s", ErrNoAccountForCurrency, cur.Code))
	}
	return c.statement(ctx, account, from, to, auth)
}

func (c *baseClient) lookupAccount(scope string, number int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	accounts, ok := c.accounts[scope]
	if !ok {
		return "", false
	}
	return accounts[number], true
}

// populate 写入缓存；并发调用可能重复写入同一结果。
func (c *baseClient) populate(scope string, accounts []Account) {
	m := make(map[int]string, len(accounts))
	// 同币种有多个账户时，按 client-info 顺序后者覆盖前者
	for _, acc := range accounts {
		m[acc.Currency.Number] = acc.ID
	}
	c.mu.Lock()
	c.accounts[scope] = m
	c.mu.Unlock()
	c.logger.Debug("currency cache populated", slog.String("scope", scope), slog.Int("accounts", len(m)))
}

func (c *baseClient) resetCurrencyCache() {
	c.mu.Lock()
	c.accounts = make(map[string]map[int]string)
	c.mu.Unlock()
}

func (c *baseClient) setWebhook(ctx context.Context, webhookURL string, auth authorizer) error {
	if err := validator.ValidateCallbackURL(webhookURL); err != nil {
		return apierrors.Wrap(apierrors.CodeInvalidRequestParams, "invalid webhook url", err)
	}
	header, err := auth(EndpointWebhook)
	if err != nil {
		return err
	}
	_, err = c.http.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   EndpointWebhook,
		Header: header,
		Body:   map[string]string{"webHookUrl": webhookURL},
	})
	return err
}
