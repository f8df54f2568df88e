package monobank

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aegis-sign/monobank/pkg/apierrors"
)

// PersonalClient 使用个人 X-Token 访问本人数据，可并发使用。
type PersonalClient struct {
	base *baseClient
}

// NewPersonal 构造 PersonalClient，cfg.Token 不能为空。
func NewPersonal(cfg Config, opts ...Option) (*PersonalClient, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, apierrors.New(apierrors.CodeInvalidRequestParams, "personal token is required")
	}
	header := http.Header{}
	header.Set("X-Token", cfg.Token)
	base, err := newBaseClient(cfg, header, buildOptions(cfg, opts))
	if err != nil {
		return nil, err
	}
	return &PersonalClient{base: base}, nil
}

// GetCurrencyList 返回公开汇率列表。
func (c *PersonalClient) GetCurrencyList(ctx context.Context) ([]CurrencyInfo, error) {
	return c.base.currencyList(ctx)
}

// GetUserInfo 返回客户信息与账户。
func (c *PersonalClient) GetUserInfo(ctx context.Context) (UserInfo, error) {
	return c.base.userInfo(ctx, noAuth)
}

// GetStatement 返回账户在 [from, to] 内的流水；account 为空表示默认账户，to 为零值表示当前时间。
func (c *PersonalClient) GetStatement(ctx context.Context, account string, from, to time.Time) ([]Transaction, error) {
	return c.base.statement(ctx, account, from, to, noAuth)
}

// GetStatementByCurrencyCode 按币种（"UAH" 或 "980"）查找账户后返回流水。
func (c *PersonalClient) GetStatementByCurrencyCode(ctx context.Context, currency string, from, to time.Time) ([]Transaction, error) {
	return c.base.statementByCurrency(ctx, "", currency, from, to, noAuth)
}

// SetWebhook 设置接收交易推送的地址。
func (c *PersonalClient) SetWebhook(ctx context.Context, webhookURL string) error {
	return c.base.setWebhook(ctx, webhookURL, noAuth)
}

// ResetCurrencyCache 清空币种到账户的缓存，下次按币种查询时重新拉取用户信息。
func (c *PersonalClient) ResetCurrencyCache() {
	c.base.resetCurrencyCache()
}
