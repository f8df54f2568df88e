package monobank

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aegis-sign/monobank/internal/transport"
	"github.com/aegis-sign/monobank/pkg/apierrors"
	"github.com/aegis-sign/monobank/pkg/signer"
	"github.com/aegis-sign/monobank/pkg/validator"
)

// CorporateClient 以 X-Key-Id 和逐请求签名访问第三方授权的数据，可并发使用。
type CorporateClient struct {
	base   *baseClient
	signer *signer.Signer
}

// NewCorporate 构造 CorporateClient，私钥来自 WithSigner 或 cfg.PrivateKey。
func NewCorporate(cfg Config, opts ...Option) (*CorporateClient, error) {
	if strings.TrimSpace(cfg.KeyID) == "" {
		return nil, apierrors.New(apierrors.CodeInvalidRequestParams, "corporate key id is required")
	}
	o := buildOptions(cfg, opts)
	s := o.signer
	if s == nil {
		var err error
		s, err = signer.New(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
	}
	header := http.Header{}
	header.Set("X-Key-Id", cfg.KeyID)
	base, err := newBaseClient(cfg, header, o)
	if err != nil {
		return nil, err
	}
	return &CorporateClient{base: base, signer: s}, nil
}

// GetCurrencyList 返回公开汇率列表。
func (c *CorporateClient) GetCurrencyList(ctx context.Context) ([]CurrencyInfo, error) {
	return c.base.currencyList(ctx)
}

// GetAccessRequest 发起访问请求。权限或回调地址非法时不会发出网络请求。
func (c *CorporateClient) GetAccessRequest(ctx context.Context, permissions []Permission, callback string) (AccessRequest, error) {
	perms, err := joinPermissions(permissions)
	if err != nil {
		return AccessRequest{}, err
	}
	if callback != "" {
		if err := validator.ValidateCallbackURL(callback); err != nil {
			return AccessRequest{}, apierrors.Wrap(apierrors.CodeInvalidRequestParams, "invalid callback url", err)
		}
	}
	ts := c.timestamp()
	sig, err := c.sign(ts + perms + EndpointAuthRequest)
	if err != nil {
		return AccessRequest{}, err
	}
	header := http.Header{}
	header.Set("X-Time", ts)
	header.Set("X-Permissions", perms)
	header.Set("X-Sign", sig)
	if callback != "" {
		header.Set("X-Callback", callback)
	}
	var out AccessRequest
	if _, err := c.base.http.DoJSON(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   EndpointAuthRequest,
		Header: header,
	}, &out); err != nil {
		return AccessRequest{}, err
	}
	return out, nil
}

// CheckAccessRequest 查询访问请求是否已被用户确认。200 为已确认；401 表示尚未确认，返回 false 且无错误。
func (c *CorporateClient) CheckAccessRequest(ctx context.Context, requestID string) (bool, error) {
	header, err := c.signedHeaders(requestID)(EndpointAuthRequest)
	if err != nil {
		return false, err
	}
	resp, err := c.base.http.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   EndpointAuthRequest,
		Header: header,
	})
	if err != nil {
		if apiErr, ok := apierrors.FromError(err); ok && apiErr.Status == http.StatusUnauthorized {
			return false, nil
		}
		return false, err
	}
	// 只有 200 表示已确认，其他 2xx 视为未确认
	return resp.Status == http.StatusOK, nil
}

// GetUserInfoWithRequestID 返回已授权用户的信息。
func (c *CorporateClient) GetUserInfoWithRequestID(ctx context.Context, requestID string) (UserInfo, error) {
	return c.base.userInfo(ctx, c.signedHeaders(requestID))
}

// GetStatementWithRequestID 返回已授权用户的账户流水，签名覆盖展开后的完整路径。
func (c *CorporateClient) GetStatementWithRequestID(ctx context.Context, requestID, account string, from, to time.Time) ([]Transaction, error) {
	return c.base.statement(ctx, account, from, to, c.signedHeaders(requestID))
}

// GetStatementByCurrencyCodeWithRequestID 按币种查询已授权用户的流水，缓存按 requestID 隔离。
func (c *CorporateClient) GetStatementByCurrencyCodeWithRequestID(ctx context.Context, requestID, currency string, from, to time.Time) ([]Transaction, error) {
	return c.base.statementByCurrency(ctx, requestID, currency, from, to, c.signedHeaders(requestID))
}

// SetWebhookWithRequestID 为已授权用户设置 webhook。
func (c *CorporateClient) SetWebhookWithRequestID(ctx context.Context, requestID, webhookURL string) error {
	return c.base.setWebhook(ctx, webhookURL, c.signedHeaders(requestID))
}

// ResetCurrencyCache 清空所有 requestID 的币种缓存。
func (c *CorporateClient) ResetCurrencyCache() {
	c.base.resetCurrencyCache()
}

// signedHeaders 返回对 time + requestID + path 签名的 authorizer，每次调用取新的 X-Time。
func (c *CorporateClient) signedHeaders(requestID string) authorizer {
	return func(path string) (http.Header, error) {
		if strings.TrimSpace(requestID) == "" {
			return nil, apierrors.New(apierrors.CodeInvalidRequestParams, "request id is required")
		}
		ts := c.timestamp()
		sig, err := c.sign(ts + requestID + path)
		if err != nil {
			return nil, err
		}
		header := http.Header{}
		header.Set("X-Time", ts)
		header.Set("X-Request-Id", requestID)
		header.Set("X-Sign", sig)
		return header, nil
	}
}

func (c *CorporateClient) timestamp() string {
	return strconv.FormatInt(c.base.clock.Now().Unix(), 10)
}

func (c *CorporateClient) sign(message string) (string, error) {
	sig, err := c.signer.SignString(message)
	if err != nil {
		return "", apierrors.Wrap(apierrors.CodeInvalidPrivateKey, "sign request", err)
	}
	return sig, nil
}
