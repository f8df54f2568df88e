package monobank

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	EndpointCurrencyList     = "/bank/currency"
	EndpointClientInfo       = "/personal/client-info"
	EndpointAccountStatement = "/personal/statement/{account}/{from}/{to}"
	EndpointAuthRequest      = "/personal/auth/request"
	EndpointWebhook          = "/personal/webhook"
)

// DefaultAccount 表示默认账户。
const DefaultAccount = "0"

// statementPath 展开 statement 路径模板，from / to 截断为整秒 Unix 时间戳。
func statementPath(account string, from, to time.Time) string {
	r := strings.NewReplacer(
		"{account}", url.PathEscape(account),
		"{from}", unixSeconds(from),
		"{to}", unixSeconds(to),
	)
	return r.Replace(EndpointAccountStatement)
}

func unixSeconds(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
