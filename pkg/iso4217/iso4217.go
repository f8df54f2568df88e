// Package iso4217 提供 ISO 4217 币种的数字码 / 字母码查询。
package iso4217

import (
	"strconv"
	"strings"
)

// Currency 描述单个币种。
type Currency struct {
	Code   string `json:"code"`
	Number int    `json:"number"`
	Digits int    `json:"digits"`
	Name   string `json:"name"`
}

// String 返回字母码。
func (c Currency) String() string { return c.Code }

// IsZero 表示未解析的币种。
func (c Currency) IsZero() bool { return c.Number == 0 && c.Code == "" }

var (
	byNumber = make(map[int]Currency, len(table))
	byCode   = make(map[string]Currency, len(table))
)

func init() {
	for _, c := range table {
		byNumber[c.Number] = c
		byCode[c.Code] = c
	}
}

// ByNumber 按数字码查找。
func ByNumber(n int) (Currency, bool) {
	c, ok := byNumber[n]
	return c, ok
}

// ByCode 按字母码查找，大小写不敏感。
func ByCode(code string) (Currency, bool) {
	c, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Lookup 接受字母码（"UAH"）或数字码（"980"）。
func Lookup(s string) (Currency, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return ByNumber(n)
	}
	return ByCode(s)
}
