package monobank

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aegis-sign/monobank/pkg/iso4217"
)

// CurrencyCodeError 表示 DTO 中的 ISO 4217 数字码无法识别。
type CurrencyCodeError struct {
	Field string
	Value int
}

func (e *CurrencyCodeError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, strconv.Itoa(e.Value))
}

func resolveCurrency(field string, number int) (iso4217.Currency, error) {
	c, ok := iso4217.ByNumber(number)
	if !ok {
		return iso4217.Currency{}, &CurrencyCodeError{Field: field, Value: number}
	}
	return c, nil
}

// AccessRequest 是 corporate 访问请求，需要用户在 AcceptURL 上确认。
type AccessRequest struct {
	RequestID string `json:"tokenRequestId"`
	AcceptURL string `json:"acceptUrl"`
}

// Account 为客户账户，金额以最小货币单位表示。
type Account struct {
	ID           string
	SendID       string
	Balance      int64
	CreditLimit  int64
	Type         string
	Currency     iso4217.Currency
	CashbackType string
	MaskedPan    []string
	IBAN         string
}

type accountWire struct {
	ID           string   `json:"id"`
	SendID       string   `json:"sendId,omitempty"`
	Balance      int64    `json:"balance"`
	CreditLimit  int64    `json:"creditLimit"`
	Type         string   `json:"type,omitempty"`
	CurrencyCode int      `json:"currencyCode"`
	CashbackType string   `json:"cashbackType"`
	MaskedPan    []string `json:"maskedPan,omitempty"`
	IBAN         string   `json:"iban,omitempty"`
}

// UnmarshalJSON 先校验 currencyCode，再处理其他字段。
func (a *Account) UnmarshalJSON(data []byte) error {
	var probe struct {
		CurrencyCode int `json:"currencyCode"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	currency, err := resolveCurrency("currencyCode", probe.CurrencyCode)
	if err != nil {
		return err
	}
	var w accountWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = Account{
		ID:           w.ID,
		SendID:       w.SendID,
		Balance:      w.Balance,
		CreditLimit:  w.CreditLimit,
		Type:         w.Type,
		Currency:     currency,
		CashbackType: w.CashbackType,
		MaskedPan:    w.MaskedPan,
		IBAN:         w.IBAN,
	}
	return nil
}

// MarshalJSON 输出与 API 相同的字段格式。
func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(accountWire{
		ID:           a.ID,
		SendID:       a.SendID,
		Balance:      a.Balance,
		CreditLimit:  a.CreditLimit,
		Type:         a.Type,
		CurrencyCode: a.Currency.Number,
		CashbackType: a.CashbackType,
		MaskedPan:    a.MaskedPan,
		IBAN:         a.IBAN,
	})
}

// Transaction 为账户流水中的一条记录。
type Transaction struct {
	ID              string
	Time            time.Time
	Description     string
	MCC             int
	OriginalMCC     int
	Hold            bool
	Amount          int64
	OperationAmount int64
	Currency        iso4217.Currency
	CommissionRate  int64
	CashbackAmount  int64
	Balance         int64
	Comment         string
	ReceiptID       string
}

type transactionWire struct {
	ID              string `json:"id"`
	Time            int64  `json:"time"`
	Description     string `json:"description"`
	MCC             int    `json:"mcc"`
	OriginalMCC     int    `json:"originalMcc,omitempty"`
	Hold            bool   `json:"hold"`
	Amount          int64  `json:"amount"`
	OperationAmount int64  `json:"operationAmount"`
	CurrencyCode    int    `json:"currencyCode"`
	CommissionRate  int64  `json:"commissionRate"`
	CashbackAmount  int64  `json:"cashbackAmount"`
	Balance         int64  `json:"balance"`
	Comment         string `json:"comment,omitempty"`
	ReceiptID       string `json:"receiptId,omitempty"`
}

// UnmarshalJSON 先校验 currencyCode，time 为 Unix 秒。
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var probe struct {
		CurrencyCode int `json:"currencyCode"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	currency, err := resolveCurrency("currencyCode", probe.CurrencyCode)
	if err != nil {
		return err
	}
	var w transactionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = Transaction{
		ID:              w.ID,
		Time:            time.Unix(w.Time, 0).UTC(),
		Description:     w.Description,
		MCC:             w.MCC,
		OriginalMCC:     w.OriginalMCC,
		Hold:            w.Hold,
		Amount:          w.Amount,
		OperationAmount: w.OperationAmount,
		Currency:        currency,
		CommissionRate:  w.CommissionRate,
		CashbackAmount:  w.CashbackAmount,
		Balance:         w.Balance,
		Comment:         w.Comment,
		ReceiptID:       w.ReceiptID,
	}
	return nil
}

// MarshalJSON 输出与 API 相同的字段格式。
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionWire{
		ID:              t.ID,
		Time:            t.Time.Unix(),
		Description:     t.Description,
		MCC:             t.MCC,
		OriginalMCC:     t.OriginalMCC,
		Hold:            t.Hold,
		Amount:          t.Amount,
		OperationAmount: t.OperationAmount,
		CurrencyCode:    t.Currency.Number,
		CommissionRate:  t.CommissionRate,
		CashbackAmount:  t.CashbackAmount,
		Balance:         t.Balance,
		Comment:         t.Comment,
		ReceiptID:       t.ReceiptID,
	})
}

// CurrencyInfo 为一对币种的汇率。缺失的汇率 Valid 为 false。
type CurrencyInfo struct {
	CurrencyA iso4217.Currency
	CurrencyB iso4217.Currency
	Date      time.Time
	RateSell  decimal.NullDecimal
	RateBuy   decimal.NullDecimal
	RateCross decimal.NullDecimal
}

type currencyInfoWire struct {
	CurrencyCodeA int                 `json:"currencyCodeA"`
	CurrencyCodeB int                 `json:"currencyCodeB"`
	Date          int64               `json:"date"`
	RateSell      decimal.NullDecimal `json:"rateSell"`
	RateBuy       decimal.NullDecimal `json:"rateBuy"`
	RateCross     decimal.NullDecimal `json:"rateCross"`
}

// UnmarshalJSON 先校验 currencyCodeA，再校验 currencyCodeB。
func (c *CurrencyInfo) UnmarshalJSON(data []byte) error {
	var probe struct {
		CurrencyCodeA int `json:"currencyCodeA"`
		CurrencyCodeB int `json:"currencyCodeB"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	currencyA, err := resolveCurrency("currencyCodeA", probe.CurrencyCodeA)
	if err != nil {
		return err
	}
	currencyB, err := resolveCurrency("currencyCodeB", probe.CurrencyCodeB)
	if err != nil {
		return err
	}
	var w currencyInfoWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = CurrencyInfo{
		CurrencyA: currencyA,
		CurrencyB: currencyB,
		Date:      time.Unix(w.Date, 0).UTC(),
		RateSell:  w.RateSell,
		RateBuy:   w.RateBuy,
		RateCross: w.RateCross,
	}
	return nil
}

// MarshalJSON 输出与 API 相同的字段格式。
func (c CurrencyInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(currencyInfoWire{
		CurrencyCodeA: c.CurrencyA.Number,
		CurrencyCodeB: c.CurrencyB.Number,
		Date:          c.Date.Unix(),
		RateSell:      c.RateSell,
		RateBuy:       c.RateBuy,
		RateCross:     c.RateCross,
	})
}

// UserInfo 为客户信息及其账户列表。
type UserInfo struct {
	ClientID    string    `json:"clientId,omitempty"`
	Name        string    `json:"name"`
	WebHookURL  string    `json:"webHookUrl,omitempty"`
	Permissions string    `json:"permissions,omitempty"`
	Accounts    []Account `json:"accounts"`
}
