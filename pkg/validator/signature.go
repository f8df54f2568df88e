package validator

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// RawSignatureSize 为 r‖s 拼接后的签名长度（每个分量 32 字节）。
const RawSignatureSize = 64

var errSignatureNot64Bytes = errors.New("signature must decode to 64 bytes")

// DecodeRawSignature 将 base64 签名解码为二进制并验证长度。
func DecodeRawSignature(signature string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 signature: %w", err)
	}
	if len(decoded) != RawSignatureSize {
		return nil, errSignatureNot64Bytes
	}
	return decoded, nil
}

// ValidateCallbackURL 校验回调 / webhook 地址为绝对 http(s) URL。
func ValidateCallbackURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("url is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
