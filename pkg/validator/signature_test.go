package validator

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecodeRawSignature(t *testing.T) {
	raw := bytes.Repeat([]byte{0x7f}, 64)
	sig := base64.StdEncoding.EncodeToString(raw)
	decoded, err := DecodeRawSignature(sig)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Fatal("decoded signature mismatch")
	}

	if _, err := DecodeRawSignature("%%%"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if _, err := DecodeRawSignature(base64.StdEncoding.EncodeToString(raw[:63])); err == nil {
		t.Fatal("expected error for 63 byte signature")
	}
	// DER 编码的签名长度不固定，不能作为原始签名接受。
	der := append([]byte{0x30, 0x44, 0x02, 0x20}, raw[:32]...)
	der = append(der, 0x02, 0x20)
	der = append(der, raw[32:]...)
	if _, err := DecodeRawSignature(base64.StdEncoding.EncodeToString(der)); err == nil {
		t.Fatal("expected error for DER signature")
	}
}

func TestValidateCallbackURL(t *testing.T) {
	valid := []string{
		"https://example.com/callback",
		"http://localhost:8080/hook?x=1",
	}
	for _, raw := range valid {
		if err := ValidateCallbackURL(raw); err != nil {
			t.Fatalf("%q should be valid: %v", raw, err)
		}
	}

	invalid := []string{
		"",
		"   ",
		"ftp://example.com",
		"/relative/path",
		"https://",
		"://broken",
	}
	for _, raw := range invalid {
		if err := ValidateCallbackURL(raw); err == nil {
			t.Fatalf("%q should be rejected", raw)
		}
	}
}
