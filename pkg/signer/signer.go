// Package signer 持有 corporate 模式使用的 EC 私钥，并生成 X-Sign 头所需的签名。
//
// 远端 API 期望的签名格式不是 DER，而是 base64(r‖s)，r 与 s 各占 32 字节。
package signer

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/aegis-sign/monobank/pkg/apierrors"
	"github.com/aegis-sign/monobank/pkg/validator"
)

const invalidKeyMessage = `"privateKey" must be valid ECDSA PEM string or valid path to readable PEM file`

// Signer 构造后不可变，可在多个 goroutine 间共享。
type Signer struct {
	key keyMaterial
}

// New 接受 PEM 文本或指向可读 PEM 文件的路径。
func New(privateKeyOrPath string) (*Signer, error) {
	if strings.Contains(privateKeyOrPath, "-----BEGIN") {
		return NewFromPEM([]byte(privateKeyOrPath))
	}
	if strings.TrimSpace(privateKeyOrPath) == "" {
		return nil, apierrors.New(apierrors.CodeInvalidPrivateKey, invalidKeyMessage)
	}
	data, err := os.ReadFile(privateKeyOrPath)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.CodeInvalidPrivateKey, invalidKeyMessage, err)
	}
	return NewFromPEM(data)
}

// NewFromPEM 解析 SEC1（EC PRIVATE KEY）或 PKCS#8（PRIVATE KEY）格式的私钥。
func NewFromPEM(data []byte) (*Signer, error) {
	key, err := parsePEM(data)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.CodeInvalidPrivateKey, invalidKeyMessage, err)
	}
	return &Signer{key: key}, nil
}

// Generate 生成新的 secp256k1 私钥，返回 Signer 及其 SEC1 PEM。
func Generate() (*Signer, []byte, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("generate secp256k1 key: %w", err)
	}
	s := &Signer{key: &secp256k1Key{priv: priv}}
	pemBytes, err := s.PrivateKeyPEM()
	if err != nil {
		return nil, nil, err
	}
	return s, pemBytes, nil
}

// Sign 对消息做 SHA-256 + ECDSA 签名，返回 base64(r‖s)。
func (s *Signer) Sign(message []byte) (string, error) {
	digest := sha256.Sum256(message)
	der, err := s.key.signDER(digest[:])
	if err != nil {
		return "", fmt.Errorf("ecdsa sign: %w", err)
	}
	raw, err := derToRaw(der, scalarSize)
	if err != nil {
		return "", fmt.Errorf("convert DER signature: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// SignString 等价于 Sign([]byte(message))。
func (s *Signer) SignString(message string) (string, error) {
	return s.Sign([]byte(message))
}

// Verify 校验 base64(r‖s) 签名是否由该私钥对应的公钥签出。
func (s *Signer) Verify(message []byte, signature string) bool {
	raw, err := validator.DecodeRawSignature(signature)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(message)
	r, sv := rawToComponents(raw)
	return s.key.verify(digest[:], r, sv)
}

// PublicKeyPEM 返回 SubjectPublicKeyInfo PEM，用于向银行登记公钥。
func (s *Signer) PublicKeyPEM() ([]byte, error) {
	der, err := marshalSPKI(s.key)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypePublicKey, Bytes: der}), nil
}

// PrivateKeyPEM 返回 SEC1 PEM。
func (s *Signer) PrivateKeyPEM() ([]byte, error) {
	der, err := marshalSEC1(s.key)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypeECPrivateKey, Bytes: der}), nil
}
