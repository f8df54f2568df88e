package signer

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// scalarSize 为 r / s 在原始签名中的固定宽度。
const scalarSize = 32

var errMalformedDER = errors.New("malformed DER signature")

// derToRaw 将 ASN.1 DER 的 SEQUENCE{r INTEGER, s INTEGER} 转换为定长 r‖s。
// 每个分量按大端左补零到 size 字节，DER 为区分符号位添加的前导 0x00 会被去掉。
func derToRaw(der []byte, size int) ([]byte, error) {
	r, s, err := parseDER(der)
	if err != nil {
		return nil, err
	}
	if r.BitLen() > size*8 || s.BitLen() > size*8 {
		return nil, fmt.Errorf("signature component exceeds %d bytes", size)
	}
	out := make([]byte, 2*size)
	r.FillBytes(out[:size])
	s.FillBytes(out[size:])
	return out, nil
}

func parseDER(der []byte) (*big.Int, *big.Int, error) {
	var (
		r, s  = new(big.Int), new(big.Int)
		inner cryptobyte.String
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, casn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, nil, errMalformedDER
	}
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return nil, nil, errors.New("signature component must be positive")
	}
	return r, s, nil
}

// rawToComponents 拆分 r‖s。
func rawToComponents(raw []byte) (*big.Int, *big.Int) {
	half := len(raw) / 2
	return new(big.Int).SetBytes(raw[:half]), new(big.Int).SetBytes(raw[half:])
}
