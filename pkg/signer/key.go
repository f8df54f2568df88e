package signer

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	encasn1 "encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
)

const (
	pemTypeECPrivateKey = "EC PRIVATE KEY"
	pemTypePKCS8        = "PRIVATE KEY"
	pemTypePublicKey    = "PUBLIC KEY"
)

var (
	oidPublicKeyECDSA = encasn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1      = encasn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidP256           = encasn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
)

// keyMaterial 抽象不同曲线的私钥实现。
type keyMaterial interface {
	signDER(digest []byte) ([]byte, error)
	verify(digest []byte, r, s *big.Int) bool
	publicKey() ([]byte, error)
	curveOID() encasn1.ObjectIdentifier
	privateScalar() []byte
}

// parsePEM 在 PEM 数据中查找第一个私钥块，跳过 EC PARAMETERS 等其他块。
func parsePEM(data []byte) (keyMaterial, error) {
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, errors.New("no EC private key PEM block found")
		}
		if _, encrypted := block.Headers["Proc-Type"]; encrypted {
			return nil, errors.New("encrypted PEM keys are not supported")
		}
		switch block.Type {
		case pemTypeECPrivateKey:
			return parseSEC1(block.Bytes, nil)
		case pemTypePKCS8:
			return parsePKCS8(block.Bytes)
		}
	}
}

// parseSEC1 解析 RFC 5915 ECPrivateKey，curve 为外层（PKCS#8）提供的曲线。
func parseSEC1(der []byte, curve encasn1.ObjectIdentifier) (keyMaterial, error) {
	var (
		seq       cryptobyte.String
		version   int64
		scalar    cryptobyte.String
		params    cryptobyte.String
		hasParams bool
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&seq, casn1.SEQUENCE) ||
		!seq.ReadASN1Integer(&version) ||
		!seq.ReadASN1(&scalar, casn1.OCTET_STRING) ||
		!seq.ReadOptionalASN1(&params, &hasParams, casn1.Tag(0).Constructed().ContextSpecific()) {
		return nil, errors.New("malformed EC private key")
	}
	if version != 1 {
		return nil, fmt.Errorf("unsupported EC private key version %d", version)
	}
	if hasParams {
		var oid encasn1.ObjectIdentifier
		if !params.ReadASN1ObjectIdentifier(&oid) {
			return nil, errors.New("malformed EC private key parameters")
		}
		curve = oid
	}
	if curve == nil {
		return nil, errors.New("EC private key has no named curve")
	}
	return newKeyMaterial(curve, scalar)
}

// parsePKCS8 解析 PrivateKeyInfo，仅支持 id-ecPublicKey 算法。
func parsePKCS8(der []byte) (keyMaterial, error) {
	var (
		seq     cryptobyte.String
		version int64
		algSeq  cryptobyte.String
		alg     encasn1.ObjectIdentifier
		curve   encasn1.ObjectIdentifier
		inner   cryptobyte.String
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&seq, casn1.SEQUENCE) ||
		!seq.ReadASN1Integer(&version) ||
		!seq.ReadASN1(&algSeq, casn1.SEQUENCE) ||
		!algSeq.ReadASN1ObjectIdentifier(&alg) {
		return nil, errors.New("malformed PKCS#8 private key")
	}
	if !alg.Equal(oidPublicKeyECDSA) {
		return nil, fmt.Errorf("PKCS#8 key algorithm %s is not EC", alg)
	}
	if !algSeq.ReadASN1ObjectIdentifier(&curve) ||
		!seq.ReadASN1(&inner, casn1.OCTET_STRING) {
		return nil, errors.New("malformed PKCS#8 EC parameters")
	}
	return parseSEC1(inner, curve)
}

func newKeyMaterial(curve encasn1.ObjectIdentifier, scalar []byte) (keyMaterial, error) {
	if len(scalar) == 0 || len(scalar) > scalarSize {
		return nil, fmt.Errorf("invalid private scalar length %d", len(scalar))
	}
	switch {
	case curve.Equal(oidSecp256k1):
		return newSecp256k1Key(scalar)
	case curve.Equal(oidP256):
		return newP256Key(scalar)
	default:
		return nil, fmt.Errorf("unsupported curve %s", curve)
	}
}

// secp256k1Key 是 monobank 使用的曲线，签名采用 RFC 6979 确定性 nonce。
type secp256k1Key struct {
	priv *secp256k1.PrivateKey
}

func newSecp256k1Key(scalar []byte) (*secp256k1Key, error) {
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(scalar); overflow || k.IsZero() {
		return nil, errors.New("private scalar out of range")
	}
	return &secp256k1Key{priv: secp256k1.NewPrivateKey(&k)}, nil
}

func (k *secp256k1Key) signDER(digest []byte) ([]byte, error) {
	return secpecdsa.Sign(k.priv, digest).Serialize(), nil
}

func (k *secp256k1Key) verify(digest []byte, r, s *big.Int) bool {
	if r.BitLen() > scalarSize*8 || s.BitLen() > scalarSize*8 {
		return false
	}
	var rs, ss secp256k1.ModNScalar
	if rs.SetByteSlice(r.Bytes()) || ss.SetByteSlice(s.Bytes()) {
		return false
	}
	if rs.IsZero() || ss.IsZero() {
		return false
	}
	// (r, s) 与 (r, N-s) 同样有效，其他实现可能产生高位 s。
	if ss.IsOverHalfOrder() {
		ss.Negate()
	}
	return secpecdsa.NewSignature(&rs, &ss).Verify(digest, k.priv.PubKey())
}

func (k *secp256k1Key) publicKey() ([]byte, error) {
	return k.priv.PubKey().SerializeUncompressed(), nil
}

func (k *secp256k1Key) curveOID() encasn1.ObjectIdentifier { return oidSecp256k1 }

func (k *secp256k1Key) privateScalar() []byte { return k.priv.Serialize() }

// p256Key 使用标准库 ECDSA，签名 nonce 随机。
type p256Key struct {
	priv *ecdsa.PrivateKey
}

func newP256Key(scalar []byte) (*p256Key, error) {
	padded := make([]byte, scalarSize)
	copy(padded[scalarSize-len(scalar):], scalar)
	ek, err := ecdh.P256().NewPrivateKey(padded)
	if err != nil {
		return nil, fmt.Errorf("invalid P-256 private key: %w", err)
	}
	pub := ek.PublicKey().Bytes()
	return &p256Key{priv: &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(pub[1 : 1+scalarSize]),
			Y:     new(big.Int).SetBytes(pub[1+scalarSize:]),
		},
		D: new(big.Int).SetBytes(padded),
	}}, nil
}

func (k *p256Key) signDER(digest []byte) ([]byte, error) {
	return ecdsa.SignASN1(rand.Reader, k.priv, digest)
}

func (k *p256Key) verify(digest []byte, r, s *big.Int) bool {
	return ecdsa.Verify(&k.priv.PublicKey, digest, r, s)
}

func (k *p256Key) publicKey() ([]byte, error) {
	pub, err := k.priv.PublicKey.ECDH()
	if err != nil {
		return nil, err
	}
	return pub.Bytes(), nil
}

func (k *p256Key) curveOID() encasn1.ObjectIdentifier { return oidP256 }

func (k *p256Key) privateScalar() []byte { return k.priv.D.FillBytes(make([]byte, scalarSize)) }

// marshalSEC1 按 RFC 5915 编码私钥，带命名曲线与公钥。
func marshalSEC1(key keyMaterial) ([]byte, error) {
	pub, err := key.publicKey()
	if err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1)
		b.AddASN1OctetString(key.privateScalar())
		b.AddASN1(casn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(key.curveOID())
		})
		b.AddASN1(casn1.Tag(1).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1BitString(pub)
		})
	})
	return b.Bytes()
}

// marshalSPKI 编码 SubjectPublicKeyInfo。
func marshalSPKI(key keyMaterial) ([]byte, error) {
	pub, err := key.publicKey()
	if err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidPublicKeyECDSA)
			b.AddASN1ObjectIdentifier(key.curveOID())
		})
		b.AddASN1BitString(pub)
	})
	return b.Bytes()
}
