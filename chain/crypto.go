package chain

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1"
	"github.com/pkg/errors"
)

// ErrCryptoFailure covers private-key decode failures, wrong digest
// sizes, and canonical-signature search exhaustion.
var ErrCryptoFailure = errors.New("chain: crypto failure")

func curve() elliptic.Curve { return secp256k1.S256() }

// ecPrivateKeyFromBytes reconstructs a stdlib ecdsa.PrivateKey from a
// raw 32-byte secp256k1 scalar.
func ecPrivateKeyFromBytes(b []byte) (*ecdsa.PrivateKey, error) {
	c := curve()
	k := new(big.Int).SetBytes(b)
	if k.Sign() == 0 || k.Cmp(c.Params().N) >= 0 {
		return nil, errors.Wrap(ErrCryptoFailure, "private key out of range for secp256k1")
	}
	priv := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: c},
		D:         k,
	}
	priv.PublicKey.X, priv.PublicKey.Y = c.ScalarBaseMult(k.Bytes())
	return priv, nil
}

// ecUnmarshalCompressed inverts elliptic.MarshalCompressed for secp256k1,
// recovering y from x and the sign bit via a modular square root.
func ecUnmarshalCompressed(data []byte) (*ecdsa.PublicKey, error) {
	c := curve()
	byteLen := (c.Params().BitSize + 7) / 8
	if len(data) != 1+byteLen {
		return nil, errors.Wrapf(ErrCryptoFailure, "invalid public key length %d", len(data))
	}
	if data[0] != 2 && data[0] != 3 {
		return nil, errors.New("chain: invalid public key compression tag")
	}
	p := c.Params().P
	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(p) >= 0 {
		return nil, errors.New("chain: public key x out of field range")
	}

	// secp256k1 polynomial: y^2 = x^3 + b (a == 0)
	y := new(big.Int).Mul(x, x)
	y.Mul(y, x)
	y.Add(y, c.Params().B)
	y.Mod(y, p)
	y.ModSqrt(y, p)
	if y == nil {
		return nil, errors.New("chain: x is not on curve")
	}
	if byte(y.Bit(0)) != data[0]&1 {
		y.Neg(y).Mod(y, p)
	}
	if !c.IsOnCurve(x, y) {
		return nil, errors.New("chain: point not on curve")
	}
	return &ecdsa.PublicKey{Curve: c, X: x, Y: y}, nil
}

// ecNormalizeSignature forces s into the lower half of the curve order,
// the same BIP-62-style normalization tzgo applies, so repeated signing
// of the same digest can't produce the other (equally valid) S root.
func ecNormalizeSignature(r, s *big.Int) (*big.Int, *big.Int) {
	order := curve().Params().N
	half := new(big.Int).Rsh(order, 1)
	if s.Cmp(half) > 0 {
		s = new(big.Int).Sub(order, s)
	}
	return r, s
}

// derIntegerLen returns the length, in bytes, that x would occupy as a
// DER-encoded ASN.1 INTEGER: the minimal big-endian representation,
// plus one extra byte if the high bit of the first byte is set (DER
// requires a leading 0x00 so the value doesn't read as negative).
func derIntegerLen(x *big.Int) int {
	b := x.Bytes()
	if len(b) == 0 {
		return 1
	}
	if b[0]&0x80 != 0 {
		return len(b) + 1
	}
	return len(b)
}

// isCanonical is the chain's canonicality test: both r and s must
// occupy exactly 32 bytes in their DER integer form.
func isCanonical(r, s *big.Int) bool {
	return derIntegerLen(r) == 32 && derIntegerLen(s) == 32
}

// recoverPublicKey implements the public-key recovery algorithm from
// SEC1 4.1.6: given digest e, signature (r,s), and recovery index
// i = 2*isSecondKey + isYOdd, reconstruct R on the curve and compute
// Q = r^-1 * (s*R - e*G).
func recoverPublicKey(digest []byte, r, s *big.Int, i int) *ecdsa.PublicKey {
	c := curve()
	params := c.Params()
	order := params.N

	isYOdd := i % 2
	isSecondKey := i / 2

	x := new(big.Int).Set(r)
	if isSecondKey == 1 {
		x.Add(x, order)
	}
	if x.Cmp(params.P) >= 0 {
		return nil
	}

	alpha := new(big.Int).Mul(x, x)
	alpha.Mul(alpha, x)
	alpha.Add(alpha, params.B)
	alpha.Mod(alpha, params.P)

	beta := new(big.Int).ModSqrt(alpha, params.P)
	if beta == nil {
		return nil
	}

	var y *big.Int
	if int(beta.Bit(0)) == isYOdd {
		y = beta
	} else {
		y = new(big.Int).Sub(params.P, beta)
	}
	if !c.IsOnCurve(x, y) {
		return nil
	}

	e := new(big.Int).SetBytes(digest)
	// e mod n, per SEC1: digest can be longer than the order.
	e.Mod(e, order)

	// sR
	sRx, sRy := c.ScalarMult(x, y, s.Bytes())
	// eG
	eGx, eGy := c.ScalarBaseMult(new(big.Int).Mod(e, order).Bytes())
	// sR - eG == sR + (-eG); negate eG's Y coordinate.
	negEGy := new(big.Int).Sub(params.P, eGy)
	negEGy.Mod(negEGy, params.P)
	qx, qy := c.Add(sRx, sRy, eGx, negEGy)

	rInv := new(big.Int).ModInverse(r, order)
	if rInv == nil {
		return nil
	}
	qx, qy = c.ScalarMult(qx, qy, rInv.Bytes())

	pub := &ecdsa.PublicKey{Curve: c, X: qx, Y: qy}
	if !ecdsa.Verify(pub, digest, r, s) {
		return nil
	}
	return pub
}
