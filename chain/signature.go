package chain

import (
	"bytes"
	"crypto/elliptic"
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

// ErrBadSignature is returned for malformed signature bytes or a
// recovery header byte outside the compact-compressed range.
var ErrBadSignature = errors.New("chain: bad signature")

// Signature is the chain's compact recoverable signature: one header
// byte followed by fixed 32-byte r and 32-byte s. It is written to the
// wire as exactly 65 raw bytes, with no length prefix.
type Signature [65]byte

// EncodeBuffer writes the 65 raw signature bytes.
func (sig Signature) EncodeBuffer(buf *bytes.Buffer) error {
	buf.Write(sig[:])
	return nil
}

// DecodeBuffer reads 65 raw signature bytes.
func (sig *Signature) DecodeBuffer(buf *bytes.Buffer) error {
	if buf.Len() < 65 {
		return errors.Wrap(ErrBadSignature, "short buffer")
	}
	copy(sig[:], buf.Next(65))
	return nil
}

func (sig Signature) String() string {
	return hex.EncodeToString(sig[:])
}

// recoveryID extracts i in 0..3 from the header byte, which is always
// i + 4 (compressed point) + 27 (compact encoding).
func (sig Signature) recoveryID() (int, error) {
	header := int(sig[0])
	i := header - 27 - 4
	if i < 0 || i > 3 {
		return 0, errors.Wrapf(ErrBadSignature, "header byte %d out of recoverable compact range", sig[0])
	}
	return i, nil
}

// RecoverPublicKey recomputes the signer's compressed public key from
// sig and the digest it was produced over, the inverse of
// PrivateKey.Sign's recovery-parameter search.
func (sig Signature) RecoverPublicKey(digest []byte) (PublicKey, error) {
	var pub PublicKey
	i, err := sig.recoveryID()
	if err != nil {
		return pub, err
	}
	r := new(big.Int).SetBytes(sig[1:33])
	s := new(big.Int).SetBytes(sig[33:65])
	if !isCanonical(r, s) {
		return pub, errors.Wrap(ErrBadSignature, "r,s not canonical")
	}
	cand := recoverPublicKey(digest, r, s, i)
	if cand == nil {
		return pub, errors.Wrap(ErrBadSignature, "recovery failed")
	}
	copy(pub[:], elliptic.MarshalCompressed(curve(), cand.X, cand.Y))
	return pub, nil
}
