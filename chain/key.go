package chain

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"

	"github.com/echa/log"
	"github.com/pkg/errors"
)

// MaxSignAttempts bounds the canonical-signature search. Each attempt
// draws a fresh ECDSA nonce (crypto/ecdsa.Sign reads crypto/rand), so
// failures are independent and this is not expected to ever trigger in
// practice; python-graphenelib recommends at least 1024.
const MaxSignAttempts = 1024

// signLog is the named logger for the canonical-signature search,
// following tzgo's per-subsystem logger convention.
var signLog = log.NewLogger("SIGN")

// PrivateKey is a raw 32-byte secp256k1 scalar.
type PrivateKey [32]byte

// PublicKey is a 33-byte compressed secp256k1 point.
type PublicKey [33]byte

// NewPrivateKey validates and wraps a raw 32-byte scalar.
func NewPrivateKey(b []byte) (PrivateKey, error) {
	var sk PrivateKey
	if len(b) != 32 {
		return sk, errors.Wrapf(ErrCryptoFailure, "private key must be 32 bytes, got %d", len(b))
	}
	if _, err := ecPrivateKeyFromBytes(b); err != nil {
		return sk, err
	}
	copy(sk[:], b)
	return sk, nil
}

// Public derives the compressed public key for sk.
func (sk PrivateKey) Public() (PublicKey, error) {
	var pub PublicKey
	priv, err := ecPrivateKeyFromBytes(sk[:])
	if err != nil {
		return pub, err
	}
	copy(pub[:], elliptic.MarshalCompressed(curve(), priv.PublicKey.X, priv.PublicKey.Y))
	return pub, nil
}

// Equal reports whether two public keys are byte-identical.
func (pub PublicKey) Equal(other PublicKey) bool {
	return bytes.Equal(pub[:], other[:])
}

func (pub PublicKey) String() string {
	return hex.EncodeToString(pub[:])
}

// ParsePublicKey validates a raw 33-byte compressed point.
func ParsePublicKey(b []byte) (PublicKey, error) {
	var pub PublicKey
	if _, err := ecUnmarshalCompressed(b); err != nil {
		return pub, err
	}
	copy(pub[:], b)
	return pub, nil
}

// Verify checks sig against digest using this public key, independent
// of the recovery-parameter search Sign performs.
func (pub PublicKey) Verify(digest []byte, sig Signature) bool {
	key, err := ecUnmarshalCompressed(pub[:])
	if err != nil {
		return false
	}
	r := new(big.Int).SetBytes(sig[1:33])
	s := new(big.Int).SetBytes(sig[33:65])
	return ecdsa.Verify(key, digest, r, s)
}

// Sign produces a canonical, recoverable 65-byte signature over digest
// (normally a single sha256 of chain id plus a transaction's wire bytes), by
// retrying crypto/ecdsa.Sign until both the DER canonicality condition
// and the recovery-parameter search succeed, mirroring
// Signed_Transaction.sign/recover_public_key from python-graphenelib.
func (sk PrivateKey) Sign(digest []byte) (Signature, error) {
	var sig Signature
	if len(digest) != 32 {
		return sig, errors.Wrapf(ErrCryptoFailure, "digest must be 32 bytes, got %d", len(digest))
	}
	priv, err := ecPrivateKeyFromBytes(sk[:])
	if err != nil {
		return sig, err
	}
	wantPub, err := sk.Public()
	if err != nil {
		return sig, err
	}

	for attempt := 1; attempt <= MaxSignAttempts; attempt++ {
		r, s, err := ecdsa.Sign(rand.Reader, priv, digest)
		if err != nil {
			return sig, errors.Wrap(err, "chain: ecdsa sign")
		}
		r, s = ecNormalizeSignature(r, s)
		if !isCanonical(r, s) {
			if attempt%10 == 0 {
				signLog.Debugf("signature not canonical after %d attempts", attempt)
			}
			continue
		}

		var recID = -1
		for i := 0; i < 4; i++ {
			cand := recoverPublicKey(digest, r, s, i)
			if cand == nil {
				continue
			}
			var candPub PublicKey
			copy(candPub[:], elliptic.MarshalCompressed(curve(), cand.X, cand.Y))
			if candPub.Equal(wantPub) {
				recID = i
				break
			}
		}
		if recID < 0 {
			if attempt%10 == 0 {
				signLog.Debugf("no recovery id matched public key after %d attempts", attempt)
			}
			continue
		}

		sig[0] = byte(recID + 4 + 27)
		rb := r.Bytes()
		sb := s.Bytes()
		copy(sig[1+32-len(rb):1+32], rb)
		copy(sig[33+32-len(sb):33+32], sb)
		return sig, nil
	}
	return sig, errors.Wrapf(ErrCryptoFailure, "no canonical signature found in %d attempts", MaxSignAttempts)
}

// Digest is the chain's default transaction hash function: a single
// sha256 pass over the signable wire bytes.
func Digest(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}
