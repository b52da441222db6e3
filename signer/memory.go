// Package signer applies the canonical-signature search of
// chain.PrivateKey.Sign to a set of in-memory private keys, mirroring
// tzgo's signer.MemorySigner
// façade generalized to the multi-key signing a Graphene transaction
// requires.
package signer

import (
	"context"

	"github.com/graphenego/gphtx/chain"
	"github.com/graphenego/gphtx/tx"
	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by GetKey when no managed private key
// derives the requested public key.
var ErrKeyNotFound = errors.New("signer: key not found")

// Signer produces signatures for a transaction from a set of managed
// private keys. Every method takes a context since a future signer
// backed by a remote HSM or hardware wallet would need to block on I/O
// here, even though MemorySigner itself never does.
type Signer interface {
	ListKeys(ctx context.Context) ([]chain.PublicKey, error)
	GetKey(ctx context.Context, pub chain.PublicKey) (chain.PrivateKey, error)
	SignTransaction(ctx context.Context, txn *tx.SignedTransaction, params chain.Params) error
}

// MemorySigner holds plaintext private keys in process memory,
// deduplicated in first-seen order (spec §4.5).
type MemorySigner struct {
	keys []chain.PrivateKey
	pubs []chain.PublicKey
}

// NewMemorySigner wraps keys, dropping duplicates while preserving the
// order of first appearance, and rejecting any key that fails to
// decode as a valid secp256k1 scalar.
func NewMemorySigner(keys ...chain.PrivateKey) (*MemorySigner, error) {
	s := &MemorySigner{
		keys: make([]chain.PrivateKey, 0, len(keys)),
		pubs: make([]chain.PublicKey, 0, len(keys)),
	}
	seen := make(map[chain.PrivateKey]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		pub, err := k.Public()
		if err != nil {
			return nil, errors.Wrap(err, "signer: invalid private key")
		}
		s.keys = append(s.keys, k)
		s.pubs = append(s.pubs, pub)
	}
	return s, nil
}

func (s *MemorySigner) ListKeys(_ context.Context) ([]chain.PublicKey, error) {
	out := make([]chain.PublicKey, len(s.pubs))
	copy(out, s.pubs)
	return out, nil
}

func (s *MemorySigner) GetKey(_ context.Context, pub chain.PublicKey) (chain.PrivateKey, error) {
	for i, p := range s.pubs {
		if p.Equal(pub) {
			return s.keys[i], nil
		}
	}
	return chain.PrivateKey{}, errors.Wrapf(ErrKeyNotFound, "%s", pub)
}

// SignTransaction signs txn with every managed key, producing one
// canonical recoverable signature per key, and installs the result via
// txn.SetSignatures. params must validate (spec §4.5: an unknown chain
// descriptor is fatal before any signing work).
func (s *MemorySigner) SignTransaction(_ context.Context, txn *tx.SignedTransaction, params chain.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	digest, err := txn.Digest(params.ChainID)
	if err != nil {
		return err
	}
	sigs := make([]chain.Signature, 0, len(s.keys))
	for _, k := range s.keys {
		sig, err := k.Sign(digest)
		if err != nil {
			return errors.Wrap(err, "signer: canonical signature search failed")
		}
		sigs = append(sigs, sig)
	}
	txn.SetSignatures(sigs)
	return nil
}
