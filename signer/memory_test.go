package signer

import (
	"context"
	"crypto/sha256"
	"testing"

	"github.com/graphenego/gphtx/chain"
	"github.com/graphenego/gphtx/tx"
)

func testKey(t *testing.T, seed string) chain.PrivateKey {
	t.Helper()
	raw := sha256.Sum256([]byte(seed))
	sk, err := chain.NewPrivateKey(raw[:])
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	return sk
}

func buildTestTransfer(t *testing.T) *tx.SignedTransaction {
	t.Helper()
	fee, err := tx.NewAsset(0, "1.3.0")
	if err != nil {
		t.Fatalf("NewAsset: %v", err)
	}
	amount, err := tx.NewAsset(100, "1.3.0")
	if err != nil {
		t.Fatalf("NewAsset: %v", err)
	}
	xfer, err := tx.NewTransfer(fee, "1.2.1", "1.2.2", amount, chain.None[tx.Memo]())
	if err != nil {
		t.Fatalf("NewTransfer: %v", err)
	}
	txn, err := tx.NewSignedTransaction(1, 2, "2016-01-01T00:00:00", []tx.TaggedOperation{{Op: xfer}})
	if err != nil {
		t.Fatalf("NewSignedTransaction: %v", err)
	}
	return txn
}

func TestMemorySignerDedupesKeys(t *testing.T) {
	k1 := testKey(t, "alice")
	k2 := testKey(t, "bob")
	s, err := NewMemorySigner(k1, k2, k1)
	if err != nil {
		t.Fatalf("NewMemorySigner: %v", err)
	}
	keys, err := s.ListKeys(context.Background())
	if err != nil {
		t.Fatalf("ListKeys: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("ListKeys returned %d keys, want 2 (deduplicated)", len(keys))
	}
}

func TestSignTransactionRejectsUnknownChain(t *testing.T) {
	s, err := NewMemorySigner(testKey(t, "alice"))
	if err != nil {
		t.Fatalf("NewMemorySigner: %v", err)
	}
	txn := buildTestTransfer(t)
	err = s.SignTransaction(context.Background(), txn, chain.Params{Name: "bad", ChainID: "not-hex"})
	if err == nil {
		t.Fatalf("expected error signing against a malformed chain descriptor")
	}
}

func TestSignTransactionProducesRecoverableSignatures(t *testing.T) {
	k1 := testKey(t, "alice")
	k2 := testKey(t, "bob")
	s, err := NewMemorySigner(k1, k2)
	if err != nil {
		t.Fatalf("NewMemorySigner: %v", err)
	}

	txn := buildTestTransfer(t)
	params, err := chain.LookupChain("GPH")
	if err != nil {
		t.Fatalf("LookupChain: %v", err)
	}

	if err := s.SignTransaction(context.Background(), txn, params); err != nil {
		t.Fatalf("SignTransaction: %v", err)
	}

	if len(txn.Signatures) != 2 {
		t.Fatalf("got %d signatures, want 2", len(txn.Signatures))
	}

	digest, err := txn.Digest(params.ChainID)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}

	wantKeys := []chain.PrivateKey{k1, k2}
	for i, sig := range txn.Signatures {
		pub, err := wantKeys[i].Public()
		if err != nil {
			t.Fatalf("Public: %v", err)
		}
		recovered, err := sig.RecoverPublicKey(digest)
		if err != nil {
			t.Fatalf("RecoverPublicKey: %v", err)
		}
		if !recovered.Equal(pub) {
			t.Errorf("signature %d recovered %s, want %s", i, recovered, pub)
		}
	}
}

func TestSignedTransactionBytesChangeAfterSigning(t *testing.T) {
	k := testKey(t, "alice")
	s, err := NewMemorySigner(k)
	if err != nil {
		t.Fatalf("NewMemorySigner: %v", err)
	}
	txn := buildTestTransfer(t)
	before, err := txn.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	params, err := chain.LookupChain("GPH")
	if err != nil {
		t.Fatalf("LookupChain: %v", err)
	}
	if err := s.SignTransaction(context.Background(), txn, params); err != nil {
		t.Fatalf("SignTransaction: %v", err)
	}
	after, err := txn.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if len(after) != len(before)+1+65 {
		t.Errorf("signed length = %d, want %d (unsigned + varint(1) + 65)", len(after), len(before)+1+65)
	}
}
