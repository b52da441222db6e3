package chain

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func testPrivateKey(t *testing.T) PrivateKey {
	t.Helper()
	// An arbitrary but fixed 32-byte scalar, comfortably inside
	// [1, n-1] for secp256k1.
	raw := sha256.Sum256([]byte("gphtx test signing key"))
	sk, err := NewPrivateKey(raw[:])
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	return sk
}

func TestSignProducesCanonicalRecoverableSignature(t *testing.T) {
	sk := testPrivateKey(t)
	pub, err := sk.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	digest := sha256.Sum256([]byte("hello graphene"))

	sig, err := sk.Sign(digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if sig[0] < 31 || sig[0] > 34 {
		t.Fatalf("header byte %d outside {31..34}", sig[0])
	}

	recovered, err := sig.RecoverPublicKey(digest[:])
	if err != nil {
		t.Fatalf("RecoverPublicKey: %v", err)
	}
	if !recovered.Equal(pub) {
		t.Errorf("recovered key %s != signer key %s", recovered, pub)
	}

	if !pub.Verify(digest[:], sig) {
		t.Errorf("Verify rejected a signature Sign itself produced")
	}
}

func TestSignatureDeterministicWireLength(t *testing.T) {
	sk := testPrivateKey(t)
	digest := sha256.Sum256([]byte("another message"))
	sig, err := sk.Sign(digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := sig.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	if buf.Len() != 65 {
		t.Errorf("encoded signature length = %d, want 65", buf.Len())
	}
}

func TestNewPrivateKeyRejectsWrongLength(t *testing.T) {
	if _, err := NewPrivateKey(make([]byte, 31)); err == nil {
		t.Errorf("expected error for 31-byte key")
	}
	if _, err := NewPrivateKey(make([]byte, 33)); err == nil {
		t.Errorf("expected error for 33-byte key")
	}
}

func TestNewPrivateKeyRejectsZero(t *testing.T) {
	if _, err := NewPrivateKey(make([]byte, 32)); err == nil {
		t.Errorf("expected error for all-zero scalar")
	}
}
