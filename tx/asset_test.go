package tx

import (
	"bytes"
	"testing"
)

func TestAssetWire(t *testing.T) {
	a, err := NewAsset(10, "1.3.0")
	if err != nil {
		t.Fatalf("NewAsset: %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := a.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	want := []byte{0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("wire = % x, want % x", buf.Bytes(), want)
	}
}

func TestAssetRoundTrip(t *testing.T) {
	a, err := NewAsset(12345, "1.3.2")
	if err != nil {
		t.Fatalf("NewAsset: %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := a.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	var decoded Asset
	if err := decoded.DecodeBuffer(buf); err != nil {
		t.Fatalf("DecodeBuffer: %v", err)
	}
	if decoded.Amount != a.Amount || decoded.AssetID.Instance != a.AssetID.Instance {
		t.Errorf("round trip = %+v, want %+v", decoded, a)
	}
}

func TestNewAssetRejectsWrongObjectType(t *testing.T) {
	if _, err := NewAsset(1, "1.2.0"); err == nil {
		t.Errorf("expected error constructing an asset amount from an account id")
	}
}
