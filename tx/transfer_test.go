package tx

import (
	"bytes"
	"testing"

	"github.com/graphenego/gphtx/chain"
)

func TestTransferEmptyMemoEncodesAsAbsent(t *testing.T) {
	fee, err := NewAsset(0, "1.3.0")
	if err != nil {
		t.Fatalf("NewAsset fee: %v", err)
	}
	amount, err := NewAsset(100, "1.3.0")
	if err != nil {
		t.Fatalf("NewAsset amount: %v", err)
	}
	xfer, err := NewTransfer(fee, "1.2.1", "1.2.2", amount, chain.None[Memo]())
	if err != nil {
		t.Fatalf("NewTransfer: %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := xfer.Memo.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
		t.Errorf("empty memo wire = % x, want [00]", buf.Bytes())
	}
}

func TestTransferInsideSignedTransactionWire(t *testing.T) {
	fee, err := NewAsset(0, "1.3.0")
	if err != nil {
		t.Fatalf("NewAsset fee: %v", err)
	}
	amount, err := NewAsset(5, "1.3.0")
	if err != nil {
		t.Fatalf("NewAsset amount: %v", err)
	}
	xfer, err := NewTransfer(fee, "1.2.1", "1.2.2", amount, chain.None[Memo]())
	if err != nil {
		t.Fatalf("NewTransfer: %v", err)
	}

	txn, err := NewSignedTransaction(0, 0, "1970-01-01T00:00:00", []TaggedOperation{{Op: xfer}})
	if err != nil {
		t.Fatalf("NewSignedTransaction: %v", err)
	}
	got, err := txn.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	want := []byte{
		0x00, 0x00, // ref_block_num
		0x00, 0x00, 0x00, 0x00, // ref_block_prefix
		0x00, 0x00, 0x00, 0x00, // expiration
		0x01,       // operations array length
		0x00,       // operation tag: transfer
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // fee
		0x01, // from instance
		0x02, // to instance
		0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // amount
		0x00, // memo absent
		0x00, // transfer extensions
		0x00, // transaction extensions
	}
	if !bytes.Equal(got, want) {
		t.Errorf("wire =\n% x\nwant\n% x", got, want)
	}
}

func TestSignedTransactionDeterministic(t *testing.T) {
	fee, _ := NewAsset(0, "1.3.0")
	amount, _ := NewAsset(5, "1.3.0")
	xfer, err := NewTransfer(fee, "1.2.1", "1.2.2", amount, chain.None[Memo]())
	if err != nil {
		t.Fatalf("NewTransfer: %v", err)
	}
	txn, err := NewSignedTransaction(1, 2, "2016-01-01T00:00:00", []TaggedOperation{{Op: xfer}})
	if err != nil {
		t.Fatalf("NewSignedTransaction: %v", err)
	}
	a, err := txn.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	b, err := txn.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("serializing the same transaction twice produced different bytes")
	}
}
