package tx

import (
	"encoding/json"
	"testing"

	"github.com/graphenego/gphtx/chain"
)

func TestSignedTransactionMarshalJSONIncludesOperationBody(t *testing.T) {
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

	raw, err := txn.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var doc struct {
		Operations [][]json.RawMessage `json:"operations"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("json.Unmarshal: %v\nraw: %s", err, raw)
	}
	if len(doc.Operations) != 1 {
		t.Fatalf("got %d operations, want 1", len(doc.Operations))
	}
	if len(doc.Operations[0]) != 2 {
		t.Fatalf("operation entry has %d elements, want [tag, body]", len(doc.Operations[0]))
	}
	var tag int
	if err := json.Unmarshal(doc.Operations[0][0], &tag); err != nil {
		t.Fatalf("unmarshal tag: %v", err)
	}
	if tag != int(xfer.Tag()) {
		t.Errorf("operation tag = %d, want %d", tag, xfer.Tag())
	}

	var body struct {
		From   string `json:"from"`
		To     string `json:"to"`
		Amount struct {
			Amount  int64  `json:"amount"`
			AssetID string `json:"asset_id"`
		} `json:"amount"`
	}
	if err := json.Unmarshal(doc.Operations[0][1], &body); err != nil {
		t.Fatalf("unmarshal operation body: %v\nbody: %s", err, doc.Operations[0][1])
	}
	if body.From != "1.2.1" {
		t.Errorf("body.from = %q, want 1.2.1", body.From)
	}
	if body.To != "1.2.2" {
		t.Errorf("body.to = %q, want 1.2.2", body.To)
	}
	if body.Amount.Amount != 5 {
		t.Errorf("body.amount.amount = %d, want 5", body.Amount.Amount)
	}
	if body.Amount.AssetID != "1.3.0" {
		t.Errorf("body.amount.asset_id = %q, want 1.3.0", body.Amount.AssetID)
	}
}

func TestTransferMarshalJSONOmitsAbsentMemo(t *testing.T) {
	fee, err := NewAsset(0, "1.3.0")
	if err != nil {
		t.Fatalf("NewAsset fee: %v", err)
	}
	amount, err := NewAsset(1, "1.3.0")
	if err != nil {
		t.Fatalf("NewAsset amount: %v", err)
	}
	xfer, err := NewTransfer(fee, "1.2.1", "1.2.2", amount, chain.None[Memo]())
	if err != nil {
		t.Fatalf("NewTransfer: %v", err)
	}

	raw, err := xfer.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("json.Unmarshal: %v\nraw: %s", err, raw)
	}
	if _, present := body["memo"]; present {
		t.Errorf("absent memo rendered a \"memo\" field: %s", raw)
	}
}
