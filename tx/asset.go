// Package tx implements the composite object model, the concrete
// operation bodies, and the signed-transaction assembler built on top
// of the chain package's primitive codec.
package tx

import (
	"bytes"

	"github.com/graphenego/gphtx/chain"
)

// Asset is an amount of a given asset type: a signed i64 quantity plus
// the asset's object id. Mirrors python-graphenelib's Asset(amount,
// asset_id) helper.
type Asset struct {
	Amount  chain.Int64
	AssetID chain.ObjectID
}

// NewAsset parses assetID ("1.3.N") and wraps it with amount.
func NewAsset(amount int64, assetID string) (Asset, error) {
	want := chain.ObjectTypeAsset
	id, err := chain.ParseObjectID(assetID, &want)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Amount: chain.Int64(amount), AssetID: id}, nil
}

func (a Asset) EncodeBuffer(buf *bytes.Buffer) error {
	if err := a.Amount.EncodeBuffer(buf); err != nil {
		return err
	}
	return a.AssetID.EncodeBuffer(buf)
}

func (a *Asset) DecodeBuffer(buf *bytes.Buffer) error {
	if err := a.Amount.DecodeBuffer(buf); err != nil {
		return err
	}
	return a.AssetID.DecodeBuffer(buf)
}

func (a Asset) MarshalJSON() ([]byte, error) {
	return []byte(`{"amount":` + itoa64(int64(a.Amount)) + `,"asset_id":"` + a.AssetID.String() + `"}`), nil
}
