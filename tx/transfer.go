package tx

import (
	"bytes"

	"github.com/graphenego/gphtx/chain"
)

// Transfer moves Amount of an asset from one account to another,
// optionally carrying an encrypted Memo. Field order mirrors
// python-graphenelib's Transfer(fee, from, to, amount, memo).
type Transfer struct {
	Fee        Asset
	From       chain.ObjectID
	To         chain.ObjectID
	Amount     Asset
	Memo       chain.Optional[Memo]
	Extensions Extensions
}

// NewTransfer validates from/to as account ids and wraps the fields
// into a ready-to-encode Transfer.
func NewTransfer(fee Asset, from, to string, amount Asset, memo chain.Optional[Memo]) (Transfer, error) {
	accType := chain.ObjectTypeAccount
	fromID, err := chain.ParseObjectID(from, &accType)
	if err != nil {
		return Transfer{}, err
	}
	toID, err := chain.ParseObjectID(to, &accType)
	if err != nil {
		return Transfer{}, err
	}
	return Transfer{Fee: fee, From: fromID, To: toID, Amount: amount, Memo: memo}, nil
}

func (Transfer) Tag() chain.OperationTag { return tagFor(Transfer{}) }

func (o Transfer) EncodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.EncodeBuffer(buf); err != nil {
		return err
	}
	if err := o.From.EncodeBuffer(buf); err != nil {
		return err
	}
	if err := o.To.EncodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Amount.EncodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Memo.EncodeBuffer(buf); err != nil {
		return err
	}
	return o.Extensions.EncodeBuffer(buf)
}

func (o *Transfer) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.From.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.To.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Amount.DecodeBuffer(buf); err != nil {
		return err
	}
	memo, err := chain.DecodeOptional[Memo, *Memo](buf)
	if err != nil {
		return err
	}
	o.Memo = memo
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o Transfer) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	amount, err := o.Amount.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"from":"` + o.From.String() + `"`)
	buf.WriteString(`,"to":"` + o.To.String() + `"`)
	buf.WriteString(`,"amount":`)
	buf.Write(amount)
	if memo, ok, err := marshalOptionalJSON(o.Memo); err != nil {
		return nil, err
	} else if ok {
		buf.WriteString(`,"memo":`)
		buf.Write(memo)
	}
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}
