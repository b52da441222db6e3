package tx

import (
	"bytes"

	"github.com/graphenego/gphtx/chain"
)

// LimitOrderCreate places a standing offer to exchange AmountToSell
// for at least MinToReceive, expiring at Expiration unless FillOrKill
// requires immediate full execution.
type LimitOrderCreate struct {
	Fee            Asset
	Seller         chain.ObjectID
	AmountToSell   Asset
	MinToReceive   Asset
	Expiration     chain.PointInTime
	FillOrKill     chain.Bool
	Extensions     Extensions
}

func (LimitOrderCreate) Tag() chain.OperationTag { return tagFor(LimitOrderCreate{}) }

func (o LimitOrderCreate) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{
		o.Fee, o.Seller, o.AmountToSell, o.MinToReceive, o.Expiration, o.FillOrKill, o.Extensions,
	} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *LimitOrderCreate) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Seller.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.AmountToSell.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.MinToReceive.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Expiration.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.FillOrKill.DecodeBuffer(buf); err != nil {
		return err
	}
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o LimitOrderCreate) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	sell, err := o.AmountToSell.MarshalJSON()
	if err != nil {
		return nil, err
	}
	receive, err := o.MinToReceive.MarshalJSON()
	if err != nil {
		return nil, err
	}
	expiration, err := o.Expiration.MarshalJSON()
	if err != nil {
		return nil, err
	}
	fillOrKill, err := o.FillOrKill.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"seller":"` + o.Seller.String() + `"`)
	buf.WriteString(`,"amount_to_sell":`)
	buf.Write(sell)
	buf.WriteString(`,"min_to_receive":`)
	buf.Write(receive)
	buf.WriteString(`,"expiration":`)
	buf.Write(expiration)
	buf.WriteString(`,"fill_or_kill":`)
	buf.Write(fillOrKill)
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}

// LimitOrderCancel cancels a previously created limit order, refunding
// its remaining balance to FeePayingAccount.
type LimitOrderCancel struct {
	Fee             Asset
	FeePayingAccount chain.ObjectID
	Order            chain.ObjectID
	Extensions       Extensions
}

func (LimitOrderCancel) Tag() chain.OperationTag { return tagFor(LimitOrderCancel{}) }

func (o LimitOrderCancel) EncodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.EncodeBuffer(buf); err != nil {
		return err
	}
	if err := o.FeePayingAccount.EncodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Order.EncodeBuffer(buf); err != nil {
		return err
	}
	return o.Extensions.EncodeBuffer(buf)
}

func (o *LimitOrderCancel) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.FeePayingAccount.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Order.DecodeBuffer(buf); err != nil {
		return err
	}
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o LimitOrderCancel) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"fee_paying_account":"` + o.FeePayingAccount.String() + `"`)
	buf.WriteString(`,"order":"` + o.Order.String() + `"`)
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}
