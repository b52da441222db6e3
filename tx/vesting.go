package tx

import (
	"bytes"

	"github.com/graphenego/gphtx/chain"
)

// VestingBalanceWithdraw releases Amount from VestingBalance to Owner,
// subject to the balance's own vesting policy (enforced on-chain, not
// by this codec).
type VestingBalanceWithdraw struct {
	Fee            Asset
	VestingBalance chain.ObjectID
	Owner          chain.ObjectID
	Amount         Asset
}

func (VestingBalanceWithdraw) Tag() chain.OperationTag { return tagFor(VestingBalanceWithdraw{}) }

func (o VestingBalanceWithdraw) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{o.Fee, o.VestingBalance, o.Owner, o.Amount} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *VestingBalanceWithdraw) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.VestingBalance.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Owner.DecodeBuffer(buf); err != nil {
		return err
	}
	return o.Amount.DecodeBuffer(buf)
}

func (o VestingBalanceWithdraw) MarshalJSON() ([]byte, error) {
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
	buf.WriteString(`,"vesting_balance":"` + o.VestingBalance.String() + `"`)
	buf.WriteString(`,"owner":"` + o.Owner.String() + `"`)
	buf.WriteString(`,"amount":`)
	buf.Write(amount)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
