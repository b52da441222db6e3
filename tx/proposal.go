package tx

import (
	"bytes"

	"github.com/graphenego/gphtx/chain"
)

// ProposedOperations is an array of already-tagged operations awaiting
// a committee/multisig review before execution — ProposalCreate's
// proposed_ops reuses the TaggedOperation wrapper since a proposed
// operation has exactly the same wire shape as a top-level one.
type ProposedOperations = chain.Array[TaggedOperation]

// ProposalCreate submits a batch of operations for deferred,
// multi-signature-gated execution.
type ProposalCreate struct {
	Fee                 Asset
	FeePayingAccount     chain.ObjectID
	ExpirationTime       chain.PointInTime
	ProposedOps          ProposedOperations
	ReviewPeriodSeconds  chain.Optional[chain.Uint32]
	Extensions           Extensions
}

func (ProposalCreate) Tag() chain.OperationTag { return tagFor(ProposalCreate{}) }

func (o ProposalCreate) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{
		o.Fee, o.FeePayingAccount, o.ExpirationTime, o.ProposedOps, o.ReviewPeriodSeconds, o.Extensions,
	} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *ProposalCreate) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.FeePayingAccount.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.ExpirationTime.DecodeBuffer(buf); err != nil {
		return err
	}
	ops, err := chain.DecodeArray[TaggedOperation, *TaggedOperation](buf)
	if err != nil {
		return err
	}
	o.ProposedOps = ops
	rp, err := chain.DecodeOptional[chain.Uint32, *chain.Uint32](buf)
	if err != nil {
		return err
	}
	o.ReviewPeriodSeconds = rp
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o ProposalCreate) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	expiration, err := o.ExpirationTime.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"fee_paying_account":"` + o.FeePayingAccount.String() + `"`)
	buf.WriteString(`,"expiration_time":`)
	buf.Write(expiration)
	buf.WriteString(`,"proposed_ops":`)
	if err := writeSetJSON(buf, o.ProposedOps); err != nil {
		return nil, err
	}
	if rp, ok, err := marshalOptionalJSON(o.ReviewPeriodSeconds); err != nil {
		return nil, err
	} else if ok {
		buf.WriteString(`,"review_period_seconds":`)
		buf.Write(rp)
	}
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}
