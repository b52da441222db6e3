package tx

import (
	"bytes"

	"github.com/graphenego/gphtx/chain"
)

// AccountCreate registers a new named account with its owner/active
// authorities and account options.
type AccountCreate struct {
	Fee             Asset
	Registrar       chain.ObjectID
	Referrer        chain.ObjectID
	ReferrerPercent chain.Uint16
	Name            chain.StringValue
	Owner           Authority
	Active          Authority
	Options         AccountOptions
	Extensions      Extensions
}

func (AccountCreate) Tag() chain.OperationTag { return tagFor(AccountCreate{}) }

func (o AccountCreate) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{
		o.Fee, o.Registrar, o.Referrer, o.ReferrerPercent, o.Name, o.Owner, o.Active, o.Options, o.Extensions,
	} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *AccountCreate) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Registrar.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Referrer.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.ReferrerPercent.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Name.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Owner.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Active.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Options.DecodeBuffer(buf); err != nil {
		return err
	}
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o AccountCreate) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	name, err := o.Name.MarshalJSON()
	if err != nil {
		return nil, err
	}
	owner, err := o.Owner.MarshalJSON()
	if err != nil {
		return nil, err
	}
	active, err := o.Active.MarshalJSON()
	if err != nil {
		return nil, err
	}
	opts, err := o.Options.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"registrar":"` + o.Registrar.String() + `"`)
	buf.WriteString(`,"referrer":"` + o.Referrer.String() + `"`)
	buf.WriteString(`,"referrer_percent":` + utoa64(uint64(o.ReferrerPercent)))
	buf.WriteString(`,"name":`)
	buf.Write(name)
	buf.WriteString(`,"owner":`)
	buf.Write(owner)
	buf.WriteString(`,"active":`)
	buf.Write(active)
	buf.WriteString(`,"options":`)
	buf.Write(opts)
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}

// AccountUpdate modifies any subset of an existing account's
// authorities or options; fields left None are left unchanged on-chain.
type AccountUpdate struct {
	Fee        Asset
	Account    chain.ObjectID
	Owner      chain.Optional[Authority]
	Active     chain.Optional[Authority]
	NewOptions chain.Optional[AccountOptions]
	Extensions Extensions
}

func (AccountUpdate) Tag() chain.OperationTag { return tagFor(AccountUpdate{}) }

func (o AccountUpdate) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{
		o.Fee, o.Account, o.Owner, o.Active, o.NewOptions, o.Extensions,
	} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *AccountUpdate) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Account.DecodeBuffer(buf); err != nil {
		return err
	}
	owner, err := chain.DecodeOptional[Authority, *Authority](buf)
	if err != nil {
		return err
	}
	o.Owner = owner
	active, err := chain.DecodeOptional[Authority, *Authority](buf)
	if err != nil {
		return err
	}
	o.Active = active
	opts, err := chain.DecodeOptional[AccountOptions, *AccountOptions](buf)
	if err != nil {
		return err
	}
	o.NewOptions = opts
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o AccountUpdate) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"account":"` + o.Account.String() + `"`)
	if owner, ok, err := marshalOptionalJSON(o.Owner); err != nil {
		return nil, err
	} else if ok {
		buf.WriteString(`,"owner":`)
		buf.Write(owner)
	}
	if active, ok, err := marshalOptionalJSON(o.Active); err != nil {
		return nil, err
	} else if ok {
		buf.WriteString(`,"active":`)
		buf.Write(active)
	}
	if opts, ok, err := marshalOptionalJSON(o.NewOptions); err != nil {
		return nil, err
	} else if ok {
		buf.WriteString(`,"new_options":`)
		buf.Write(opts)
	}
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}

// AccountTransfer transfers ownership of AccountID to NewOwner,
// replacing its owner authority wholesale.
type AccountTransfer struct {
	Fee        Asset
	AccountID  chain.ObjectID
	NewOwner   Authority
	Extensions Extensions
}

func (AccountTransfer) Tag() chain.OperationTag { return tagFor(AccountTransfer{}) }

func (o AccountTransfer) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{o.Fee, o.AccountID, o.NewOwner, o.Extensions} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *AccountTransfer) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.AccountID.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.NewOwner.DecodeBuffer(buf); err != nil {
		return err
	}
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o AccountTransfer) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	owner, err := o.NewOwner.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"account_id":"` + o.AccountID.String() + `"`)
	buf.WriteString(`,"new_owner":`)
	buf.Write(owner)
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}
