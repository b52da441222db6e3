package tx

import (
	"bytes"

	"github.com/graphenego/gphtx/chain"
)

// AccountAuth pairs an account id with its signing weight inside an
// Authority's account_auths set.
type AccountAuth struct {
	Account chain.ObjectID
	Weight  chain.Uint16
}

func (a AccountAuth) EncodeBuffer(buf *bytes.Buffer) error {
	if err := a.Account.EncodeBuffer(buf); err != nil {
		return err
	}
	return a.Weight.EncodeBuffer(buf)
}

func (a *AccountAuth) DecodeBuffer(buf *bytes.Buffer) error {
	if err := a.Account.DecodeBuffer(buf); err != nil {
		return err
	}
	return a.Weight.DecodeBuffer(buf)
}

func (a AccountAuth) MarshalJSON() ([]byte, error) {
	return []byte(`{"account":"` + a.Account.String() + `","weight":` + utoa64(uint64(a.Weight)) + `}`), nil
}

// KeyAuth pairs a public key with its signing weight inside an
// Authority's key_auths set.
type KeyAuth struct {
	Key    chain.PublicKey
	Weight chain.Uint16
}

func (a KeyAuth) EncodeBuffer(buf *bytes.Buffer) error {
	buf.Write(a.Key[:])
	return a.Weight.EncodeBuffer(buf)
}

func (a *KeyAuth) DecodeBuffer(buf *bytes.Buffer) error {
	if buf.Len() < 33 {
		return chain.ErrMalformedObjectID
	}
	copy(a.Key[:], buf.Next(33))
	return a.Weight.DecodeBuffer(buf)
}

func (a KeyAuth) MarshalJSON() ([]byte, error) {
	return []byte(`{"key":"` + a.Key.String() + `","weight":` + utoa64(uint64(a.Weight)) + `}`), nil
}

// Authority is a weighted-threshold multisig descriptor: it is
// satisfied when the summed weight of signing accounts/keys meets or
// exceeds WeightThreshold. Used for account owner/active authorities.
type Authority struct {
	WeightThreshold chain.Uint32
	AccountAuths    chain.Set[AccountAuth]
	KeyAuths        chain.Set[KeyAuth]
}

func (a Authority) EncodeBuffer(buf *bytes.Buffer) error {
	if err := a.WeightThreshold.EncodeBuffer(buf); err != nil {
		return err
	}
	if err := a.AccountAuths.EncodeBuffer(buf); err != nil {
		return err
	}
	return a.KeyAuths.EncodeBuffer(buf)
}

func (a *Authority) DecodeBuffer(buf *bytes.Buffer) error {
	if err := a.WeightThreshold.DecodeBuffer(buf); err != nil {
		return err
	}
	accounts, err := chain.DecodeSet[AccountAuth, *AccountAuth](buf)
	if err != nil {
		return err
	}
	a.AccountAuths = accounts
	keys, err := chain.DecodeSet[KeyAuth, *KeyAuth](buf)
	if err != nil {
		return err
	}
	a.KeyAuths = keys
	return nil
}

func (a Authority) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"weight_threshold":`)
	buf.WriteString(utoa64(uint64(a.WeightThreshold)))
	buf.WriteString(`,"account_auths":`)
	if err := writeSetJSON(buf, a.AccountAuths); err != nil {
		return nil, err
	}
	buf.WriteString(`,"key_auths":`)
	if err := writeSetJSON(buf, a.KeyAuths); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AccountOptions collects an account's memo key, voting delegate, and
// committee/witness slate size, matching the field set every account
// creation or update operation carries alongside its authorities.
type AccountOptions struct {
	MemoKey        chain.PublicKey
	VotingAccount  chain.ObjectID
	NumWitness     chain.Uint16
	NumCommittee   chain.Uint16
	Votes          chain.Set[chain.Uint32]
}

func (o AccountOptions) EncodeBuffer(buf *bytes.Buffer) error {
	buf.Write(o.MemoKey[:])
	if err := o.VotingAccount.EncodeBuffer(buf); err != nil {
		return err
	}
	if err := o.NumWitness.EncodeBuffer(buf); err != nil {
		return err
	}
	if err := o.NumCommittee.EncodeBuffer(buf); err != nil {
		return err
	}
	return o.Votes.EncodeBuffer(buf)
}

func (o *AccountOptions) DecodeBuffer(buf *bytes.Buffer) error {
	if buf.Len() < 33 {
		return chain.ErrMalformedObjectID
	}
	copy(o.MemoKey[:], buf.Next(33))
	if err := o.VotingAccount.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.NumWitness.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.NumCommittee.DecodeBuffer(buf); err != nil {
		return err
	}
	votes, err := chain.DecodeSet[chain.Uint32, *chain.Uint32](buf)
	if err != nil {
		return err
	}
	o.Votes = votes
	return nil
}

func (o AccountOptions) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"memo_key":"` + o.MemoKey.String() + `"`)
	buf.WriteString(`,"voting_account":"` + o.VotingAccount.String() + `"`)
	buf.WriteString(`,"num_witness":` + utoa64(uint64(o.NumWitness)))
	buf.WriteString(`,"num_committee":` + utoa64(uint64(o.NumCommittee)))
	buf.WriteString(`,"votes":`)
	if err := writeSetJSON(buf, o.Votes); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
