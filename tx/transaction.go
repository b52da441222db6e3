package tx

import (
	"bytes"
	"encoding/hex"

	"github.com/graphenego/gphtx/chain"
	"github.com/pkg/errors"
)

// SignedTransaction is the fixed field layout every Graphene-family
// transaction shares: ref_block_num, ref_block_prefix, expiration,
// operations, extensions, signatures. Any field other than Signatures
// is immutable once constructed; only the signer ever mutates
// Signatures, replacing the pre-sign void placeholder with a
// populated array.
type SignedTransaction struct {
	RefBlockNum    chain.Uint16
	RefBlockPrefix chain.Uint32
	Expiration     chain.PointInTime
	Operations     chain.Array[TaggedOperation]
	Extensions     Extensions
	Signatures     chain.Array[chain.Signature]
	signed         bool
}

// NewSignedTransaction builds an unsigned transaction. expiration must
// be "YYYY-MM-DDTHH:MM:SS" UTC.
func NewSignedTransaction(refBlockNum uint16, refBlockPrefix uint32, expiration string, ops []TaggedOperation) (*SignedTransaction, error) {
	exp, err := chain.ParsePointInTime(expiration)
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		RefBlockNum:    chain.Uint16(refBlockNum),
		RefBlockPrefix: chain.Uint32(refBlockPrefix),
		Expiration:     exp,
		Operations:     chain.Array[TaggedOperation](ops),
	}, nil
}

// encodeBody writes every field but Signatures: ref_block_num,
// ref_block_prefix, expiration, operations, extensions.
func (tx *SignedTransaction) encodeBody(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{tx.RefBlockNum, tx.RefBlockPrefix, tx.Expiration, tx.Operations, tx.Extensions} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

// Bytes is the transaction's full wire encoding: the body followed by
// Signatures — which, before signing, is the zero-byte void placeholder,
// and after signing is a length-prefixed array of 65-byte signatures.
func (tx *SignedTransaction) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := tx.encodeBody(buf); err != nil {
		return nil, err
	}
	if tx.signed {
		if err := tx.Signatures.EncodeBuffer(buf); err != nil {
			return nil, err
		}
	} else {
		if err := (chain.Void{}).EncodeBuffer(buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnsignedBytes is the wire encoding used to build the digest a
// signature is computed over: the body with the signatures field
// always emitted as the empty-void placeholder, regardless of whether
// Signatures has since been populated.
func (tx *SignedTransaction) UnsignedBytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := tx.encodeBody(buf); err != nil {
		return nil, err
	}
	if err := (chain.Void{}).EncodeBuffer(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Digest computes sha256(chain_id ‖ UnsignedBytes()), the message the
// signer actually signs, per spec §4.5.
func (tx *SignedTransaction) Digest(chainID string) ([]byte, error) {
	id, err := hex.DecodeString(chainID)
	if err != nil {
		return nil, errors.Wrap(chain.ErrBadChainDescriptor, "chain_id is not valid hex")
	}
	body, err := tx.UnsignedBytes()
	if err != nil {
		return nil, err
	}
	msg := make([]byte, 0, len(id)+len(body))
	msg = append(msg, id...)
	msg = append(msg, body...)
	return chain.Digest(msg), nil
}

// SetSignatures installs sigs as the transaction's signatures field,
// switching its wire encoding from the void placeholder to a
// length-prefixed signature array. Called by
// signer.MemorySigner.SignTransaction once all keys have produced a
// canonical signature.
func (tx *SignedTransaction) SetSignatures(sigs []chain.Signature) {
	tx.Signatures = chain.Array[chain.Signature](sigs)
	tx.signed = true
}

// MarshalJSON renders the declared field set; field order here is not
// the wire order and carries no consensus meaning (spec §4.2).
func (tx *SignedTransaction) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"ref_block_num":`)
	buf.WriteString(itoa64(int64(tx.RefBlockNum)))
	buf.WriteString(`,"ref_block_prefix":`)
	buf.WriteString(utoa64(uint64(tx.RefBlockPrefix)))
	buf.WriteString(`,"expiration":`)
	expJSON, _ := tx.Expiration.MarshalJSON()
	buf.Write(expJSON)
	buf.WriteString(`,"operations":`)
	if err := writeSetJSON(buf, tx.Operations); err != nil {
		return nil, err
	}
	buf.WriteString(`,"extensions":[]`)
	buf.WriteString(`,"signatures":[`)
	for i, s := range tx.Signatures {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"` + s.String() + `"`)
	}
	buf.WriteString(`]}`)
	return buf.Bytes(), nil
}
