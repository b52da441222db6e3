package chain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedObjectID is returned when a textual object id is not
// three dot-separated non-negative integers, or fails a type check.
var ErrMalformedObjectID = errors.New("chain: malformed object id")

// ObjectType enumerates the fixed, wire-significant object type
// indices. Order and values are part of the wire contract and must
// never be renumbered.
type ObjectType uint8

const (
	ObjectTypeNull ObjectType = iota
	ObjectTypeBase
	ObjectTypeAccount
	ObjectTypeAsset
	ObjectTypeForceSettlement
	ObjectTypeCommitteeMember
	ObjectTypeWitness
	ObjectTypeLimitOrder
	ObjectTypeCallOrder
	ObjectTypeCustom
	ObjectTypeProposal
	ObjectTypeOperationHistory
	ObjectTypeWithdrawPermission
	ObjectTypeVestingBalance
	ObjectTypeWorker
	ObjectTypeBalance
)

var objectTypeNames = [...]string{
	"null", "base", "account", "asset", "force_settlement",
	"committee_member", "witness", "limit_order", "call_order",
	"custom", "proposal", "operation_history", "withdraw_permission",
	"vesting_balance", "worker", "balance",
}

func (t ObjectType) String() string {
	if int(t) < len(objectTypeNames) {
		return objectTypeNames[t]
	}
	return fmt.Sprintf("unknown_object_type_%d", t)
}

// ObjectID is a "space.type.instance" triplet naming an on-chain
// object. Only the instance is ever written to the wire, as a varint;
// space and type exist purely for the textual form and optional type
// verification at construction.
type ObjectID struct {
	Space    uint8
	Type     ObjectType
	Instance uint64
}

// ParseObjectID parses "S.T.I". When want is non-nil, T must equal
// *want or parsing fails with ErrMalformedObjectID.
func ParseObjectID(s string, want *ObjectType) (ObjectID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return ObjectID{}, errors.Wrapf(ErrMalformedObjectID, "%q: expected 3 dot-separated components", s)
	}
	space, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return ObjectID{}, errors.Wrapf(ErrMalformedObjectID, "%q: bad space", s)
	}
	typ, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return ObjectID{}, errors.Wrapf(ErrMalformedObjectID, "%q: bad type", s)
	}
	inst, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return ObjectID{}, errors.Wrapf(ErrMalformedObjectID, "%q: bad instance", s)
	}
	id := ObjectID{Space: uint8(space), Type: ObjectType(typ), Instance: inst}
	if want != nil && id.Type != *want {
		return ObjectID{}, errors.Wrapf(ErrMalformedObjectID, "%q: expected object type %s, got %s", s, *want, id.Type)
	}
	return id, nil
}

// MustParseObjectID parses s or panics; useful for static test fixtures.
func MustParseObjectID(s string) ObjectID {
	id, err := ParseObjectID(s, nil)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ObjectID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Space, uint8(id.Type), id.Instance)
}

func (id ObjectID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

func (id *ObjectID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseObjectID(s, nil)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// EncodeBuffer writes only the instance, as a varint.
func (id ObjectID) EncodeBuffer(buf *bytes.Buffer) error {
	return Varint(id.Instance).EncodeBuffer(buf)
}

// DecodeBuffer reads only the instance. Space and Type are left at
// their zero values since the wire form carries no information about
// them; callers that need a typed id should set Type after decoding
// using protocol context (e.g. the field being decoded).
func (id *ObjectID) DecodeBuffer(buf *bytes.Buffer) error {
	var v Varint
	if err := v.DecodeBuffer(buf); err != nil {
		return err
	}
	id.Instance = uint64(v)
	return nil
}
