package chain

import (
	"fmt"
	"reflect"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// OperationTag is the numeric operation-type discriminant emitted as a
// varint before every operation body on the wire.
type OperationTag uint8

// ErrUnknownOperation is returned when a name isn't in the registry at
// construction time. Decode-time unknown tags are not an error (see
// NameOf), they only ever occur for display.
var ErrUnknownOperation = errors.New("chain: unknown operation")

// operationNames is the fixed, contiguous 0..43 operation enumeration.
// Order is part of the wire contract; never resequence.
var operationNames = [...]string{
	"transfer",
	"limit_order_create",
	"limit_order_cancel",
	"call_order_update",
	"fill_order",
	"account_create",
	"account_update",
	"account_whitelist",
	"account_upgrade",
	"account_transfer",
	"asset_create",
	"asset_update",
	"asset_update_bitasset",
	"asset_update_feed_producers",
	"asset_issue",
	"asset_reserve",
	"asset_fund_fee_pool",
	"asset_settle",
	"asset_global_settle",
	"asset_publish_feed",
	"witness_create",
	"witness_update",
	"proposal_create",
	"proposal_update",
	"proposal_delete",
	"withdraw_permission_create",
	"withdraw_permission_update",
	"withdraw_permission_claim",
	"withdraw_permission_delete",
	"committee_member_create",
	"committee_member_update",
	"committee_member_update_global_parameters",
	"vesting_balance_create",
	"vesting_balance_withdraw",
	"worker_create",
	"custom",
	"assert",
	"balance_claim",
	"override_transfer",
	"transfer_to_blind",
	"blind_transfer",
	"transfer_from_blind",
	"asset_settle_cancel",
	"asset_claim_fees",
}

var (
	nameToTag = func() map[string]OperationTag {
		m := make(map[string]OperationTag, len(operationNames))
		for i, n := range operationNames {
			m[n] = OperationTag(i)
		}
		return m
	}()
)

// TagOf looks up the numeric tag for a registered operation name.
func TagOf(name string) (OperationTag, error) {
	tag, ok := nameToTag[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownOperation, "name %q", name)
	}
	return tag, nil
}

// NameOf renders a human-readable name for tag, for display purposes
// only. Unknown tags never error: they surface a diagnostic string, the
// same convention python-graphenelib's getOperationNameForId uses.
func NameOf(tag OperationTag) string {
	if int(tag) < len(operationNames) {
		return operationNames[tag]
	}
	return fmt.Sprintf("Unknown Operation ID %d", tag)
}

// NameOfValue derives an operation's registry name from its Go type
// name (e.g. *tx.LimitOrderCreate -> "limit_order_create"), using
// the same snake_case conversion tzgo's code generator leans on for
// identifier translation. It lets typed operation constructors assert
// their own registration rather than hardcoding a string that could
// drift from the type name.
func NameOfValue(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return strcase.ToSnake(t.Name())
}
