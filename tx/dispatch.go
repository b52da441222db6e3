package tx

import (
	"bytes"

	"github.com/graphenego/gphtx/chain"
	"github.com/pkg/errors"
)

// ErrUndecodableOperation is returned by decodeBody for any operation
// tag registered in the chain registry but without a typed Go struct
// here; since operation bodies carry no self-length on the wire, such
// a tag can't be skipped over safely inside a larger transaction.
var ErrUndecodableOperation = errors.New("tx: operation has no registered decoder")

// decodeBody dispatches a decoded tag to its typed operation's
// DecodeBuffer. Extending coverage to another operation means adding
// one case here alongside its struct definition.
func decodeBody(tag chain.OperationTag, buf *bytes.Buffer) (Operation, error) {
	switch chain.NameOf(tag) {
	case "transfer":
		var op Transfer
		return &op, op.DecodeBuffer(buf)
	case "limit_order_create":
		var op LimitOrderCreate
		return &op, op.DecodeBuffer(buf)
	case "limit_order_cancel":
		var op LimitOrderCancel
		return &op, op.DecodeBuffer(buf)
	case "account_create":
		var op AccountCreate
		return &op, op.DecodeBuffer(buf)
	case "account_update":
		var op AccountUpdate
		return &op, op.DecodeBuffer(buf)
	case "account_transfer":
		var op AccountTransfer
		return &op, op.DecodeBuffer(buf)
	case "asset_create":
		var op AssetCreate
		return &op, op.DecodeBuffer(buf)
	case "asset_issue":
		var op AssetIssue
		return &op, op.DecodeBuffer(buf)
	case "asset_reserve":
		var op AssetReserve
		return &op, op.DecodeBuffer(buf)
	case "proposal_create":
		var op ProposalCreate
		return &op, op.DecodeBuffer(buf)
	case "vesting_balance_withdraw":
		var op VestingBalanceWithdraw
		return &op, op.DecodeBuffer(buf)
	default:
		return nil, errors.Wrapf(ErrUndecodableOperation, "tag %d (%s)", tag, chain.NameOf(tag))
	}
}
