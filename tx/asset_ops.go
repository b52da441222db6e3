package tx

import (
	"bytes"

	"github.com/graphenego/gphtx/chain"
)

// Price is an exchange rate expressed as base/quote, the same shape
// Asset pairs use throughout the chain for core_exchange_rate fields.
type Price struct {
	Base  Asset
	Quote Asset
}

func (p Price) EncodeBuffer(buf *bytes.Buffer) error {
	if err := p.Base.EncodeBuffer(buf); err != nil {
		return err
	}
	return p.Quote.EncodeBuffer(buf)
}

func (p *Price) DecodeBuffer(buf *bytes.Buffer) error {
	if err := p.Base.DecodeBuffer(buf); err != nil {
		return err
	}
	return p.Quote.DecodeBuffer(buf)
}

func (p Price) MarshalJSON() ([]byte, error) {
	base, err := p.Base.MarshalJSON()
	if err != nil {
		return nil, err
	}
	quote, err := p.Quote.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"base":`)
	buf.Write(base)
	buf.WriteString(`,"quote":`)
	buf.Write(quote)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AssetOptions collects the market and permission parameters every
// asset carries regardless of whether it is a simple token or a
// market-pegged (bitasset) asset.
type AssetOptions struct {
	MaxSupply            chain.Int64
	MarketFeePercent     chain.Uint16
	MaxMarketFee         chain.Int64
	IssuerPermissions    chain.Uint16
	Flags                chain.Uint16
	CoreExchangeRate     Price
	WhitelistAuthorities chain.Set[chain.ObjectID]
	BlacklistAuthorities chain.Set[chain.ObjectID]
	WhitelistMarkets     chain.Set[chain.ObjectID]
	BlacklistMarkets     chain.Set[chain.ObjectID]
	Description          chain.StringValue
	Extensions           Extensions
}

func (o AssetOptions) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{
		o.MaxSupply, o.MarketFeePercent, o.MaxMarketFee, o.IssuerPermissions, o.Flags,
		o.CoreExchangeRate, o.WhitelistAuthorities, o.BlacklistAuthorities,
		o.WhitelistMarkets, o.BlacklistMarkets, o.Description, o.Extensions,
	} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *AssetOptions) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.MaxSupply.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.MarketFeePercent.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.MaxMarketFee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.IssuerPermissions.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Flags.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.CoreExchangeRate.DecodeBuffer(buf); err != nil {
		return err
	}
	var err error
	if o.WhitelistAuthorities, err = chain.DecodeSet[chain.ObjectID, *chain.ObjectID](buf); err != nil {
		return err
	}
	if o.BlacklistAuthorities, err = chain.DecodeSet[chain.ObjectID, *chain.ObjectID](buf); err != nil {
		return err
	}
	if o.WhitelistMarkets, err = chain.DecodeSet[chain.ObjectID, *chain.ObjectID](buf); err != nil {
		return err
	}
	if o.BlacklistMarkets, err = chain.DecodeSet[chain.ObjectID, *chain.ObjectID](buf); err != nil {
		return err
	}
	if err := o.Description.DecodeBuffer(buf); err != nil {
		return err
	}
	ext, err2 := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err2 != nil {
		return err2
	}
	o.Extensions = ext
	return nil
}

func (o AssetOptions) MarshalJSON() ([]byte, error) {
	cer, err := o.CoreExchangeRate.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"max_supply":`)
	buf.WriteString(itoa64(int64(o.MaxSupply)))
	buf.WriteString(`,"market_fee_percent":`)
	buf.WriteString(utoa64(uint64(o.MarketFeePercent)))
	buf.WriteString(`,"max_market_fee":`)
	buf.WriteString(itoa64(int64(o.MaxMarketFee)))
	buf.WriteString(`,"issuer_permissions":`)
	buf.WriteString(utoa64(uint64(o.IssuerPermissions)))
	buf.WriteString(`,"flags":`)
	buf.WriteString(utoa64(uint64(o.Flags)))
	buf.WriteString(`,"core_exchange_rate":`)
	buf.Write(cer)
	buf.WriteString(`,"whitelist_authorities":`)
	if err := writeSetJSON(buf, o.WhitelistAuthorities); err != nil {
		return nil, err
	}
	buf.WriteString(`,"blacklist_authorities":`)
	if err := writeSetJSON(buf, o.BlacklistAuthorities); err != nil {
		return nil, err
	}
	buf.WriteString(`,"whitelist_markets":`)
	if err := writeSetJSON(buf, o.WhitelistMarkets); err != nil {
		return nil, err
	}
	buf.WriteString(`,"blacklist_markets":`)
	if err := writeSetJSON(buf, o.BlacklistMarkets); err != nil {
		return nil, err
	}
	name, err := o.Description.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"description":`)
	buf.Write(name)
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}

// BitassetOptions configures the feed/settlement parameters of a
// market-pegged asset (a bitasset).
type BitassetOptions struct {
	FeedLifetimeSec               chain.Uint32
	MinimumFeeds                  chain.Uint8
	ForceSettlementDelaySec       chain.Uint32
	ForceSettlementOffsetPercent  chain.Uint16
	MaximumForceSettlementVolume  chain.Uint16
	ShortBackingAsset             chain.ObjectID
	Extensions                    Extensions
}

func (o BitassetOptions) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{
		o.FeedLifetimeSec, o.MinimumFeeds, o.ForceSettlementDelaySec,
		o.ForceSettlementOffsetPercent, o.MaximumForceSettlementVolume,
		o.ShortBackingAsset, o.Extensions,
	} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *BitassetOptions) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.FeedLifetimeSec.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.MinimumFeeds.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.ForceSettlementDelaySec.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.ForceSettlementOffsetPercent.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.MaximumForceSettlementVolume.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.ShortBackingAsset.DecodeBuffer(buf); err != nil {
		return err
	}
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o BitassetOptions) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"feed_lifetime_sec":`)
	buf.WriteString(utoa64(uint64(o.FeedLifetimeSec)))
	buf.WriteString(`,"minimum_feeds":`)
	buf.WriteString(utoa64(uint64(o.MinimumFeeds)))
	buf.WriteString(`,"force_settlement_delay_sec":`)
	buf.WriteString(utoa64(uint64(o.ForceSettlementDelaySec)))
	buf.WriteString(`,"force_settlement_offset_percent":`)
	buf.WriteString(utoa64(uint64(o.ForceSettlementOffsetPercent)))
	buf.WriteString(`,"maximum_force_settlement_volume":`)
	buf.WriteString(utoa64(uint64(o.MaximumForceSettlementVolume)))
	buf.WriteString(`,"short_backing_asset":"` + o.ShortBackingAsset.String() + `"`)
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}

// AssetCreate registers a new asset type. BitassetOpts is present only
// for market-pegged assets.
type AssetCreate struct {
	Fee                Asset
	Issuer             chain.ObjectID
	Symbol             chain.StringValue
	Precision          chain.Uint8
	CommonOptions      AssetOptions
	BitassetOpts       chain.Optional[BitassetOptions]
	IsPredictionMarket chain.Bool
	Extensions         Extensions
}

func (AssetCreate) Tag() chain.OperationTag { return tagFor(AssetCreate{}) }

func (o AssetCreate) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{
		o.Fee, o.Issuer, o.Symbol, o.Precision, o.CommonOptions,
		o.BitassetOpts, o.IsPredictionMarket, o.Extensions,
	} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *AssetCreate) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Issuer.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Symbol.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Precision.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.CommonOptions.DecodeBuffer(buf); err != nil {
		return err
	}
	bo, err := chain.DecodeOptional[BitassetOptions, *BitassetOptions](buf)
	if err != nil {
		return err
	}
	o.BitassetOpts = bo
	if err := o.IsPredictionMarket.DecodeBuffer(buf); err != nil {
		return err
	}
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o AssetCreate) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	symbol, err := o.Symbol.MarshalJSON()
	if err != nil {
		return nil, err
	}
	opts, err := o.CommonOptions.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"issuer":"` + o.Issuer.String() + `"`)
	buf.WriteString(`,"symbol":`)
	buf.Write(symbol)
	buf.WriteString(`,"precision":`)
	buf.WriteString(utoa64(uint64(o.Precision)))
	buf.WriteString(`,"common_options":`)
	buf.Write(opts)
	if bo, ok, err := marshalOptionalJSON(o.BitassetOpts); err != nil {
		return nil, err
	} else if ok {
		buf.WriteString(`,"bitasset_opts":`)
		buf.Write(bo)
	}
	predMarket, err := o.IsPredictionMarket.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"is_prediction_market":`)
	buf.Write(predMarket)
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}

// AssetIssue mints AssetToIssue to IssueToAccount, optionally carrying
// a memo explaining the issuance.
type AssetIssue struct {
	Fee             Asset
	Issuer          chain.ObjectID
	AssetToIssue    Asset
	IssueToAccount  chain.ObjectID
	Memo            chain.Optional[Memo]
	Extensions      Extensions
}

func (AssetIssue) Tag() chain.OperationTag { return tagFor(AssetIssue{}) }

func (o AssetIssue) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{
		o.Fee, o.Issuer, o.AssetToIssue, o.IssueToAccount, o.Memo, o.Extensions,
	} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *AssetIssue) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Issuer.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.AssetToIssue.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.IssueToAccount.DecodeBuffer(buf); err != nil {
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

func (o AssetIssue) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	asset, err := o.AssetToIssue.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"issuer":"` + o.Issuer.String() + `"`)
	buf.WriteString(`,"asset_to_issue":`)
	buf.Write(asset)
	buf.WriteString(`,"issue_to_account":"` + o.IssueToAccount.String() + `"`)
	if memo, ok, err := marshalOptionalJSON(o.Memo); err != nil {
		return nil, err
	} else if ok {
		buf.WriteString(`,"memo":`)
		buf.Write(memo)
	}
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}

// AssetReserve burns AmountToReserve from Payer's balance.
type AssetReserve struct {
	Fee              Asset
	Payer            chain.ObjectID
	AmountToReserve  Asset
	Extensions       Extensions
}

func (AssetReserve) Tag() chain.OperationTag { return tagFor(AssetReserve{}) }

func (o AssetReserve) EncodeBuffer(buf *bytes.Buffer) error {
	for _, enc := range []chain.Encoder{o.Fee, o.Payer, o.AmountToReserve, o.Extensions} {
		if err := enc.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

func (o *AssetReserve) DecodeBuffer(buf *bytes.Buffer) error {
	if err := o.Fee.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.Payer.DecodeBuffer(buf); err != nil {
		return err
	}
	if err := o.AmountToReserve.DecodeBuffer(buf); err != nil {
		return err
	}
	ext, err := chain.DecodeSet[chain.Uint8, *chain.Uint8](buf)
	if err != nil {
		return err
	}
	o.Extensions = ext
	return nil
}

func (o AssetReserve) MarshalJSON() ([]byte, error) {
	fee, err := o.Fee.MarshalJSON()
	if err != nil {
		return nil, err
	}
	amount, err := o.AmountToReserve.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`{"fee":`)
	buf.Write(fee)
	buf.WriteString(`,"payer":"` + o.Payer.String() + `"`)
	buf.WriteString(`,"amount_to_reserve":`)
	buf.Write(amount)
	buf.WriteString(`,"extensions":` + extensionsJSON + `}`)
	return buf.Bytes(), nil
}
