package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Balances come over the wire as raw integer strings in the token's
// smallest unit. These helpers convert them to exact decimal amounts
// using the contract's declared precision; float64 would lose
// precision on 18-decimal tokens.

// AmountDecimal converts a raw balance string and a decimals count to
// a token amount, e.g. ("1500000000000000000", 18) -> 1.5.
func AmountDecimal(balance string, decimals uint32) (decimal.Decimal, error) {
	raw, err := decimal.NewFromString(balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid balance %q: %w", balance, err)
	}
	return raw.Shift(-int32(decimals)), nil
}

// AmountDecimal returns the item's balance as a token amount.
func (b BalanceItem) AmountDecimal() (decimal.Decimal, error) {
	return AmountDecimal(b.Balance, b.ContractDecimals)
}

// QuoteDecimal returns the item's fiat quote as a decimal.
func (b BalanceItem) QuoteDecimal() decimal.Decimal {
	return decimal.NewFromFloat(b.Quote)
}

// AmountDecimal returns the item's balance as a token amount.
func (h HistoricalBalanceItem) AmountDecimal() (decimal.Decimal, error) {
	return AmountDecimal(h.Balance, h.ContractDecimals)
}

// AmountDecimal returns the item's balance as a token amount.
func (m MultiChainBalanceItem) AmountDecimal() (decimal.Decimal, error) {
	return AmountDecimal(m.Balance, m.ContractDecimals)
}
