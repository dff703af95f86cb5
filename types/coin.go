package types

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Coin is an amount of a single denomination.
type Coin struct {
	Amount Uint128 `json:"amount"`
	Denom  string  `json:"denom"`
}

func NewCoin(amount, denom string) (Coin, error) {
	a, err := NewUint128(amount)
	if err != nil {
		return Coin{}, err
	}
	if denom == "" {
		return Coin{}, errors.New("empty denom")
	}
	return Coin{Amount: a, Denom: denom}, nil
}

func (c Coin) String() string { return fmt.Sprintf("%s%s", c.Amount, c.Denom) }

func (c Coin) Validate() error {
	if err := c.Amount.Validate(); err != nil {
		return err
	}
	if c.Denom == "" {
		return errors.New("empty denom")
	}
	return nil
}

// ToDisplay converts a raw on-chain amount to display units, e.g. ustars with
// exponent 6 to stars.
func (c Coin) ToDisplay(exponent int32) decimal.Decimal {
	d, err := decimal.NewFromString(string(c.Amount))
	if err != nil {
		return decimal.Zero
	}
	return d.Shift(-exponent)
}

// FromDisplay converts a display amount into a raw amount string, truncating
// any fraction below one base unit.
func FromDisplay(amount decimal.Decimal, exponent int32) Uint128 {
	return Uint128(amount.Shift(exponent).Truncate(0).String())
}
