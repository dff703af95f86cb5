package types

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var uintPattern = regexp.MustCompile(`^[0-9]+$`)

// Uint128 is a non-negative arbitrary-precision integer carried as a decimal
// string on the wire. Contract amounts use strings so that clients which parse
// JSON numbers as floats cannot corrupt them.
type Uint128 string

func NewUint128(s string) (Uint128, error) {
	u := Uint128(s)
	if err := u.Validate(); err != nil {
		return "", err
	}
	return u, nil
}

func (u Uint128) String() string { return string(u) }

func (u Uint128) Validate() error {
	if !uintPattern.MatchString(string(u)) {
		return errors.Errorf("invalid uint128 string: %q", string(u))
	}
	return nil
}

// Cmp compares two amounts as integers, never as floats.
func (u Uint128) Cmp(other Uint128) int {
	a, err := decimal.NewFromString(string(u))
	if err != nil {
		panic(errors.Wrapf(err, "uint128 %q", string(u)))
	}
	b, err := decimal.NewFromString(string(other))
	if err != nil {
		panic(errors.Wrapf(err, "uint128 %q", string(other)))
	}
	return a.Cmp(b)
}

func (u Uint128) LT(other Uint128) bool { return u.Cmp(other) < 0 }
func (u Uint128) GT(other Uint128) bool { return u.Cmp(other) > 0 }

// Decimal is a fixed-point decimal with 18 fractional digits, string encoded.
type Decimal string

func (d Decimal) String() string { return string(d) }

func (d Decimal) Validate() error {
	if _, err := decimal.NewFromString(string(d)); err != nil {
		return errors.Wrapf(err, "invalid decimal string %q", string(d))
	}
	return nil
}
