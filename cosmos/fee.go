package cosmos

import (
	"encoding/json"
	"strconv"

	"github.com/public-awesome/marketplace/types"
)

type feeMode int

const (
	feeAuto feeMode = iota
	feeGasPrice
	feeFixed
)

// Fee is the fee specification attached to an execute call: auto-estimate,
// a numeric gas price, or a fixed fee with an explicit gas limit.
type Fee struct {
	mode     feeMode
	gasPrice string
	amount   []types.Coin
	gasLimit uint64
}

// AutoFee defers fee estimation to the broadcaster.
func AutoFee() Fee { return Fee{mode: feeAuto} }

// GasPriceFee sets a numeric gas price such as "0.025ustars".
func GasPriceFee(gasPrice string) Fee { return Fee{mode: feeGasPrice, gasPrice: gasPrice} }

// FixedFee sets an exact fee amount and gas limit.
func FixedFee(gasLimit uint64, amount ...types.Coin) Fee {
	return Fee{mode: feeFixed, gasLimit: gasLimit, amount: amount}
}

func (f Fee) IsAuto() bool { return f.mode == feeAuto }

func (f Fee) MarshalJSON() ([]byte, error) {
	switch f.mode {
	case feeGasPrice:
		return json.Marshal(map[string]string{"gas_price": f.gasPrice})
	case feeFixed:
		return json.Marshal(map[string]interface{}{
			"amount": f.amount,
			"gas":    strconv.FormatUint(f.gasLimit, 10),
		})
	default:
		return json.Marshal("auto")
	}
}
