package artifact

import "math"

// quantScale is the fixed-point scale applied to per-node price
// multipliers before they are stored as uint16: a multiplier of 1.54 is
// stored as 154.
const quantScale = 100

// QuantizePrice converts a floating-point price multiplier to its stored
// uint16 form, rounding half to even via math.RoundToEven rather than
// rounding half away from zero. Negative values are not representable.
func QuantizePrice(weight float64) uint16 {
	return uint16(math.RoundToEven(weight * quantScale))
}

// DequantizePrice is the inverse of QuantizePrice.
func DequantizePrice(stored uint16) float64 {
	return float64(stored) / quantScale
}
