package stark

import (
	"fmt"
	"math/big"
)

// PedersenHash hashes field elements into a single field element by adding
// the table point for every set bit of every input to the shift point.  Each
// input must be in [0, P).  The result is the accumulator's x coordinate.
func (ctx *Context) PedersenHash(inputs ...*big.Int) (*big.Int, error) {
	if len(inputs) > ctx.table.MaxInputs() {
		str := fmt.Sprintf("%d inputs exceeds the table capacity of %d",
			len(inputs), ctx.table.MaxInputs())
		return nil, makeError(ErrInvalidInput, str)
	}

	acc := ctx.table.points[0]
	for i, in := range inputs {
		var x FieldElement
		if in == nil || x.setBig(in) != nil {
			str := fmt.Sprintf("invalid input: %s", formatHashInput(in))
			return nil, makeError(ErrInvalidInput, str)
		}
		points := ctx.table.points[2+i*hashBitsPerInput : 2+(i+1)*hashBitsPerInput]
		d := x.bits()
		for j := 0; j < hashBitsPerInput; j++ {
			pt := &points[j]
			// guarded for every bit, set or not
			if acc.x.equal(&pt.x) {
				str := fmt.Sprintf("unhashable input %d: accumulator collides "+
					"with constant point at bit %d", i, j)
				return nil, makeError(ErrPointCollision, str)
			}
			if d[j/64]>>(j%64)&1 == 0 {
				continue
			}
			if err := acc.add(&acc, pt); err != nil {
				return nil, err
			}
		}
	}
	return acc.x.toBig(), nil
}

// PedersenHashHex hashes hex encoded inputs, with or without a 0x prefix, and
// returns the result as lower-case hex without prefix.
func (ctx *Context) PedersenHashHex(inputs ...string) (string, error) {
	vals := make([]*big.Int, len(inputs))
	for i, s := range inputs {
		v, ok := parseHexInt(s)
		if !ok {
			str := fmt.Sprintf("invalid input: %q is not hex", s)
			return "", makeError(ErrInvalidInput, str)
		}
		vals[i] = v
	}
	h, err := ctx.PedersenHash(vals...)
	if err != nil {
		return "", err
	}
	return bigToHex(h), nil
}

// HashMessage computes hash(hash(w1, w2), w3), the three element hash used
// for order and transfer messages.  Inputs are hex strings.
func (ctx *Context) HashMessage(w1, w2, w3 string) (string, error) {
	inner, err := ctx.PedersenHashHex(w1, w2)
	if err != nil {
		return "", err
	}
	return ctx.PedersenHashHex(inner, w3)
}

func formatHashInput(v *big.Int) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
