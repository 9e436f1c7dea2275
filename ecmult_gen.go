package stark

import (
	"sync"
)

const (
	// EcmultGenWindowSize is the width in bits of each generator table window
	EcmultGenWindowSize = 4
	// EcmultGenTableSize is the number of multiples stored per window
	EcmultGenTableSize = 1 << EcmultGenWindowSize
	// EcmultGenWindows covers the 252 bits of a reduced scalar
	EcmultGenWindows = 252 / EcmultGenWindowSize
)

// EcmultGenContext holds precomputed multiples of the generator:
// prec[i][j] = j * 16^i * G, with prec[i][0] left at infinity
type EcmultGenContext struct {
	prec        [EcmultGenWindows][EcmultGenTableSize]GroupElementAffine
	initialized bool
}

var (
	// Global context for generator multiplication (initialized once)
	globalGenContext *EcmultGenContext
	genContextOnce   sync.Once
)

// initGenContext fills the window table
func (ctx *EcmultGenContext) initGenContext() {
	var base GroupElementJacobian
	base.setGE(&Generator)

	for i := 0; i < EcmultGenWindows; i++ {
		var baseAff GroupElementAffine
		baseAff.setGEJ(&base)

		ctx.prec[i][0].setInfinity()
		ctx.prec[i][1] = baseAff

		acc := base
		for j := 2; j < EcmultGenTableSize; j++ {
			acc.addGE(&acc, &baseAff)
			ctx.prec[i][j].setGEJ(&acc)
		}

		// next window base = 16 * base
		for k := 0; k < EcmultGenWindowSize; k++ {
			base.double(&base)
		}
	}

	ctx.initialized = true
}

// getGlobalGenContext returns the global precomputed context
func getGlobalGenContext() *EcmultGenContext {
	genContextOnce.Do(func() {
		globalGenContext = &EcmultGenContext{}
		globalGenContext.initGenContext()
	})
	return globalGenContext
}

// NewEcmultGenContext creates a new generator multiplication context
func NewEcmultGenContext() *EcmultGenContext {
	ctx := &EcmultGenContext{}
	ctx.initGenContext()
	return ctx
}

// ecmultGen computes r = n * G with one table lookup per 4-bit window
func (ctx *EcmultGenContext) ecmultGen(r *GroupElementJacobian, n *Scalar) {
	if !ctx.initialized {
		panic("ecmult_gen context not initialized")
	}

	r.setInfinity()
	if n.isZero() {
		return
	}
	if n.isOne() {
		r.setGE(&Generator)
		return
	}

	for i := 0; i < EcmultGenWindows; i++ {
		bits := n.getBits(uint(i*EcmultGenWindowSize), EcmultGenWindowSize)
		if bits == 0 {
			continue
		}
		r.addGE(r, &ctx.prec[i][bits])
	}
}

// EcmultGen is the public interface for generator multiplication
func EcmultGen(r *GroupElementJacobian, n *Scalar) {
	ctx := getGlobalGenContext()
	ctx.ecmultGen(r, n)
}
