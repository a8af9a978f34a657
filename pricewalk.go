package tradebook

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
)

// DefaultSigma is the default daily volatility of a PriceWalk.
const DefaultSigma = 0.1

// PriceWalk moves instrument prices randomly: each step multiplies the price by
// 1+N(0, Sigma) and rounds it to 2 decimals.
//
// A PriceWalk is not safe for concurrent use.
type PriceWalk struct {
	rng   *rand.Rand
	Sigma float64
}

// NewPriceWalk returns a walk with DefaultSigma whose randomness is fully
// determined by seed.
func NewPriceWalk(seed int64) *PriceWalk {
	return &PriceWalk{rng: rand.New(rand.NewSource(seed)), Sigma: DefaultSigma}
}

// Step applies one random move to the price of inst.
//
// If the move would make the price non-positive, the price is unchanged and an
// error wrapping ErrValidation is returned.
func (w *PriceWalk) Step(inst *Instrument) error {
	factor := decimal.NewFromFloat(1 + w.rng.NormFloat64()*w.Sigma)
	return inst.UpdatePrice(round(inst.Price().Mul(factor)))
}

// Steps applies n moves to each instrument, instrument after instrument for
// each step.
func (w *PriceWalk) Steps(n int, insts ...*Instrument) error {
	var errs error
	for i := 0; i < n; i++ {
		for _, inst := range insts {
			if err := w.Step(inst); err != nil {
				errs = errors.Join(errs, fmt.Errorf("step %d: %w", i+1, err))
			}
		}
	}
	return errs
}

// Leap returns a random number of days in [1, days].
func (w *PriceWalk) Leap(days int) int {
	return 1 + w.rng.Intn(days)
}
