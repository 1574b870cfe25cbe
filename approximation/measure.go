package approximation

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/polyalg/polynomial"
	"github.com/tuneinsight/polyalg/utils/bignum"
)

// MeasurePrec is the precision at which the reference function is evaluated by Measure.
const MeasurePrec = 128

// ErrorStats summarizes the absolute error |p(x) - f(x)| over a sample grid.
type ErrorStats struct {
	Mean              float64
	Median            float64
	Max               float64
	StandardDeviation float64
}

func (s ErrorStats) String() string {
	return fmt.Sprintf("mean: %.3e, median: %.3e, max: %.3e, stddev: %.3e", s.Mean, s.Median, s.Max, s.StandardDeviation)
}

// Log2Precision returns -log2 of the maximum error.
func (s ErrorStats) Log2Precision() float64 {
	return -math.Log2(s.Max)
}

// Measure evaluates |p(x) - f(x)| on samples evenly spaced points of
// [interval.A, interval.B], bounds included, and reports statistics of the error.
// A panic of f is returned as polynomial.ErrInvalidArgument.
func Measure(p polynomial.Polynomial, f func(x *big.Float) (y *big.Float), interval Interval, samples int) (es ErrorStats, err error) {

	if err = interval.Validate(); err != nil {
		return es, fmt.Errorf("cannot Measure: %w", err)
	}

	if samples < 2 {
		return es, fmt.Errorf("cannot Measure: samples=%d must be at least 2: %w", samples, polynomial.ErrInvalidArgument)
	}

	step := (interval.B - interval.A) / float64(samples-1)

	values := make(stats.Float64Data, samples)

	if err = evaluate(func() {
		for i := range values {

			x := interval.A + float64(i)*step

			want, _ := f(bignum.NewFloat(x, MeasurePrec)).Float64()

			values[i] = math.Abs(p.Evaluate(x) - want)
		}
	}); err != nil {
		return es, fmt.Errorf("cannot Measure: %w", err)
	}

	if es.Mean, err = stats.Mean(values); err != nil {
		return es, fmt.Errorf("cannot Measure: %w", err)
	}

	if es.Median, err = stats.Median(values); err != nil {
		return es, fmt.Errorf("cannot Measure: %w", err)
	}

	if es.Max, err = stats.Max(values); err != nil {
		return es, fmt.Errorf("cannot Measure: %w", err)
	}

	if es.StandardDeviation, err = stats.StandardDeviation(values); err != nil {
		return es, fmt.Errorf("cannot Measure: %w", err)
	}

	return
}
