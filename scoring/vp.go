// Package scoring converts IMP margins to victory points and back using the
// WBF continuous scale.
package scoring

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultMaxVP is the size of the standard victory point scale.
const DefaultMaxVP = 20

// MaxPlaces is the most decimal places a VP can be rounded to.
const MaxPlaces = 10

// MaxBoards is the longest match a scale can be built for.
const MaxBoards = 128

// MaxScale is the largest maxVP a scale can be built for.
const MaxScale = 100

// r is ((√5-1)/2)³ to six places.
const r = 0.236068

const maxRepairPasses = 5000

func blitz(boards int) float64 {
	return 15 * math.Sqrt(float64(boards))
}

// Round rounds value to places decimal digits, halves away from zero.
func Round(value float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(value*scale) / scale
}

// FromVP returns the IMP margin, truncated toward zero, that earns vp over
// the given number of boards.
func FromVP(vp float64, boards, maxVP int) (int, error) {
	if err := checkScale(boards, maxVP); err != nil {
		return 0, err
	}
	if math.IsNaN(vp) || vp < 0 || vp > float64(maxVP) {
		return 0, invalid("vp", vp, "must be within the scale")
	}

	return fromVP(vp, boards, maxVP), nil
}

func fromVP(vp float64, boards, maxVP int) int {
	mid := float64(maxVP) / 2
	if vp < mid {
		return -fromVP(float64(maxVP)-vp, boards, maxVP)
	}

	imps := blitz(boards) * math.Log(1-(1-r)*(vp/mid-1)) / math.Log(r)
	return int(imps)
}

// PureVP returns the unrepaired VP for an IMP margin, rounded to places.
func PureVP(imps, boards, maxVP, places int) (float64, error) {
	if err := checkScale(boards, maxVP); err != nil {
		return 0, err
	}
	if err := checkPlaces(places); err != nil {
		return 0, err
	}

	return pureVP(imps, boards, maxVP, places), nil
}

func pureVP(imps, boards, maxVP, places int) float64 {
	top := float64(maxVP)
	if b := blitz(boards); float64(imps) > b {
		return top
	} else if float64(imps) < -b {
		return 0
	}
	if imps < 0 {
		return Round(top-pureVP(-imps, boards, maxVP, places), places)
	}

	mid := top / 2
	vp := mid * (1 + (1-math.Pow(r, float64(imps)/blitz(boards)))/(1-r))
	return Round(math.Min(top, vp), places)
}

// VP returns the VP for an IMP margin with the rounded scale repaired so
// that it stays concave.
func VP(imps, boards, maxVP, places int) (float64, error) {
	if err := checkScale(boards, maxVP); err != nil {
		return 0, err
	}
	if err := checkPlaces(places); err != nil {
		return 0, err
	}

	if b := blitz(boards); float64(imps) > b {
		return float64(maxVP), nil
	} else if float64(imps) < -b {
		return 0, nil
	}

	if imps < 0 {
		vp, err := VP(-imps, boards, maxVP, places)
		if err != nil {
			return 0, err
		}
		return Round(float64(maxVP)-vp, places), nil
	}

	// repairs only ever raise a value and never past the top of the scale
	if pureVP(imps, boards, maxVP, places) >= float64(maxVP) {
		return float64(maxVP), nil
	}

	values := make([]float64, imps+2)
	for i := range values {
		values[i] = pureVP(i, boards, maxVP, places)
	}

	if imps >= 2 {
		if err := repairVP(values, places); err != nil {
			return 0, errors.Wrapf(err, "unable to repair %d imps over %d boards", imps, boards)
		}
	}

	return values[imps], nil
}

func repairVP(values []float64, places int) error {
	tolerance := math.Pow10(-(places + 1))
	unit := math.Pow10(-places)

	for pass := 0; pass < maxRepairPasses; pass++ {
		i := firstIndex(secondDifferences(values), func(d float64) bool { return d >= tolerance })
		if i < 0 {
			return nil
		}
		values[i-1] = Round(values[i-1]+unit, places)
	}

	return ErrNoConvergence
}

// secondDifferences returns the difference of differences of s, led by two
// zeros so that entry i describes s[i-2:i+1].
func secondDifferences[T int | float64](s []T) []T {
	d := make([]T, len(s))
	for i := 2; i < len(s); i++ {
		d[i] = (s[i] - s[i-1]) - (s[i-1] - s[i-2])
	}
	return d
}

func firstIndex[T any](s []T, match func(T) bool) int {
	for i, v := range s {
		if match(v) {
			return i
		}
	}
	return -1
}
