package scoring

import (
	"fmt"

	"github.com/pkg/errors"
)

// Boundaries returns the discrete scale's band limits: entry i is the
// largest IMP margin that scores maxVP/2 + i.
func Boundaries(boards, maxVP int) ([]int, error) {
	if err := checkScale(boards, maxVP); err != nil {
		return nil, err
	}

	mid := maxVP / 2
	bands := make([]int, 0, mid)
	for v := mid; v < maxVP; v++ {
		bands = append(bands, fromVP(float64(v)+0.5, boards, maxVP))
	}

	for pass := 0; pass < maxRepairPasses; pass++ {
		// the first winning band is at least as wide as the tie band
		if len(bands) > 1 && bands[0] > 0 && bands[1]-bands[0] < 2*bands[0]+1 {
			bands[0]--
			continue
		}

		i := firstIndex(secondDifferences(bands), func(d int) bool { return float64(d) < -0.1 })
		if i < 0 {
			return bands, nil
		}
		if bands[i-1] == 0 {
			return nil, invalid("boards", boards, fmt.Sprintf("too few for a %d point discrete scale", maxVP))
		}
		bands[i-1]--
	}

	return nil, errors.Wrapf(ErrNoConvergence, "unable to band %d boards", boards)
}

// DiscreteVP returns the whole-number VP an IMP margin earns on the
// discrete scale.
func DiscreteVP(imps, boards, maxVP int) (int, error) {
	bands, err := Boundaries(boards, maxVP)
	if err != nil {
		return 0, err
	}

	return discreteVP(bands, imps, maxVP), nil
}

func discreteVP(bands []int, imps, maxVP int) int {
	if imps < 0 {
		if imps < -bands[len(bands)-1] {
			return 0
		}
		return maxVP - discreteVP(bands, -imps, maxVP)
	}

	mid := maxVP / 2
	for i, b := range bands {
		if b >= imps {
			return mid + i
		}
	}
	return maxVP
}
