package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/marcshearer/bridgescore/scoring"
)

// writeScale writes the discrete band table for a match length.
func writeScale(out io.Writer, boards, maxVP int) error {
	bands, err := scoring.Boundaries(boards, maxVP)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IMPs\tVPs")
	from := 0
	for i, b := range bands {
		vp := maxVP/2 + i
		if b < from {
			continue
		}
		fmt.Fprintf(w, "%s\t%d-%d\n", impRange(from, b), vp, maxVP-vp)
		from = b + 1
	}
	fmt.Fprintf(w, "%d+\t%d-0\n", from, maxVP)

	return errors.Wrap(w.Flush(), "unable to write scale")
}

func impRange(from, to int) string {
	if from == to {
		return fmt.Sprint(from)
	}
	return fmt.Sprintf("%d-%d", from, to)
}

// writeContinuousScale writes the VP for every margin up to the top of the
// scale.
func writeContinuousScale(out io.Writer, boards int, s settings) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IMPs\tVPs")
	for imps := 0; ; imps++ {
		vp, err := scoring.VP(imps, boards, s.MaxVP, s.Places)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%d\t%s-%s\n", imps, s.format(vp), s.format(scoring.Round(float64(s.MaxVP)-vp, s.Places)))
		if vp >= float64(s.MaxVP) {
			break
		}
	}

	return errors.Wrap(w.Flush(), "unable to write scale")
}
