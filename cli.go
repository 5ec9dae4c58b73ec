package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/marcshearer/bridgescore/scoring"
)

func newRootCmd(c config) *cobra.Command {
	root := &cobra.Command{
		Use:   "bridgescore",
		Short: "Convert bridge IMP margins to victory points and keep league tables",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setDebug(c.Debug); err != nil {
				return errors.Wrap(err, "unable to initialize logger")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			syncLogger()
		},
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&c.Debug, "debug", c.Debug, "enable debugging")
	flags.StringVar(&c.Database, "database", c.Database, "[sqlite, boltdb]")
	flags.StringVar(&c.Filename, "filename", c.Filename, "filename for file based databases")
	flags.IntVar(&c.MaxVP, "max-vp", c.MaxVP, "victory points for a maximum win")
	flags.IntVar(&c.Places, "places", c.Places, "decimal places victory points are rounded to")
	flags.BoolVar(&c.Discrete, "discrete", c.Discrete, "score whole victory points")

	root.AddCommand(
		newVPCmd(&c),
		newFromVPCmd(&c),
		newScaleCmd(&c),
		newBotCmd(&c),
		newTransferCmd(&c),
	)

	return root
}

func parseArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%s must be a whole number, got %q", name, s)
	}
	return n, nil
}

func newVPCmd(c *config) *cobra.Command {
	var pure bool
	cmd := &cobra.Command{
		Use:     "vp IMPS BOARDS",
		Short:   "Convert an IMP margin to victory points",
		Example: "  bridgescore vp 23 16\n  bridgescore vp --discrete -- -23 16",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			imps, err := parseArg("imps", args[0])
			if err != nil {
				return err
			}
			boards, err := parseArg("boards", args[1])
			if err != nil {
				return err
			}

			s := c.settings()
			var vp float64
			if pure && !s.Discrete {
				vp, err = scoring.PureVP(imps, boards, s.MaxVP, s.Places)
			} else {
				vp, err = s.vp(imps, boards)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s-%s\n", s.format(vp), s.format(scoring.Round(float64(s.MaxVP)-vp, s.Places)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pure, "pure", false, "skip the concavity repair")

	return cmd
}

func newFromVPCmd(c *config) *cobra.Command {
	return &cobra.Command{
		Use:   "fromvp VP BOARDS",
		Short: "Convert victory points to the IMP margin that earns them",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Errorf("vp must be a number, got %q", args[0])
			}
			boards, err := parseArg("boards", args[1])
			if err != nil {
				return err
			}

			imps, err := scoring.FromVP(vp, boards, c.MaxVP)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), imps)
			return nil
		},
	}
}

func newScaleCmd(c *config) *cobra.Command {
	var continuous bool
	cmd := &cobra.Command{
		Use:   "scale BOARDS",
		Short: "Print the victory point scale for a match length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boards, err := parseArg("boards", args[0])
			if err != nil {
				return err
			}

			if continuous {
				s := c.settings()
				s.Discrete = false
				return writeContinuousScale(cmd.OutOrStdout(), boards, s)
			}
			return writeScale(cmd.OutOrStdout(), boards, c.MaxVP)
		},
	}
	cmd.Flags().BoolVar(&continuous, "continuous", false, "print every margin on the continuous scale")

	return cmd
}

func newBotCmd(c *config) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the slack league bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(c.Database, c.Filename)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.Errorf("%+v", err)
				}
			}()

			return runBot(*c, db)
		},
	}
}

func newTransferCmd(c *config) *cobra.Command {
	var to, output string
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Copy every league to another database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openDatabase(c.Database, c.Filename)
			if err != nil {
				return err
			}
			defer func() {
				if err := in.Close(); err != nil {
					logger.Errorf("%+v", err)
				}
			}()

			out, err := openDatabase(to, output)
			if err != nil {
				return err
			}
			defer func() {
				if err := out.Close(); err != nil {
					logger.Errorf("%+v", err)
				}
			}()

			return transferData(in, out)
		},
	}
	cmd.Flags().StringVar(&to, "to", "boltdb", "[sqlite, boltdb] database to transfer to")
	cmd.Flags().StringVar(&output, "output", "bridgescore.db", "filename for transfer to")

	return cmd
}
