package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/taigrr/polar/pkg/polar"
	"go.uber.org/zap"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	degrees   bool
	precision int
	verbose   bool

	newLogger func() (*zap.Logger, error)
	log       *zap.Logger
}

func newOptions() *options {
	return &options{
		newLogger: func() (*zap.Logger, error) { return zap.NewDevelopment() },
		log:       zap.NewNop(),
	}
}

// execute runs the command tree and flushes the logger whether or not
// the command failed.
func (o *options) execute(ctx context.Context, run func(context.Context, *cobra.Command) error) error {
	defer func() { _ = o.log.Sync() }()
	return run(ctx, o.rootCmd())
}

func newRootCmd() *cobra.Command {
	return newOptions().rootCmd()
}

func (o *options) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "polar",
		Short: "Polar vector calculator",
		Long: `polar - Polar vector calculator

Vectors are given as magnitude/angle pairs. Angles are radians
unless --degrees is set. Put negative numbers after "--".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.precision < 0 {
				return fmt.Errorf("invalid precision: %d", o.precision)
			}
			if !o.verbose {
				return nil
			}
			logger, err := o.newLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			o.log = logger
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&o.degrees, "degrees", "d", false, "Read and print angles in degrees")
	cmd.PersistentFlags().IntVarP(&o.precision, "precision", "p", 4, "Digits after the decimal point")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log operands and results")

	cmd.AddCommand(
		newBinaryCmd(o, "add", "Add two vectors", polar.Vector.Add),
		newBinaryCmd(o, "sub", "Subtract the second vector from the first", polar.Vector.Sub),
		newUnaryCmd(o, "recip", "Reverse a vector's direction", polar.Vector.Recip),
		newComponentsCmd(o),
		newAngleCmd(o),
		newSumCmd(o),
	)
	return cmd
}

func newBinaryCmd(opts *options, name, short string, op func(a, b polar.Vector) polar.Vector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " <m1> <a1> <m2> <a2>",
		Short: short,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := opts.parseVectors(args)
			if err != nil {
				return err
			}
			res := op(vs[0], vs[1])
			opts.log.Debug(name, zap.Stringer("a", vs[0]), zap.Stringer("b", vs[1]), zap.Stringer("result", res))
			opts.printVector(cmd.OutOrStdout(), "", res)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newUnaryCmd(opts *options, name, short string, op func(v polar.Vector) polar.Vector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " <m> <a>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := opts.parseVectors(args)
			if err != nil {
				return err
			}
			res := op(vs[0])
			opts.log.Debug(name, zap.Stringer("v", vs[0]), zap.Stringer("result", res))
			opts.printVector(cmd.OutOrStdout(), "", res)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newComponentsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components <m> <a>",
		Short: "Split a vector into its x and y components",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := opts.parseVectors(args)
			if err != nil {
				return err
			}
			x, y := vs[0].Components()
			opts.log.Debug("components", zap.Stringer("v", vs[0]), zap.Stringer("x", x), zap.Stringer("y", y))
			opts.printVector(cmd.OutOrStdout(), "x: ", x)
			opts.printVector(cmd.OutOrStdout(), "y: ", y)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newAngleCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "angle <x> <y>",
		Short: "Print the direction of a Cartesian point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseFloat("y", args[1])
			if err != nil {
				return err
			}
			a := polar.Angle(x, y)
			opts.log.Debug("angle", zap.Float64("x", x), zap.Float64("y", y), zap.Float64("radians", a))
			fmt.Fprintf(cmd.OutOrStdout(), "angle=%s\n", opts.formatAngle(a))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newSumCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum <m> <a> [<m> <a>...]",
		Short: "Add any number of vectors",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args)%2 != 0 {
				return fmt.Errorf("want magnitude/angle pairs, got %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := opts.parseVectors(args)
			if err != nil {
				return err
			}
			total := vs[0]
			for _, v := range vs[1:] {
				total.AddAssign(v)
			}
			opts.log.Debug("sum", zap.Int("count", len(vs)), zap.Stringer("result", total))
			opts.printVector(cmd.OutOrStdout(), "", total)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// parseVectors reads args as magnitude/angle pairs.
func (o *options) parseVectors(args []string) ([]polar.Vector, error) {
	vs := make([]polar.Vector, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		m, err := parseFloat("magnitude", args[i])
		if err != nil {
			return nil, err
		}
		a, err := parseFloat("angle", args[i+1])
		if err != nil {
			return nil, err
		}
		if o.degrees {
			vs = append(vs, polar.FromDegrees(m, a))
		} else {
			vs = append(vs, polar.FromRadians(m, a))
		}
	}
	return vs, nil
}

func parseFloat(what, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", what, s, err)
	}
	return f, nil
}

func (o *options) formatAngle(rad float64) string {
	if o.degrees {
		return strconv.FormatFloat(rad*(180/math.Pi), 'f', o.precision, 64) + "deg"
	}
	return strconv.FormatFloat(rad, 'f', o.precision, 64) + "rad"
}

func (o *options) printVector(w io.Writer, prefix string, v polar.Vector) {
	fmt.Fprintf(w, "%smagnitude=%s angle=%s\n",
		prefix, strconv.FormatFloat(v.Magnitude, 'f', o.precision, 64), o.formatAngle(v.Angle))
}
