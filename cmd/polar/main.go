// polar - polar vector calculator
// Add, subtract, reverse and decompose 2D vectors given as magnitude/angle pairs.
//
// Angles are radians unless --degrees is set, in which case both input and
// output angles are in degrees. Negative arguments go after "--":
//
//	polar add 3 0 4 1.5707963
//	polar --degrees sub -- 5 -30 2 45
//	polar angle -- -3 4
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	err := newOptions().execute(context.Background(), func(ctx context.Context, cmd *cobra.Command) error {
		return fang.Execute(ctx, cmd)
	})
	if err != nil {
		os.Exit(1)
	}
}
