package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-planar/builder"
)

func newFixtureCmd() *cobra.Command {
	var (
		flags reportFlags
		n, m  int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "fixture NAME",
		Short: "Test a generated graph",
		Long: `Test a generated graph. NAME is one of:

  complete (n), bipartite (n, m), cycle (n), path (n), star (n), wheel (n),
  grid (n rows, m columns), petersen, random (n vertices, m percent density),
  tetrahedron, cube, octahedron, dodecahedron, icosahedron`,
		Example: `  planarity fixture complete --n 5 --kuratowski
  planarity fixture grid --n 3 --m 4 --faces
  planarity fixture random --n 40 --m 10 --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, err := builder.Fixture(args[0], n, m, builder.WithSeed(seed))
			if err != nil {
				return fmt.Errorf("fixture %s: %w", args[0], err)
			}
			logger.Debug("fixture built", "name", args[0], "vertices", g.VertexCount(), "edges", g.EdgeCount())

			return report(cmd.OutOrStdout(), logger, g, flags)
		},
	}
	cmd.Flags().IntVar(&n, "n", 5, "first size parameter")
	cmd.Flags().IntVar(&m, "m", 5, "second size parameter")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	flags.register(cmd)

	return cmd
}
