package cli

import (
	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "test FILE.toml",
		Short: "Test a graph read from a TOML file",
		Long: `Test whether the graph in FILE.toml is planar.

The file lists optional vertices and an array of edges:

  loops = false
  multi = true
  vertices = ["a", "b", "c"]

  [[edges]]
  from = "a"
  to = "b"`,
		Example: `  # Planarity only
  planarity test k5.toml

  # Witness edges of a non-planar graph
  planarity test k5.toml --kuratowski

  # Rotation system and faces of a planar graph
  planarity test cube.toml --embedding --faces`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			logger.Debug("graph loaded", "file", args[0], "vertices", g.VertexCount(), "edges", g.EdgeCount())

			return report(cmd.OutOrStdout(), logger, g, flags)
		},
	}
	flags.register(cmd)

	return cmd
}
