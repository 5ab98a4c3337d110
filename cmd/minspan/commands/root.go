package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/minspan/internal/prompt"
	"github.com/katalvlaran/minspan/internal/render"
	"github.com/katalvlaran/minspan/mst"
)

var (
	method string
	start  int
)

var rootCmd = &cobra.Command{
	Use:   "minspan",
	Short: "Interactive minimum spanning tree calculator",
	Long: `minspan reads a weighted, undirected graph from the terminal and
computes its minimum spanning tree with Kruskal's or Prim's algorithm.

Enter the vertex count, the edge count, then one "u v w" triple per edge;
invalid entries are rejected on the spot and asked again.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if method != mst.MethodKruskal && method != mst.MethodPrim {
			return fmt.Errorf("%w: %q (use %s or %s)",
				mst.ErrUnknownMethod, method, mst.MethodKruskal, mst.MethodPrim)
		}

		session := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
		g, err := session.ReadGraph()
		if err != nil {
			return err
		}

		// Reject a bad Prim root before computing, with the vertex range in
		// hand; the algorithm would catch it too, but here we can say why.
		if method == mst.MethodPrim && !g.HasVertex(start) {
			return fmt.Errorf("%w: %d (valid ids are 0..%d)",
				mst.ErrStartOutOfRange, start, g.VertexCount()-1)
		}

		edges, total, err := mst.Compute(g, mst.Options{Method: method, Root: start})
		if errors.Is(err, mst.ErrDisconnected) {
			// Not fatal: report and finish cleanly.
			render.Disconnected(cmd.OutOrStdout())
			return nil
		}
		if err != nil {
			return err
		}

		render.MST(cmd.OutOrStdout(), edges, total)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	bindFlags(rootCmd.Flags())
}

func bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&method, "method", mst.MethodKruskal, "MST algorithm: kruskal or prim")
	fs.IntVar(&start, "start", 0, "start vertex for Prim's algorithm")
}
