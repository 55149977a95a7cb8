package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/fst"
	"github.com/spf13/cobra"
)

var (
	outPath     string
	sameRank    bool
	labelStates bool
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render DICTFILE",
	Short: "Export a dictionary as a Graphviz dot graph",
	Long: `Render loads a tab-separated dictionary file, compiles it into a frozen
transducer and writes the graph in dot syntax, breadth first from the
start state. Pipe the output through Graphviz:

  fstdot render words.tsv | dot -Tpng -o words.png`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := mustLoadDict(args[0])
		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				fmt.Printf("Error creating output file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}
		if err := fst.ToDot(store, out, sameRank, labelStates); err != nil {
			fmt.Printf("Error writing graph: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "write dot output to a file instead of stdout")
	renderCmd.Flags().BoolVar(&sameRank, "rank", false, "pin states of one traversal level to the same rank")
	renderCmd.Flags().BoolVar(&labelStates, "labels", false, "label states with their addresses")
	rootCmd.AddCommand(renderCmd)
}
