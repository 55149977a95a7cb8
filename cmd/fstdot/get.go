package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/fst"
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get DICTFILE KEY...",
	Short: "Look up keys in a dictionary",
	Long: `Get compiles the dictionary and runs an exact-match lookup for every
KEY, printing one line per key. Keys the transducer does not accept are
reported as such; if any key misses, fstdot exits with status 1.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := mustLoadDict(args[0])
		missed := false
		for _, key := range args[1:] {
			value, ok := fst.LookupString(store, key)
			if !ok {
				fmt.Printf("%s\t<not accepted>\n", key)
				missed = true
				continue
			}
			fmt.Printf("%s\t%d\n", key, value)
		}
		if missed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
