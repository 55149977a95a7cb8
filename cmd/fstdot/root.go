package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/fst"
	"github.com/npillmayer/fst/dictfile"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fstdot",
	Short: "fstdot inspects finite-state transducer dictionaries",
	Long: `fstdot loads a tab-separated key/value dictionary into a transducer
and renders it as a Graphviz dot graph, or answers exact-match lookups
against it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func mustLoadDict(path string) *fst.MemStore[int64] {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error opening dictionary: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	store, err := dictfile.Load(filepath.Base(path), f)
	if err != nil {
		fmt.Printf("Error loading dictionary: %v\n", err)
		os.Exit(1)
	}
	return store
}
