package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stock-watchlist",
	Short: "A CLI for managing the Stock Watchlist services",
	Long:  `Stock Watchlist converts pre-market financial news into a ranked, directional stock watchlist using LLM analysis...`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
