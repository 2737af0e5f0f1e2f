package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kvstore",
	Short: "A durable key-value store",
	Long: `A key-value store backed by an append-only log. Every write is
fsynced to the log before it is visible, and the in-memory index is
rebuilt from the log on startup.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("couldn't execute app,", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
}
