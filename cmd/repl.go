package cmd

import (
	"log"
	"os"

	"github.com/sajjad-MoBe/LogKVStore/internal/repl"
	"github.com/sajjad-MoBe/LogKVStore/internal/storage"

	"github.com/spf13/cobra"
)

var replDataFile string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive session on the key-value store",
	Run:   runRepl,
}

func init() {
	replCmd.Flags().StringVarP(&replDataFile, "data", "d", storage.DefaultDataFile, "Path to the append-only log file")
}

func runRepl(cmd *cobra.Command, args []string) {
	engine, err := storage.Open(replDataFile)
	if err != nil {
		log.Fatalf("Failed to open engine: %v", err)
	}
	defer engine.Close()

	session := repl.New(engine, os.Stdin, os.Stdout, os.Stderr, repl.StdinIsTerminal())
	if err := session.Run(); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}
