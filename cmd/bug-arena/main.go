// Package main is the entry point for the bug-arena command line game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	storeFlag      string
	redisAddrFlag  string
	sqlitePathFlag string
	playerFlag     string
	logLevelFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "bug-arena",
	Short: "Catch bugs and battle trainers",
	Long: `bug-arena is a collection and battle game. Search for bugs, catch them,
level them up and fight ever stronger trainers until all ten badges are won.

Settings come from BUG_ARENA_* environment variables; flags override them.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&storeFlag, "store", "", "storage backend: memory, redis or sqlite")
	flags.StringVar(&redisAddrFlag, "redis-addr", "", "redis address (host:port)")
	flags.StringVar(&sqlitePathFlag, "sqlite-path", "", "sqlite database file")
	flags.StringVar(&playerFlag, "player", "", "player ID; empty plays an anonymous in-memory game")
	flags.StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(resetCmd)
}
