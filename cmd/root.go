package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "movie-catalog",
	Short: "Movie catalog API",
	Long: `Movie catalog JSON API: accounts, movies, reviews and ratings.

	movie-catalog server
	movie-catalog migrate up
	movie-catalog migrate down --steps 1
`,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
