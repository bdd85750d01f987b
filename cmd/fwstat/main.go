// Fwstat is a set of offline analysis tools used during embedded
// firmware development.
//
// It summarizes linker section output into ROM/RAM usage reports, reports
// symbol sizes, converts textual memory dumps back into raw bytes, and
// decodes GPIO register snapshots into human-readable pin descriptions.
// Every command is a filter: it reads line-oriented text from standard
// input, or from files given as arguments concatenated in order, and
// writes its report to standard output.
//
// Usage:
//
//	fwstat [command] [files...]
//
// See 'fwstat --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/embtools/fwstat/internal/logging"
	"github.com/embtools/fwstat/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	return rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "fwstat",
	Short: "Offline firmware analysis tools",
	Long: `A set of offline analysis tools for embedded firmware development.

Each command reads line-oriented text from standard input (or from files
given as arguments, concatenated in order) and writes a derived report to
standard output.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fwstat %s (commit: %s)\n", version.Version, version.Commit)
	},
}
