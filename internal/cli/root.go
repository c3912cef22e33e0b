// Package cli implements the cobra-based CLI for confvet.
//
// The root command runs a scan of the current directory by default, so the
// tool can be invoked as a single-shot script with no arguments. The scan
// driver itself lives in scan.go; this file defines the root command,
// global flags, and exit-code handling.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsflippen-dev/framework-intelligence/internal/model"
)

// Global flag variables bound to cobra persistent flags on the root
// command, making them available to every subcommand.
var (
	// jsonOutput switches all output to a machine-readable JSON document.
	jsonOutput bool

	// verbose enables extra progress output on stderr.
	verbose bool
)

// Version, Commit, and Date are injected from the main package, where they
// are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// Running the bare root command performs a scan of the current directory —
// the primary use case is a pre-commit or CI hook with no arguments.
// The scan is also available explicitly as the "scan" subcommand.
func NewRootCommand() *cobra.Command {
	opts := &scanOptions{}

	rootCmd := &cobra.Command{
		Use:   "confvet",
		Short: "Validate project configuration against framework intelligence",
		Long: `confvet scans a project tree for configuration files (devcontainer
manifests, Tailwind CSS configs, ESLint configs) and reports structural
errors and deprecated patterns from the framework intelligence rule set.

The exit code is 0 when no errors are found and 1 otherwise; warnings
never affect the exit code.`,

		// Errors are formatted by Execute (text or JSON), so cobra must
		// not print usage or errors on its own.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCommand(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	addScanFlags(rootCmd, opts)
	rootCmd.AddCommand(NewScanCommand())

	return rootCmd
}

// Execute runs the root command and translates errors into OS exit codes.
// CLIError values carry their own codes; anything else exits with the
// general error code.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the format selected by --json.
// Errors go to stderr in both modes; stdout is reserved for scan output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			errObj["error"].(map[string]interface{})["detail"] = underlying.Error()
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// verboseLog prints a message to stderr only when verbose mode is enabled.
func verboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
