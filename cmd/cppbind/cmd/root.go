// Package cmd implements cppbind's cobra command tree, grounded on the
// teacher's cmd/dwscript/cmd package: a rootCmd carrying persistent flags,
// one subcommand per mode wired in its own file's init(), each RunE
// returning a wrapped error rather than calling os.Exit directly.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags, mirroring the teacher's own
	// version-stamping convention.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cppbind",
	Short: "C++ to D automatic binding generator",
	Long: `cppbind reads declarations out of a pre-parsed C++ translation unit and
translates them into D source, driven by a JSON configuration that
overrides per-declaration binding strategy (bound/target_module/
visibility/remove_prefix/strategy).

cppbind never parses C++ itself: it consumes a translation unit produced
by an external adapter (internal/cxxast) and concerns itself only with
the declaration walk, configuration, strategy resolution, and D
translation stages.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic output")
}
