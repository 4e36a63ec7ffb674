package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// writeVersion prints the version line followed by whatever build details
// are known. Placeholder values from unstamped builds are left out.
func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "redirect-mapper version %s\n", versionStr)
	if commitStr != "" && commitStr != "none" {
		fmt.Fprintf(w, "  commit: %s\n", commitStr)
	}
	if dateStr != "" && dateStr != "unknown" {
		fmt.Fprintf(w, "  built:  %s\n", dateStr)
	}
	fmt.Fprintf(w, "  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
