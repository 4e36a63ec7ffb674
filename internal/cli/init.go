package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsphpl/redirect-mapper/internal/config"
)

var forceFlag bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter .redirect-mapper.hcl",
	Long: `Write a documented .redirect-mapper.hcl with the default matching, input,
and output settings to dir (default: the current directory).

"redirect-mapper map" picks the file up from the working directory; flags
given on the command line still override it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot use %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil && !forceFlag {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(config.DefaultConfigHCL()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s (threshold %s, output %s)\n",
		configPath, formatThreshold(config.DefaultThreshold), config.Default().Output.Format)
	return nil
}
