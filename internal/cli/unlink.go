package cli

import (
	"fmt"
	"os"

	"github.com/natlink-labs/natlink/internal/linker"
	"github.com/spf13/cobra"
)

var unlinkPlatforms []string

func init() {
	unlinkCmd.Flags().StringSliceVar(&unlinkPlatforms, "platforms", nil,
		"scope unlink command to certain platforms (comma-separated)")
	rootCmd.AddCommand(unlinkCmd)
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink <packageName>",
	Short: "Unlink a native dependency from the app project",
	Long: `Reverse a previous link: run the dependency's preunlink hook, remove its
native module registration from each platform, run its postunlink hook,
and remove its copied assets.

Example:
  natlink unlink native-maps
  natlink unlink native-maps --platforms android`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		log := logger()
		defer func() { _ = log.Sync() }()

		cfg, err := linker.LoadConfig(cwd)
		if err != nil {
			return err
		}

		opts := linker.Options{Platforms: platformScope(unlinkPlatforms)}
		if err := linker.New(log).Unlink(cmd.Context(), cfg, args[0], opts); err != nil {
			return err
		}

		fmt.Printf("Unlinked %s successfully.\n", linker.NormalizePackageName(args[0]))
		return nil
	},
}
