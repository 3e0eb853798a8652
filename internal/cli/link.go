package cli

import (
	"fmt"
	"os"

	"github.com/natlink-labs/natlink/internal/linker"
	"github.com/spf13/cobra"
)

var linkPlatforms []string

func init() {
	linkCmd.Flags().StringSliceVar(&linkPlatforms, "platforms", nil,
		"scope link command to certain platforms (comma-separated)")
	rootCmd.AddCommand(linkCmd)
}

var linkCmd = &cobra.Command{
	Use:   "link [packageName]",
	Short: "Link native dependencies into the app project",
	Long: `Link a native dependency into the project's platform builds: run its
prelink hook, register its native module with each platform, run its
postlink hook, and copy its assets.

Without a package name, every linkable dependency (plus the project's own
assets) is linked. The package name may carry an @version suffix, which is
stripped before lookup.

Example:
  natlink link
  natlink link native-maps
  natlink link native-maps@2.1.0 --platforms ios`,
	Args: cobra.MaximumNArgs(1),
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

		var name string
		if len(args) == 1 {
			name = args[0]
		}

		opts := linker.Options{Platforms: platformScope(linkPlatforms)}
		if err := linker.New(log).Link(cmd.Context(), cfg, name, opts); err != nil {
			return err
		}

		if name == "" {
			fmt.Println("Linked all native dependencies successfully.")
		} else {
			fmt.Printf("Linked %s successfully.\n", linker.NormalizePackageName(name))
		}
		return nil
	},
}
