package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/natlink-labs/natlink/internal/branding"
	"github.com/natlink-labs/natlink/internal/config"
	"github.com/natlink-labs/natlink/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` links third-party native dependencies (and their
bundled assets) into the android/ and ios/ subprojects of a mobile app.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	return err
}

// logger builds the command logger; --verbose or the verbose config key
// turns on debug traces.
func logger() *zap.Logger {
	return logging.New(verbose || config.GetBool(config.KeyVerbose))
}

// platformScope resolves the --platforms flag, falling back to the
// default_platforms config key. Keys are lower-cased; empty means all.
func platformScope(flag []string) []string {
	if len(flag) == 0 {
		if def := config.Get(config.KeyDefaultPlatforms); def != "" {
			flag = strings.Split(def, ",")
		}
	}

	scope := make([]string, 0, len(flag))
	for _, key := range flag {
		key = strings.ToLower(strings.TrimSpace(key))
		if key != "" {
			scope = append(scope, key)
		}
	}
	return scope
}
