package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/natlink-labs/natlink/internal/linker"
	"github.com/natlink-labs/natlink/internal/manifest"
	"github.com/natlink-labs/natlink/internal/platform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck is one named check with its outcome.
type doctorCheck struct {
	Name   string
	OK     bool
	Detail string
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project for linking problems",
	Long: `Verify that the current directory is a linkable project: package.json and
node_modules exist, natlink.yaml (if present) passes schema validation,
platform projects are detectable, and dependency versions parse as semver.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		checks := runDoctorChecks(cwd)

		failures := 0
		for _, c := range checks {
			icon := "OK"
			if !c.OK {
				icon = "!!"
				failures++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s", icon, c.Name)
			if c.Detail != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s)", c.Detail)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All checks passed.")
		return nil
	},
}

func runDoctorChecks(root string) []doctorCheck {
	var checks []doctorCheck

	pkgPath := filepath.Join(root, "package.json")
	_, pkgErr := os.Stat(pkgPath)
	checks = append(checks, doctorCheck{Name: "package.json present", OK: pkgErr == nil})
	if pkgErr != nil {
		return checks
	}

	_, nmErr := os.Stat(filepath.Join(root, "node_modules"))
	checks = append(checks, doctorCheck{
		Name:   "node_modules present",
		OK:     nmErr == nil,
		Detail: detailIf(nmErr != nil, "run your package manager's install first"),
	})

	if manifestPath := filepath.Join(root, "natlink.yaml"); fileExists(manifestPath) {
		result, err := manifest.ValidateFile(manifestPath)
		switch {
		case err != nil:
			checks = append(checks, doctorCheck{Name: "natlink.yaml valid", Detail: err.Error()})
		case !result.Valid:
			checks = append(checks, doctorCheck{
				Name:   "natlink.yaml valid",
				Detail: fmt.Sprintf("%d schema issue(s)", len(result.Issues)),
			})
		default:
			checks = append(checks, doctorCheck{Name: "natlink.yaml valid", OK: true})
		}
	}

	for _, key := range platform.Keys() {
		p, _ := platform.Get(key)
		_, ok := p.DetectProject(root)
		checks = append(checks, doctorCheck{
			Name:   p.DisplayName() + " project detected",
			OK:     ok,
			Detail: detailIf(!ok, "linking will skip this platform"),
		})
	}

	cfg, err := linker.LoadConfig(root)
	if err != nil {
		checks = append(checks, doctorCheck{Name: "project loads", Detail: err.Error()})
		return checks
	}
	checks = append(checks, doctorCheck{Name: "project loads", OK: true})

	names := make([]string, 0, len(cfg.Project.Dependencies))
	for name := range cfg.Project.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dep := cfg.Project.Dependencies[name]
		err := manifest.CheckVersion(dep.Version)
		checks = append(checks, doctorCheck{
			Name:   name + " version parses",
			OK:     err == nil,
			Detail: detailIf(err != nil, dep.Version),
		})
	}

	return checks
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func detailIf(cond bool, detail string) string {
	if cond {
		return detail
	}
	return ""
}
