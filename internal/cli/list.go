package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/natlink-labs/natlink/internal/linker"
	"github.com/natlink-labs/natlink/internal/platform"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a linkable dependency for display.
type listEntry struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Platforms map[string]string `json:"platforms"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List linkable native dependencies",
	Long:  `List the project's native dependencies and their per-platform link status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		cfg, err := linker.LoadConfig(cwd)
		if err != nil {
			return err
		}

		if len(cfg.Project.Dependencies) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No linkable native dependencies found.")
			return nil
		}

		entries, err := buildListEntries(cfg)
		if err != nil {
			return err
		}

		if listJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling list output: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		keys := platform.Keys()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		header := "NAME\tVERSION"
		for _, key := range keys {
			header += "\t" + platform.DisplayName(key)
		}
		fmt.Fprintln(w, header)
		for _, e := range entries {
			row := e.Name + "\t" + e.Version
			for _, key := range keys {
				row += "\t" + e.Platforms[key]
			}
			fmt.Fprintln(w, row)
		}
		return w.Flush()
	},
}

// buildListEntries resolves each dependency's per-platform link status.
func buildListEntries(cfg *linker.Config) ([]listEntry, error) {
	names := make([]string, 0, len(cfg.Project.Dependencies))
	for name := range cfg.Project.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	var entries []listEntry
	for _, name := range names {
		dep := cfg.Project.Dependencies[name]
		entry := listEntry{
			Name:      name,
			Version:   dep.Version,
			Platforms: make(map[string]string),
		}

		for _, key := range platform.Keys() {
			p, detected := cfg.Platforms[key]
			if !detected || !p.Supports(dep) || !dep.TargetsPlatform(key) {
				entry.Platforms[key] = "-"
				continue
			}
			linked, err := p.IsLinked(cfg.Projects[key], dep)
			if err != nil {
				return nil, err
			}
			if linked {
				entry.Platforms[key] = "linked"
			} else {
				entry.Platforms[key] = "not linked"
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
