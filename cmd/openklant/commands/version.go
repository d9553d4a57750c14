package commands

import "github.com/spf13/cobra"

// VersionInfo describes the build.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

func newVersionCommand(a *app, version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := VersionInfo{Version: version, Commit: commit, Built: date}

			return a.render(cmd, info, func() tableView {
				return propertyTable("Version", version, "Commit", commit, "Built", date)
			})
		},
	}
}
