package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the version, commit, and build date of the CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := struct {
				Version   string `json:"version"   yaml:"version"`
				Commit    string `json:"commit"    yaml:"commit"`
				BuildDate string `json:"buildDate" yaml:"buildDate"`
				GoVersion string `json:"goVersion" yaml:"goVersion"`
				Platform  string `json:"platform"  yaml:"platform"`
			}{
				Version:   version,
				Commit:    commit,
				BuildDate: date,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			structured, err := renderStructured(info)
			if err != nil {
				return err
			}

			if !structured {
				_, _ = fmt.Fprintf(os.Stdout, "tolstoy version %s (commit: %s, built: %s)\n", version, commit, date)
				_, _ = fmt.Fprintf(os.Stdout, "go version: %s, platform: %s\n", info.GoVersion, info.Platform)
			}

			return nil
		},
	}
}
