package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oroddlokken/selca/internal/config"
	"github.com/oroddlokken/selca/internal/paths"
	"github.com/oroddlokken/selca/internal/platform"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and show what a capture would do",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		p, err := paths.Derive(cfg, time.Now())
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "Config:        %s\n", cfgPath)
		fmt.Fprintf(w, "Template:      %s\n", cfg.FName)
		fmt.Fprintf(w, "Local path:    %s\n", p.LocalPath)
		fmt.Fprintf(w, "Notify:        %t\n", cfg.Notify)
		fmt.Fprintf(w, "Open:          %t\n", cfg.Open)

		if cfg.SFTPEnabled() {
			fmt.Fprintf(w, "SFTP:          enabled\n")
			fmt.Fprintf(w, "Remote dir:    %s\n", p.RemoteDir)
			fmt.Fprintf(w, "Remote path:   %s\n", p.RemotePath)
			fmt.Fprintf(w, "Rsync target:  %s\n", p.RemoteTarget)
			if p.RemoteURL != "" {
				fmt.Fprintf(w, "URL:           %s\n", p.RemoteURL)
			} else {
				fmt.Fprintf(w, "URL:           (no baseurl configured)\n")
			}
		} else {
			fmt.Fprintf(w, "SFTP:          disabled\n")
		}

		fmt.Fprintf(w, "Tools:\n")
		status := platform.ToolStatus(cfg)
		for _, tool := range []string{"flameshot", "ssh", "rsync", "notify-send", "qdbus", "xdg-open"} {
			found, checked := status[tool]
			switch {
			case !checked:
				continue
			case found:
				fmt.Fprintf(w, "  %-12s found\n", tool)
			default:
				fmt.Fprintf(w, "  %-12s MISSING\n", tool)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
