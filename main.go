package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kbheight/app"
	"kbheight/config"
	"kbheight/inspect"
	"kbheight/log"
)

var (
	version = "0.3.0"
	rootCmd = &cobra.Command{
		Use:   "kbheight",
		Short: "kbheight - size on-screen keyboards so row and grid layouts match.",
		Long: "kbheight computes the standard keyboard height for a display, capped to a physical\n" +
			"maximum and a share of the screen in landscape, and the row gap that stretches a\n" +
			"row-based layout to that height. Without a subcommand it opens an interactive calculator.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			state := config.LoadState()
			return app.Run(ctx, cfg, state)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configPath, err := config.ConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n%s\n", configPath, configJson)
			fmt.Fprintf(out, "Log: %s\n", log.FileName())
			if log.DebugEnabled {
				fmt.Fprintf(out, "Debug log: enabled (%s=1)\n", log.DebugEnvVar)
			}
			if inspect.IsEnabled() {
				fmt.Fprintf(out, "Inspect: %s\n", inspect.GetInspectFile())
			}
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kbheight",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kbheight version %s\n", version)
		},
	}
)

func init() {
	rootCmd.AddCommand(newHeightCmd())
	rootCmd.AddCommand(newGapCmd())
	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
