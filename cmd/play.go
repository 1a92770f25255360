/*
Copyright © 2026 doughbyte
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive game",
	Long: `Starts the interactive cookie clicker for the selected profile.
Usage:
	> click times: 10
	> buy cursor
	> help`,
	Run: func(cmd *cobra.Command, args []string) {
		profile := currentProfile(cmd)

		app, err := openSession(profile)
		if err != nil {
			fmt.Printf("Failed to bootstrap game session: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()

		if err := RunTUI(app, profile); err != nil {
			fmt.Printf("Fatal TUI Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
