/*
Copyright © 2026 doughbyte
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe a profile's progress",
	Long: `Erases all progress for the selected profile: cookies, upgrades,
achievements and themes. The save file is overwritten with a fresh game.`,
	Run: func(cmd *cobra.Command, args []string) {
		profile := currentProfile(cmd)
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			fmt.Printf("This wipes ALL progress for profile %q. Type the profile name to confirm: ", profile)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != profile {
				fmt.Println("Aborted.")
				return
			}
		}

		app, err := openSession(profile)
		if err != nil {
			fmt.Printf("Failed to open game session: %v\n", err)
			os.Exit(1)
		}
		if err := app.Engine().Reset(); err != nil {
			fmt.Printf("Failed to reset: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Profile %q wiped.\n", profile)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
