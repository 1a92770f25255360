/*
Copyright © 2026 doughbyte
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the profile's progression without playing",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openSession(currentProfile(cmd))
		if err != nil {
			fmt.Printf("Failed to open game session: %v\n", err)
			os.Exit(1)
		}

		out, err := app.Execute("stats")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
