/*
Copyright © 2026 doughbyte
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/doughbyte/crumb/internal/session"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage save profiles",
	Long: `Each profile keeps its own save under the configured saves directory,
so several players can share one machine without sharing a bakery.

Use subcommands 'list', 'create', 'use' and 'delete'.`,
	Run: func(cmd *cobra.Command, args []string) {
		listProfiles()
	},
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing profiles",
	Run: func(cmd *cobra.Command, args []string) {
		listProfiles()
	},
}

var profilesCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager := session.NewProfileManager(viper.GetString("saves_dir"))
		path, err := manager.Create(args[0])
		if err != nil {
			fmt.Printf("Failed to create profile: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Profile %q created at %s\n", args[0], path)
	},
}

var profilesUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Make a profile the default",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager := session.NewProfileManager(viper.GetString("saves_dir"))
		if !manager.Exists(args[0]) {
			if _, err := manager.Create(args[0]); err != nil {
				fmt.Printf("Failed to create profile: %v\n", err)
				os.Exit(1)
			}
		}

		viper.Set("profile", args[0])
		if err := viper.WriteConfig(); err != nil {
			// first run has no config file yet
			if err := viper.SafeWriteConfig(); err != nil {
				fmt.Printf("Failed to write config: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Printf("Default profile is now %q\n", args[0])
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a profile and its saves",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager := session.NewProfileManager(viper.GetString("saves_dir"))
		if err := manager.Remove(args[0]); err != nil {
			fmt.Printf("Failed to delete profile: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Profile %q deleted.\n", args[0])
	},
}

func listProfiles() {
	manager := session.NewProfileManager(viper.GetString("saves_dir"))
	profiles, err := manager.List()
	if err != nil {
		fmt.Printf("Failed to list profiles: %v\n", err)
		os.Exit(1)
	}
	if len(profiles) == 0 {
		fmt.Println("No profiles yet. 'crumb play' creates one.")
		return
	}

	current := viper.GetString("profile")
	for _, name := range profiles {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesCreateCmd)
	profilesCmd.AddCommand(profilesUseCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}
