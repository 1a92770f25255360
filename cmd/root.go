/*
Copyright © 2026 doughbyte
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/doughbyte/crumb/internal/catalog"
	"github.com/doughbyte/crumb/internal/persistence"
	"github.com/doughbyte/crumb/internal/session"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crumb",
	Short: "A cookie clicker for your terminal",
	Long: `crumb is an incremental cookie game played entirely in the terminal.

Click the big cookie, buy upgrades that bake for you, chase achievements
and unlock cosmetic themes. Progress is saved per profile, so everyone
at the keyboard can ruin their own productivity separately.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.crumb.yaml)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "save profile to play (default from config, else 'default')")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".crumb")
	}

	if home, err := os.UserHomeDir(); err == nil {
		viper.SetDefault("saves_dir", filepath.Join(home, ".crumb", "saves"))
	}
	viper.SetDefault("profile", "default")
	viper.SetDefault("autosave_seconds", 30)
	viper.SetDefault("tick_millis", 100)
	viper.SetDefault("catalog_dir", "")

	viper.SetEnvPrefix("crumb")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// currentProfile resolves the profile to play: the --profile flag wins, then
// the config file, then "default".
func currentProfile(cmd *cobra.Command) string {
	if flag, _ := cmd.Flags().GetString("profile"); flag != "" {
		return flag
	}
	return viper.GetString("profile")
}

// loadCatalog reads the game tables from the configured catalog directory,
// falling back to the builtin tables.
func loadCatalog() (*catalog.Catalog, error) {
	var dirs []string
	if dir := viper.GetString("catalog_dir"); dir != "" {
		dirs = append(dirs, dir)
	}
	return catalog.NewLoader(dirs).Load()
}

// openSession bootstraps a full game session for the given profile.
func openSession(profile string) (*session.Session, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	manager := session.NewProfileManager(viper.GetString("saves_dir"))
	dir, err := manager.Create(profile)
	if err != nil {
		return nil, err
	}
	store, err := persistence.NewFileStore(dir)
	if err != nil {
		return nil, err
	}

	s, err := session.New(cat, store, session.Options{
		AutosaveEvery: time.Duration(viper.GetInt("autosave_seconds")) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	if warn := s.LoadWarning(); warn != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", warn)
	}
	return s, nil
}
