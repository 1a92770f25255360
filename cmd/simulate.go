/*
Copyright © 2026 doughbyte
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/doughbyte/crumb/internal/engine"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fast-forward the game by simulated play",
	Long: `Runs the game headless for a number of simulated seconds, optionally
clicking at a fixed rate, then saves the result to the profile. Useful for
balancing catalog numbers and for the impatient.`,
	Run: func(cmd *cobra.Command, args []string) {
		seconds, _ := cmd.Flags().GetInt("seconds")
		clicksPerSecond, _ := cmd.Flags().GetInt("clicks")
		if seconds <= 0 {
			fmt.Println("Error: --seconds must be positive")
			os.Exit(1)
		}

		app, err := openSession(currentProfile(cmd))
		if err != nil {
			fmt.Printf("Failed to bootstrap game session: %v\n", err)
			os.Exit(1)
		}
		eng := app.Engine()

		bar := progressbar.Default(int64(seconds), "Simulating")
		for i := 0; i < seconds; i++ {
			for c := 0; c < clicksPerSecond; c++ {
				eng.Click()
			}
			// buy greedily: cheapest affordable upgrade first
			for {
				cheapest := cheapestAffordable(eng)
				if cheapest == "" {
					break
				}
				eng.BuyUpgrade(cheapest)
			}
			eng.Tick(1)
			bar.Add(1)
		}

		if err := app.Close(); err != nil {
			fmt.Printf("Failed to save simulated progress: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\nSimulated %d seconds at %d clicks/s.\n", seconds, clicksPerSecond)
		fmt.Printf("Balance: %s cookies, baked all time: %s, production: %s/s\n",
			engine.FormatNumber(eng.Cookies()),
			engine.FormatNumber(eng.TotalCookies()),
			engine.FormatNumber(eng.CookiesPerSecond()))
	},
}

// cheapestAffordable returns the id of the cheapest upgrade the engine can
// pay for right now, or "" when nothing is in reach.
func cheapestAffordable(eng *engine.Engine) string {
	id := ""
	best := 0.0
	for _, u := range eng.Upgrades() {
		cost := u.Cost()
		if !eng.CanAfford(cost) {
			continue
		}
		if id == "" || cost < best {
			id = u.ID
			best = cost
		}
	}
	return id
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntP("seconds", "s", 300, "simulated seconds to run")
	simulateCmd.Flags().IntP("clicks", "k", 0, "manual clicks per simulated second")
}
