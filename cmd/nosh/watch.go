// ABOUTME: CLI command for a live summary view.
// ABOUTME: Re-prints the date's summary whenever the journal changes.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/notify"
	"github.com/harperreed/nosh/internal/summaries"
	"github.com/spf13/cobra"
)

var watchDate string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a date's summary update live",
	Long: `Watch a date's macro summary and re-print it whenever entries or
nutritional tables change through this process's store (useful together
with the MCP server, which shares the store). Interrupt with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(watchDate)
		if err != nil {
			return err
		}

		bus := notify.NewBus()
		repo.SetBus(bus)

		watcher := summaries.New(repo, bus, date, summaries.WithErrorHandler(func(err error) {
			fmt.Fprintf(os.Stderr, "recompute failed: %v\n", err)
		}))
		defer watcher.Close()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		for {
			select {
			case result := <-watcher.Updates():
				printSummaries(date.Format(models.DateOnly), result)
			case <-stop:
				return nil
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(watchCmd)
}
