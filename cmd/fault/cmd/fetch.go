package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/msto63/fault/boundary"
	"github.com/msto63/fault/core/log"
	"github.com/msto63/fault/dispatch"
	"github.com/msto63/fault/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch URL",
	Short: "Fetch a URL through the demo client",
	Long: `Fetch runs the demo client against the given URL inside a task
boundary. Any failure is forwarded to the dispatcher and presented with its
message; validation failures include the per-field breakdown.

The simulated endpoint recognizes the paths /ok, /offline, /private, /error
and /slow.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			printError("invalid configuration", err)
			return err
		}

		logger, err := buildLogger(cfg)
		if err != nil {
			printError("cannot build logger", err)
			return err
		}

		logger.Debug("fetch configured",
			log.String("url", args[0]),
			log.Int("retries", cfg.Fetch.Retries),
			log.Bool("verbose", verbose))

		dispatcher := dispatch.New(logger)
		b := boundary.New(dispatcher, logger)
		client := fetch.NewClient(fetch.WithLogger(logger))

		var result *fetch.Result
		f := b.Run(cmd.Context(), "fetch", func(ctx context.Context) error {
			res, err := fetch.Retry(ctx, cfg.Fetch.Retries, func(ctx context.Context) (*fetch.Result, error) {
				return client.FetchData(ctx, args[0])
			})
			if err != nil {
				return err
			}
			result = res
			return nil
		})

		if f != nil {
			// The failure has already been dispatched and logged; present the
			// message, not a raw identifier
			fmt.Fprintf(os.Stderr, "Error: %s\n", f.Message())
			if fieldErrs := f.FieldErrors(); len(fieldErrs) > 0 {
				fields := make([]string, 0, len(fieldErrs))
				for field := range fieldErrs {
					fields = append(fields, field)
				}
				sort.Strings(fields)
				for _, field := range fields {
					fmt.Fprintf(os.Stderr, "  %s: %s\n", field, fieldErrs[field])
				}
			}
			return f
		}

		fmt.Printf("Status: %s\n", result.Status)
		for k, v := range result.Data {
			fmt.Printf("  %s: %s\n", k, v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
