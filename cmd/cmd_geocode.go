// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jusogo/jusogo/batch"
	"github.com/jusogo/jusogo/dataset"
	"github.com/jusogo/jusogo/utils"
)

var geocodeOptions = batch.GeocodeOptions{}

var geocodeCmd = &cobra.Command{
	Use:   "geocode <input> <output>",
	Short: "Fill coordinate columns from an address column",
	Long: `Reads a CSV or Parquet dataset, geocodes the address column row by row,
and writes the dataset back with longitude and latitude columns added.
Rows that fail or do not match keep empty cells; row order is preserved.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := dataset.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}

		runner := batch.NewRunner(newRegistry())

		geocodeOptions.Progress = true
		if err := runner.Geocode(cmd.Context(), table, geocodeOptions); err != nil {
			return fmt.Errorf("geocoding dataset: %w", err)
		}

		if err := dataset.Save(table, args[1]); err != nil {
			return fmt.Errorf("saving dataset: %w", err)
		}

		fmt.Printf("✅ Wrote %s rows to %s\n", utils.FormatInt(int64(table.Len())), args[1])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
	geocodeCmd.Flags().StringVar(
		&geocodeOptions.Provider,
		"provider",
		"kakao",
		"Geocoding provider: kakao or naver",
	)
	geocodeCmd.Flags().StringVar(
		&geocodeOptions.AddressColumn,
		"address-column",
		"",
		"Input column holding the address text",
	)
	geocodeCmd.Flags().StringVar(
		&geocodeOptions.LongitudeColumn,
		"longitude-column",
		"longitude",
		"Output column for the longitude",
	)
	geocodeCmd.Flags().StringVar(
		&geocodeOptions.LatitudeColumn,
		"latitude-column",
		"latitude",
		"Output column for the latitude",
	)
	geocodeCmd.Flags().DurationVar(
		&geocodeOptions.Delay,
		"delay",
		100*time.Millisecond,
		"Delay between provider calls",
	)
	geocodeCmd.Flags().IntVar(
		&geocodeOptions.H3Resolution,
		"h3-res",
		-1,
		"H3 resolution for an added h3_cell column. Negative disables it",
	)
	_ = geocodeCmd.MarkFlagRequired("address-column")
}
