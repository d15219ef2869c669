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

var reverseOptions = batch.ReverseOptions{}

var reverseCmd = &cobra.Command{
	Use:   "reverse <input> <output>",
	Short: "Fill address columns from coordinate columns",
	Long: `Reads a CSV or Parquet dataset, reverse geocodes the coordinate columns
row by row, and writes the dataset back with road_address and address
columns added. With details enabled, the administrative and structural
subfields are added as columns too; fields a provider does not supply
stay empty. Rows without usable coordinates are skipped.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := dataset.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}

		runner := batch.NewRunner(newRegistry())

		reverseOptions.Progress = true
		if err := runner.ReverseGeocode(cmd.Context(), table, reverseOptions); err != nil {
			return fmt.Errorf("reverse geocoding dataset: %w", err)
		}

		if err := dataset.Save(table, args[1]); err != nil {
			return fmt.Errorf("saving dataset: %w", err)
		}

		fmt.Printf("✅ Wrote %s rows to %s\n", utils.FormatInt(int64(table.Len())), args[1])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reverseCmd)
	reverseCmd.Flags().StringVar(
		&reverseOptions.Provider,
		"provider",
		"kakao",
		"Geocoding provider: kakao or naver",
	)
	reverseCmd.Flags().StringVar(
		&reverseOptions.LongitudeColumn,
		"longitude-column",
		"",
		"Input column holding the longitude",
	)
	reverseCmd.Flags().StringVar(
		&reverseOptions.LatitudeColumn,
		"latitude-column",
		"",
		"Input column holding the latitude",
	)
	reverseCmd.Flags().StringVar(
		&reverseOptions.RoadAddressColumn,
		"road-address-column",
		"road_address",
		"Output column for the road address",
	)
	reverseCmd.Flags().StringVar(
		&reverseOptions.AddressColumn,
		"address-column",
		"address",
		"Output column for the lot-number address",
	)
	reverseCmd.Flags().BoolVar(
		&reverseOptions.IncludeDetails,
		"details",
		true,
		"Add the administrative and structural detail columns",
	)
	reverseCmd.Flags().StringVar(
		&reverseOptions.DumpJSON,
		"dump-json",
		"",
		"Save each raw provider exchange to a JSON file. 'auto' derives a timestamped name",
	)
	reverseCmd.Flags().DurationVar(
		&reverseOptions.Delay,
		"delay",
		100*time.Millisecond,
		"Delay between provider calls",
	)
	_ = reverseCmd.MarkFlagRequired("longitude-column")
	_ = reverseCmd.MarkFlagRequired("latitude-column")
}
