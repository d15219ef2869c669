// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jusogo/jusogo/geocode"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the supported geocoding providers",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, b, c := strings.Repeat("─", 8), strings.Repeat("─", 30), strings.Repeat("─", 48)
		fmt.Println("Supported providers:")
		fmt.Printf("╭─%-8s─┬─%-30s─┬─%-48s╮\n", a, b, c)
		fmt.Printf("│ %-8s │ %-30s │ %-48s│\n", "Name", "Service", "Credentials")
		fmt.Printf("├─%-8s─┼─%-30s─┼─%-48s┤\n", a, b, c)
		fmt.Printf("│ %-8s │ %-30s │ %-48s│\n",
			geocode.ProviderKakao, "Kakao Local API", geocode.EnvKakaoRESTAPIKey)
		fmt.Printf("│ %-8s │ %-30s │ %-48s│\n",
			geocode.ProviderNaver, "Naver Cloud Platform Maps API",
			geocode.EnvNaverKeyID+", "+geocode.EnvNaverKey)
		fmt.Printf("╰─%-8s─┴─%-30s─┴─%-48s╯\n", a, b, c)
		fmt.Println("Credentials are read from the environment, falling back to a local .env file.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
