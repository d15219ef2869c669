// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jusogo/jusogo/geocode"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive geocoding web server (local only)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		server := geocode.NewServer(newRegistry())

		fmt.Println("🗺️  Geocoding server starting...")
		fmt.Printf("📍 GET http://localhost%s/api/geocode?address=...\n", serveAddr)
		fmt.Printf("📍 GET http://localhost%s/api/reverse?lng=...&lat=...\n", serveAddr)
		fmt.Println("🔒 Local only - not exposed to internet")

		return server.Run(serveAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(
		&serveAddr,
		"addr",
		":8080",
		"Address to listen on",
	)
}
