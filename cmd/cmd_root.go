// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jusogo/jusogo/geocode"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "jusogo",
	Short: "Korean address geocoding over Kakao and Naver",
	Long: `
jusogo converts Korean addresses to coordinates and back using the Kakao
Local API or the Naver Cloud Platform Maps API, one call per dataset row,
with every provider normalized to the same output columns.
`,
}

var clientOptions = &geocode.ClientOptions{}

// newRegistry builds the provider registry commands share.
func newRegistry() *geocode.Registry {
	return geocode.NewRegistry(clientOptions)
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&clientOptions.EnableHTTPTrace,
		"trace-http",
		false,
		"Display HTTP requests-responses",
	)
	rootCmd.PersistentFlags().BoolVar(
		&clientOptions.EnableHTTPBodyTrace,
		"trace-http-body",
		false,
		"Display HTTP requests-responses bodies",
	)
	rootCmd.PersistentFlags().DurationVar(
		&clientOptions.Timeout,
		"timeout",
		0,
		"Timeout for a single provider call. Defaults to 10s",
	)
}
