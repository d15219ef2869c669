// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Debug artifact written next to a reverse-geocoding call: the full
// request/response exchange, for diagnostics only. Never read back.
type dumpFile struct {
	Request  dumpRequest  `json:"request"`
	Response dumpResponse `json:"response"`
}

type dumpRequest struct {
	URL       string            `json:"url"`
	Params    map[string]string `json:"params"`
	Longitude float64           `json:"longitude"`
	Latitude  float64           `json:"latitude"`
	Timestamp string            `json:"timestamp"`
}

type dumpResponse struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Data       json.RawMessage   `json:"data"`
}

// dumpExchange writes the artifact, logging instead of failing: a dump
// write problem must never abort a batch.
func dumpExchange(path, reqURL string, params url.Values, lng, lat float64, status int, header http.Header, body []byte) {
	if err := writeDump(path, reqURL, params, lng, lat, status, header, body); err != nil {
		log.Printf("saving raw response to %s: %v", path, err)

		return
	}

	log.Printf("saved raw response to %s", path)
}

func writeDump(path, reqURL string, params url.Values, lng, lat float64, status int, header http.Header, body []byte) error {
	flatParams := make(map[string]string, len(params))
	for k := range params {
		flatParams[k] = params.Get(k)
	}

	flatHeaders := make(map[string]string, len(header))
	for k := range header {
		flatHeaders[k] = header.Get(k)
	}

	data, err := json.MarshalIndent(dumpFile{
		Request: dumpRequest{
			URL:       reqURL,
			Params:    flatParams,
			Longitude: lng,
			Latitude:  lat,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Response: dumpResponse{
			StatusCode: status,
			Headers:    flatHeaders,
			Data:       json.RawMessage(body),
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dump: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating dump directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing dump file: %w", err)
	}

	return nil
}
