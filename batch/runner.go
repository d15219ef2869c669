// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

// Package batch applies geocoding column-wise over a dataset: one vendor
// call per row, results written back into output columns, failures left
// as empty cells.
package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/jusogo/jusogo/dataset"
	"github.com/jusogo/jusogo/geocode"
	"github.com/jusogo/jusogo/spatial"
	"github.com/jusogo/jusogo/utils"
)

// ProviderSource resolves a provider name to an adapter. Satisfied by
// *geocode.Registry.
type ProviderSource interface {
	Provider(name string) (geocode.Provider, error)
}

// Runner executes batch passes over a table.
type Runner struct {
	providers ProviderSource
}

// NewRunner creates a runner over the given provider source.
func NewRunner(providers ProviderSource) *Runner {
	return &Runner{providers: providers}
}

// Options shared by both batch passes.
type Options struct {
	// Provider name, resolved through the registry.
	Provider string

	// Delay inserted between vendor calls. Zero disables it.
	Delay time.Duration

	// Progress enables the terminal progress bar.
	Progress bool
}

// GeocodeOptions configures a forward batch pass.
type GeocodeOptions struct {
	Options

	// AddressColumn is the input column holding the address text.
	AddressColumn string

	// Output columns. Default "longitude" and "latitude".
	LongitudeColumn string
	LatitudeColumn  string

	// H3Resolution, when non-negative, adds an "h3_cell" column with the
	// H3 cell token of each geocoded point.
	H3Resolution int
}

// ReverseOptions configures a reverse batch pass.
type ReverseOptions struct {
	Options

	// Input columns holding the coordinates.
	LongitudeColumn string
	LatitudeColumn  string

	// Output columns. Default "road_address" and "address".
	RoadAddressColumn string
	AddressColumn     string

	// IncludeDetails adds the administrative/structural detail columns.
	IncludeDetails bool

	// DumpJSON, when non-empty, saves each raw vendor exchange to a JSON
	// file. "auto" derives a timestamped base name; anything else is used
	// as the base path.
	DumpJSON string
}

// H3CellColumn is the output column added when an H3 resolution is set.
const H3CellColumn = "h3_cell"

// Geocode fills coordinate columns from an address column. Rows that fail
// or do not match keep empty cells; row order is preserved.
func (r *Runner) Geocode(ctx context.Context, t *dataset.Table, opts GeocodeOptions) error {
	if opts.AddressColumn == "" {
		return fmt.Errorf("address column is required")
	}

	if !t.Has(opts.AddressColumn) {
		return fmt.Errorf("column %q not found in dataset", opts.AddressColumn)
	}

	if opts.LongitudeColumn == "" {
		opts.LongitudeColumn = "longitude"
	}

	if opts.LatitudeColumn == "" {
		opts.LatitudeColumn = "latitude"
	}

	provider, err := r.providers.Provider(opts.Provider)
	if err != nil {
		return err
	}

	t.AddColumn(opts.LongitudeColumn)
	t.AddColumn(opts.LatitudeColumn)

	if opts.H3Resolution >= 0 {
		t.AddColumn(H3CellColumn)
	}

	n := t.Len()
	bar := newProgressBar(n, "geocoding", opts.Progress)

	var geocoded int64

	for i := range n {
		if err := ctx.Err(); err != nil {
			return err
		}

		if i > 0 && opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}

		address, _ := t.Get(i, opts.AddressColumn)

		result, err := provider.Geocode(ctx, address)
		if err != nil {
			log.Printf("[%d/%d] geocoding %q: %v", i+1, n, address, err)
			step(bar, i, n)

			continue
		}

		if result == nil {
			log.Printf("[%d/%d] no match for %q", i+1, n, address)
			step(bar, i, n)

			continue
		}

		lngCell := strconv.FormatFloat(result.Longitude, 'f', -1, 64)
		latCell := strconv.FormatFloat(result.Latitude, 'f', -1, 64)

		if err := t.Set(i, opts.LongitudeColumn, lngCell); err != nil {
			return err
		}

		if err := t.Set(i, opts.LatitudeColumn, latCell); err != nil {
			return err
		}

		if opts.H3Resolution >= 0 {
			point := spatial.Point{Lat: result.Latitude, Lng: result.Longitude}

			token, err := spatial.CellToken(point, opts.H3Resolution)
			if err != nil {
				log.Printf("[%d/%d] h3 cell for %s: %v", i+1, n, point.String(), err)
			} else if err := t.Set(i, H3CellColumn, token); err != nil {
				return err
			}
		}

		geocoded++

		step(bar, i, n)
	}

	finish(bar)
	log.Printf("geocoded %s of %s rows with %s",
		utils.FormatInt(geocoded), utils.FormatInt(int64(n)), provider.Name())

	return nil
}

// ReverseGeocode fills address columns from coordinate columns. Rows with
// blank or unparsable coordinates, vendor misses, and vendor failures all
// keep empty cells; row order is preserved.
func (r *Runner) ReverseGeocode(ctx context.Context, t *dataset.Table, opts ReverseOptions) error {
	if opts.LongitudeColumn == "" || opts.LatitudeColumn == "" {
		return fmt.Errorf("longitude and latitude columns are required")
	}

	for _, name := range []string{opts.LongitudeColumn, opts.LatitudeColumn} {
		if !t.Has(name) {
			return fmt.Errorf("column %q not found in dataset", name)
		}
	}

	if opts.RoadAddressColumn == "" {
		opts.RoadAddressColumn = "road_address"
	}

	if opts.AddressColumn == "" {
		opts.AddressColumn = "address"
	}

	provider, err := r.providers.Provider(opts.Provider)
	if err != nil {
		return err
	}

	t.AddColumn(opts.RoadAddressColumn)
	t.AddColumn(opts.AddressColumn)

	detailColumns := geocode.DetailColumns()
	if opts.IncludeDetails {
		for _, name := range detailColumns {
			t.AddColumn(name)
		}
	}

	n := t.Len()
	bar := newProgressBar(n, "reverse geocoding", opts.Progress)
	dumpBase := dumpBasePath(opts.DumpJSON, provider.Name())

	var resolved int64

	for i := range n {
		if err := ctx.Err(); err != nil {
			return err
		}

		if i > 0 && opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}

		lng, lat, ok := rowCoordinates(t, i, opts.LongitudeColumn, opts.LatitudeColumn)
		if !ok {
			log.Printf("[%d/%d] skipping row without usable coordinates", i+1, n)
			step(bar, i, n)

			continue
		}

		result, err := provider.ReverseGeocode(ctx, lng, lat, geocode.ReverseOptions{
			IncludeDetails: opts.IncludeDetails,
			DumpPath:       dumpPath(dumpBase, i, n),
		})
		if err != nil {
			log.Printf("[%d/%d] reverse geocoding (%s, %s): %v", i+1, n,
				strconv.FormatFloat(lng, 'f', -1, 64),
				strconv.FormatFloat(lat, 'f', -1, 64), err)
			step(bar, i, n)

			continue
		}

		if result == nil {
			log.Printf("[%d/%d] no address at (%s, %s)", i+1, n,
				strconv.FormatFloat(lng, 'f', -1, 64),
				strconv.FormatFloat(lat, 'f', -1, 64))
			step(bar, i, n)

			continue
		}

		if err := t.Set(i, opts.RoadAddressColumn, result.RoadAddress); err != nil {
			return err
		}

		if err := t.Set(i, opts.AddressColumn, result.Address); err != nil {
			return err
		}

		if opts.IncludeDetails {
			for j, value := range result.DetailFields() {
				if err := t.Set(i, detailColumns[j], value); err != nil {
					return err
				}
			}
		}

		resolved++

		step(bar, i, n)
	}

	finish(bar)
	log.Printf("reverse geocoded %s of %s rows with %s",
		utils.FormatInt(resolved), utils.FormatInt(int64(n)), provider.Name())

	return nil
}

// rowCoordinates reads and parses the coordinate cells of row i. Blank
// cells and unparsable values are a skip, not a failure.
func rowCoordinates(t *dataset.Table, i int, lngColumn, latColumn string) (float64, float64, bool) {
	lngCell, _ := t.Get(i, lngColumn)
	latCell, _ := t.Get(i, latColumn)

	lngCell = strings.TrimSpace(lngCell)
	latCell = strings.TrimSpace(latCell)

	if lngCell == "" || latCell == "" {
		return 0, 0, false
	}

	lng, err := strconv.ParseFloat(lngCell, 64)
	if err != nil {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(latCell, 64)
	if err != nil {
		return 0, 0, false
	}

	return lng, lat, true
}

// dumpBasePath resolves the dump flag into a base path without extension,
// or "" when dumping is off.
func dumpBasePath(flag, provider string) string {
	switch flag {
	case "":
		return ""
	case "auto":
		return fmt.Sprintf("reverse_geocode_%s_%s", provider, time.Now().Format("20060102_150405"))
	default:
		return strings.TrimSuffix(flag, ".json")
	}
}

// dumpPath derives the per-row dump file name: a single-row pass writes
// one file, a multi-row pass numbers them.
func dumpPath(base string, i, n int) string {
	if base == "" {
		return ""
	}

	if n == 1 {
		return base + ".json"
	}

	return fmt.Sprintf("%s_%d.json", base, i)
}

func newProgressBar(n int, description string, enabled bool) *progressbar.ProgressBar {
	if !enabled || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}

	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// step advances the bar, or logs a notice every 10 rows when the bar is
// off.
func step(bar *progressbar.ProgressBar, i, n int) {
	if bar != nil {
		_ = bar.Add(1)

		return
	}

	if (i+1)%10 == 0 {
		log.Printf("[%d/%d] processed", i+1, n)
	}
}

func finish(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
