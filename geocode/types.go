// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

// Package geocode converts Korean addresses to coordinates and back using
// the Kakao Local API or the Naver Cloud Platform Maps API, normalizing
// the two vendor response shapes into a single flat schema.
package geocode

import "context"

// Result is a normalized forward-geocoding match.
type Result struct {
	Longitude   float64
	Latitude    float64
	Address     string // the address text the vendor matched
	AddressKind string // vendor address classification, e.g. "ROAD"; empty if unsupported
}

// ReverseOptions controls a single reverse-geocoding call.
type ReverseOptions struct {
	// IncludeDetails requests the administrative/structural subfields
	// beyond the two headline address strings.
	IncludeDetails bool

	// DumpPath, when non-empty, writes the raw vendor exchange to a JSON
	// file at that path. A write failure is logged, never returned.
	DumpPath string
}

// ReverseResult is a normalized reverse-geocoding match. The shape is
// identical for every provider: fields a vendor does not supply are empty
// strings, never omitted.
type ReverseResult struct {
	RoadAddress string
	Address     string

	// Road-address (도로명) details.
	RoadZoneNo         string
	RoadRegion1        string
	RoadRegion2        string
	RoadRegion3        string
	RoadName           string
	RoadMainBuildingNo string
	RoadSubBuildingNo  string
	RoadBuildingName   string
	RoadUndergroundYN  string

	// Lot-number-address (지번) details.
	AddrRegion1    string
	AddrRegion2    string
	AddrRegion3    string
	AddrRegion3H   string
	AddrHCode      string
	AddrBCode      string
	AddrMainNo     string
	AddrSubNo      string
	AddrMountainYN string
}

// detailColumns is the fixed set of detail output columns, in output order.
var detailColumns = []string{
	"road_zone_no",
	"road_region_1depth",
	"road_region_2depth",
	"road_region_3depth",
	"road_name",
	"road_main_building_no",
	"road_sub_building_no",
	"road_building_name",
	"road_underground_yn",
	"address_region_1depth",
	"address_region_2depth",
	"address_region_3depth",
	"address_region_3depth_h",
	"address_h_code",
	"address_b_code",
	"address_main_no",
	"address_sub_no",
	"address_mountain_yn",
}

// DetailColumns returns the names of the detail output columns, in the
// order matching DetailFields.
func DetailColumns() []string {
	out := make([]string, len(detailColumns))
	copy(out, detailColumns)

	return out
}

// DetailFields returns the detail values in DetailColumns order.
func (r *ReverseResult) DetailFields() []string {
	return []string{
		r.RoadZoneNo,
		r.RoadRegion1,
		r.RoadRegion2,
		r.RoadRegion3,
		r.RoadName,
		r.RoadMainBuildingNo,
		r.RoadSubBuildingNo,
		r.RoadBuildingName,
		r.RoadUndergroundYN,
		r.AddrRegion1,
		r.AddrRegion2,
		r.AddrRegion3,
		r.AddrRegion3H,
		r.AddrHCode,
		r.AddrBCode,
		r.AddrMainNo,
		r.AddrSubNo,
		r.AddrMountainYN,
	}
}

// Provider is the uniform two-operation contract over a vendor API.
//
// Both operations report "no usable input" (empty address, NaN coordinate)
// and "vendor found no match" as a nil result with a nil error, without a
// network call in the former case. Failures that are worth distinguishing
// (authentication, transport, malformed responses) come back as *Error.
type Provider interface {
	Name() string
	Geocode(ctx context.Context, address string) (*Result, error)
	ReverseGeocode(ctx context.Context, lng, lat float64, opts ReverseOptions) (*ReverseResult, error)
}
