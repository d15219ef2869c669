// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// NCP Maps API base URL.
// - Geocoding: /map-geocode/v2/geocode
// - Reverse Geocoding: /map-reversegeocode/v2/gc
const naverBaseURL = "https://maps.apigw.ntruss.com"

// Naver is the Naver Cloud Platform (NCP) Maps API adapter.
type Naver struct {
	baseURL string
	client  *http.Client
}

// NewNaver creates a Naver adapter. It fails fast when either gateway key
// is missing, before any network activity.
func NewNaver(creds NaverCredentials, options *ClientOptions) (*Naver, error) {
	if creds.KeyID == "" || creds.Key == "" {
		return nil, fmt.Errorf(
			"naver adapter requires both gateway keys (%s, %s)",
			EnvNaverKeyID, EnvNaverKey,
		)
	}

	baseURL := naverBaseURL
	if options != nil && options.NaverBaseURL != "" {
		baseURL = options.NaverBaseURL
	}

	return &Naver{
		baseURL: baseURL,
		client: newHTTPClient(options, map[string]string{
			"X-NCP-APIGW-API-KEY-ID": creds.KeyID,
			"X-NCP-APIGW-API-KEY":    creds.Key,
			"Accept":                 "application/json",
		}),
	}, nil
}

// Name implements Provider.
func (n *Naver) Name() string { return "naver" }

type naverGeocodeResponse struct {
	Addresses []struct {
		X            string `json:"x"`
		Y            string `json:"y"`
		RoadAddress  string `json:"roadAddress"`
		JibunAddress string `json:"jibunAddress"`
	} `json:"addresses"`
}

type naverArea struct {
	Name string `json:"name"`
}

type naverReverseEntry struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Region struct {
		Area1 naverArea `json:"area1"`
		Area2 naverArea `json:"area2"`
		Area3 naverArea `json:"area3"`
		Area4 naverArea `json:"area4"`
	} `json:"region"`
	Land struct {
		Name      string `json:"name"`
		Number1   string `json:"number1"`
		Number2   string `json:"number2"`
		Addition0 struct {
			Value string `json:"value"`
		} `json:"addition0"`
	} `json:"land"`
}

type naverReverseResponse struct {
	Results []naverReverseEntry `json:"results"`
}

// Geocode implements Provider. The vendor has no address_type analog, so
// AddressKind is "ROAD" when a road address matched and empty otherwise.
func (n *Naver) Geocode(ctx context.Context, address string) (*Result, error) {
	if strings.TrimSpace(address) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", address)

	status, body, err := doGet(ctx, n.client, n.Name(), n.baseURL+"/map-geocode/v2/geocode?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, n.authError("geocoding", status, body)
	}

	if status != http.StatusOK {
		return nil, ClassifyHTTPStatus(n.Name(), status)
	}

	var data naverGeocodeResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &Error{Type: ErrorTypeInvalidResponse, Provider: n.Name(), Message: "decoding response", Err: err}
	}

	if len(data.Addresses) == 0 {
		return nil, nil
	}

	first := data.Addresses[0]

	lng, err := strconv.ParseFloat(first.X, 64)
	if err != nil {
		return nil, &Error{Type: ErrorTypeInvalidResponse, Provider: n.Name(), Message: "parsing longitude", Err: err}
	}

	lat, err := strconv.ParseFloat(first.Y, 64)
	if err != nil {
		return nil, &Error{Type: ErrorTypeInvalidResponse, Provider: n.Name(), Message: "parsing latitude", Err: err}
	}

	matched := first.RoadAddress
	kind := "ROAD"

	if matched == "" {
		matched = first.JibunAddress
		kind = ""
	}

	return &Result{
		Longitude:   lng,
		Latitude:    lat,
		Address:     matched,
		AddressKind: kind,
	}, nil
}

// ReverseGeocode implements Provider. The vendor tags each result entry by
// match kind ("roadaddr", "addr"); region names are shared between both
// namespaces because the vendor does not separate them per address kind.
func (n *Naver) ReverseGeocode(ctx context.Context, lng, lat float64, opts ReverseOptions) (*ReverseResult, error) {
	if math.IsNaN(lng) || math.IsNaN(lat) {
		return nil, nil
	}

	params := url.Values{}
	params.Set("coords", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(lng, 'f', -1, 64),
		strconv.FormatFloat(lat, 'f', -1, 64)))
	params.Set("output", "json")
	params.Set("orders", "roadaddr,addr")

	reqURL := n.baseURL + "/map-reversegeocode/v2/gc?" + params.Encode()

	var header http.Header

	status, body, err := doGet(ctx, n.client, n.Name(), reqURL, &header)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, n.authError("reverse geocoding", status, body)
	}

	if status != http.StatusOK {
		return nil, ClassifyHTTPStatus(n.Name(), status)
	}

	var data naverReverseResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &Error{Type: ErrorTypeInvalidResponse, Provider: n.Name(), Message: "decoding response", Err: err}
	}

	if opts.DumpPath != "" {
		dumpExchange(opts.DumpPath, reqURL, params, lng, lat, status, header, body)
	}

	if len(data.Results) == 0 {
		return nil, nil
	}

	road := pickEntry(data.Results, "roadaddr")
	addr := pickEntry(data.Results, "addr")

	base := road
	if base == nil {
		base = addr
	}

	if base == nil {
		base = &data.Results[0]
	}

	result := &ReverseResult{}

	if road != nil {
		result.RoadAddress = entryText(road)
	}

	if addr != nil {
		result.Address = entryText(addr)
	}

	if opts.IncludeDetails {
		area1 := base.Region.Area1.Name
		area2 := base.Region.Area2.Name
		area3 := base.Region.Area3.Name

		result.RoadRegion1 = area1
		result.RoadRegion2 = area2
		result.RoadRegion3 = area3
		result.AddrRegion1 = area1
		result.AddrRegion2 = area2
		result.AddrRegion3 = area3

		if road != nil {
			result.RoadName = strings.TrimSpace(road.Land.Name)
			result.RoadBuildingName = strings.TrimSpace(road.Land.Addition0.Value)
		}

		// Postal code, building numbers, administrative/legal codes and the
		// mountain-lot flag are not supplied by this vendor: empty strings.
	}

	return result, nil
}

// pickEntry selects the result entry tagged with the given match kind.
func pickEntry(results []naverReverseEntry, name string) *naverReverseEntry {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}

	return nil
}

// entryText returns the entry's free-text address, synthesizing one from
// region and land parts when the vendor left it blank.
func entryText(e *naverReverseEntry) string {
	if txt := strings.TrimSpace(e.Text); txt != "" {
		return txt
	}

	var parts []string

	for _, area := range []naverArea{e.Region.Area1, e.Region.Area2, e.Region.Area3, e.Region.Area4} {
		if name := strings.TrimSpace(area.Name); name != "" {
			parts = append(parts, name)
		}
	}

	if name := strings.TrimSpace(e.Land.Name); name != "" {
		parts = append(parts, name)
	}

	if num1 := strings.TrimSpace(e.Land.Number1); num1 != "" {
		if num2 := strings.TrimSpace(e.Land.Number2); num2 != "" {
			parts = append(parts, num1+"-"+num2)
		} else {
			parts = append(parts, num1)
		}
	}

	return strings.Join(parts, " ")
}

// authError logs the 401/403 diagnostic (status, raw body, likely causes)
// and returns the typed auth error.
func (n *Naver) authError(op string, status int, body []byte) *Error {
	log.Printf("naver %s auth/permission error:", op)
	log.Printf("- status_code: %d", status)
	log.Printf("- response: %s", strings.TrimSpace(string(body)))
	log.Println("checklist:")
	log.Println("- Maps Geocoding/Reverse Geocoding is enabled on the NCP console")
	log.Println("- both API gateway keys (ID/KEY) belong to this project")
	log.Println("- the call policy (IP allowlist, if set) includes this host")

	return &Error{
		Type:     ErrorTypeAuth,
		Provider: n.Name(),
		Message:  fmt.Sprintf("authentication rejected (HTTP %d)", status),
	}
}
