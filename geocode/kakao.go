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

const kakaoBaseURL = "https://dapi.kakao.com/v2/local"

// Kakao is the Kakao Local API adapter.
type Kakao struct {
	baseURL string
	client  *http.Client
}

// NewKakao creates a Kakao adapter. It fails fast when the API key is
// missing, before any network activity.
func NewKakao(creds KakaoCredentials, options *ClientOptions) (*Kakao, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("kakao adapter requires an API key (%s)", EnvKakaoRESTAPIKey)
	}

	baseURL := kakaoBaseURL
	if options != nil && options.KakaoBaseURL != "" {
		baseURL = options.KakaoBaseURL
	}

	return &Kakao{
		baseURL: baseURL,
		client: newHTTPClient(options, map[string]string{
			"Authorization": "KakaoAK " + creds.APIKey,
			"Accept":        "application/json",
		}),
	}, nil
}

// Name implements Provider.
func (k *Kakao) Name() string { return "kakao" }

type kakaoAddressSearchResponse struct {
	Documents []struct {
		X           string `json:"x"`
		Y           string `json:"y"`
		AddressName string `json:"address_name"`
		AddressType string `json:"address_type"`
	} `json:"documents"`
}

type kakaoRoadAddress struct {
	AddressName    string `json:"address_name"`
	Region1        string `json:"region_1depth_name"`
	Region2        string `json:"region_2depth_name"`
	Region3        string `json:"region_3depth_name"`
	RoadName       string `json:"road_name"`
	MainBuildingNo string `json:"main_building_no"`
	SubBuildingNo  string `json:"sub_building_no"`
	BuildingName   string `json:"building_name"`
	UndergroundYN  string `json:"underground_yn"`
	ZoneNo         string `json:"zone_no"`
}

type kakaoLotAddress struct {
	AddressName string `json:"address_name"`
	Region1     string `json:"region_1depth_name"`
	Region2     string `json:"region_2depth_name"`
	Region3     string `json:"region_3depth_name"`
	Region3H    string `json:"region_3depth_h_name"`
	HCode       string `json:"h_code"`
	BCode       string `json:"b_code"`
	MainNo      string `json:"main_address_no"`
	SubNo       string `json:"sub_address_no"`
	MountainYN  string `json:"mountain_yn"`
}

type kakaoCoord2AddressResponse struct {
	Documents []struct {
		RoadAddress *kakaoRoadAddress `json:"road_address"`
		Address     *kakaoLotAddress  `json:"address"`
	} `json:"documents"`
}

// Geocode implements Provider. A no-match outcome is (nil, nil).
func (k *Kakao) Geocode(ctx context.Context, address string) (*Result, error) {
	if strings.TrimSpace(address) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", address)
	params.Set("size", "1")

	status, body, err := doGet(ctx, k.client, k.Name(), k.baseURL+"/search/address.json?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusForbidden {
		return nil, k.authError("geocoding", body)
	}

	if status != http.StatusOK {
		return nil, ClassifyHTTPStatus(k.Name(), status)
	}

	var data kakaoAddressSearchResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &Error{Type: ErrorTypeInvalidResponse, Provider: k.Name(), Message: "decoding response", Err: err}
	}

	if len(data.Documents) == 0 {
		return nil, nil
	}

	doc := data.Documents[0]

	lng, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return nil, &Error{Type: ErrorTypeInvalidResponse, Provider: k.Name(), Message: "parsing longitude", Err: err}
	}

	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return nil, &Error{Type: ErrorTypeInvalidResponse, Provider: k.Name(), Message: "parsing latitude", Err: err}
	}

	return &Result{
		Longitude:   lng,
		Latitude:    lat,
		Address:     doc.AddressName,
		AddressKind: doc.AddressType,
	}, nil
}

// ReverseGeocode implements Provider. One call returns at most one road
// address and one lot-number address; each namespace is fully populated
// or fully empty.
func (k *Kakao) ReverseGeocode(ctx context.Context, lng, lat float64, opts ReverseOptions) (*ReverseResult, error) {
	if math.IsNaN(lng) || math.IsNaN(lat) {
		return nil, nil
	}

	params := url.Values{}
	params.Set("x", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("y", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("input_coord", "WGS84")

	reqURL := k.baseURL + "/geo/coord2address.json?" + params.Encode()

	var header http.Header

	status, body, err := doGet(ctx, k.client, k.Name(), reqURL, &header)
	if err != nil {
		return nil, err
	}

	if status == http.StatusForbidden {
		return nil, k.authError("reverse geocoding", body)
	}

	if status != http.StatusOK {
		return nil, ClassifyHTTPStatus(k.Name(), status)
	}

	var data kakaoCoord2AddressResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &Error{Type: ErrorTypeInvalidResponse, Provider: k.Name(), Message: "decoding response", Err: err}
	}

	if opts.DumpPath != "" {
		dumpExchange(opts.DumpPath, reqURL, params, lng, lat, status, header, body)
	}

	if len(data.Documents) == 0 {
		return nil, nil
	}

	doc := data.Documents[0]
	result := &ReverseResult{}

	if road := doc.RoadAddress; road != nil {
		result.RoadAddress = road.AddressName

		if opts.IncludeDetails {
			result.RoadZoneNo = road.ZoneNo
			result.RoadRegion1 = road.Region1
			result.RoadRegion2 = road.Region2
			result.RoadRegion3 = road.Region3
			result.RoadName = road.RoadName
			result.RoadMainBuildingNo = road.MainBuildingNo
			result.RoadSubBuildingNo = road.SubBuildingNo
			result.RoadBuildingName = road.BuildingName
			result.RoadUndergroundYN = road.UndergroundYN
		}
	}

	if addr := doc.Address; addr != nil {
		result.Address = addr.AddressName

		if opts.IncludeDetails {
			result.AddrRegion1 = addr.Region1
			result.AddrRegion2 = addr.Region2
			result.AddrRegion3 = addr.Region3
			result.AddrRegion3H = addr.Region3H
			result.AddrHCode = addr.HCode
			result.AddrBCode = addr.BCode
			result.AddrMainNo = addr.MainNo
			result.AddrSubNo = addr.SubNo
			result.AddrMountainYN = addr.MountainYN
		}
	}

	return result, nil
}

// authError logs the 403 diagnostic (parsed body when possible, plus the
// vendor-console checklist) and returns the typed auth error.
func (k *Kakao) authError(op string, body []byte) *Error {
	var apiErr struct {
		Msg  string `json:"msg"`
		Code int    `json:"code"`
	}

	msg := "API key authentication failed"
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Msg != "" {
		msg = fmt.Sprintf("%s (code: %d)", apiErr.Msg, apiErr.Code)
	}

	log.Printf("kakao %s error (403 Forbidden): %s", op, msg)
	log.Println("check in the Kakao developers console that:")
	log.Println("1. the REST API key is correct")
	log.Println("2. the Local API is enabled")
	log.Println("3. the app domain is configured")

	return &Error{Type: ErrorTypeAuth, Provider: k.Name(), Message: msg}
}
