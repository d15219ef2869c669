// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const naverGeocodeBody = `{
  "status": "OK",
  "addresses": [
    {
      "roadAddress": "서울특별시 강남구 강남대로 396",
      "jibunAddress": "서울특별시 강남구 역삼동 825",
      "x": "127.0276368",
      "y": "37.4979502"
    },
    {
      "roadAddress": "서울특별시 강남구 강남대로 390",
      "jibunAddress": "서울특별시 강남구 역삼동 826",
      "x": "127.0280000",
      "y": "37.4975000"
    }
  ]
}`

const naverReverseBody = `{
  "status": {"code": 0, "name": "ok"},
  "results": [
    {
      "name": "roadaddr",
      "region": {
        "area1": {"name": "서울특별시"},
        "area2": {"name": "강남구"},
        "area3": {"name": "역삼동"},
        "area4": {"name": ""}
      },
      "land": {
        "name": "강남대로",
        "number1": "396",
        "number2": "",
        "addition0": {"type": "building", "value": "강남역"}
      }
    },
    {
      "name": "addr",
      "region": {
        "area1": {"name": "서울특별시"},
        "area2": {"name": "강남구"},
        "area3": {"name": "역삼동"},
        "area4": {"name": ""}
      },
      "land": {
        "name": "",
        "number1": "825",
        "number2": "",
        "addition0": {"type": "", "value": ""}
      }
    }
  ]
}`

func newNaverTestServer(t *testing.T, geocodeBody, reverseBody string, status int) (*Naver, *atomic.Int64) {
	t.Helper()

	var requests atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		assert.Equal(t, "test-key-id", r.Header.Get("X-NCP-APIGW-API-KEY-ID"))
		assert.Equal(t, "test-key", r.Header.Get("X-NCP-APIGW-API-KEY"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		switch r.URL.Path {
		case "/map-geocode/v2/geocode":
			_, _ = w.Write([]byte(geocodeBody))
		case "/map-reversegeocode/v2/gc":
			assert.Equal(t, "json", r.URL.Query().Get("output"))
			assert.Equal(t, "roadaddr,addr", r.URL.Query().Get("orders"))
			_, _ = w.Write([]byte(reverseBody))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)

	n, err := NewNaver(
		NaverCredentials{KeyID: "test-key-id", Key: "test-key"},
		&ClientOptions{NaverBaseURL: srv.URL},
	)
	require.NoError(t, err)

	return n, &requests
}

func TestNewNaverRequiresBothKeys(t *testing.T) {
	tests := []struct {
		name  string
		creds NaverCredentials
	}{
		{"no keys", NaverCredentials{}},
		{"missing key id", NaverCredentials{Key: "k"}},
		{"missing key", NaverCredentials{KeyID: "id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNaver(tt.creds, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), EnvNaverKeyID)
		})
	}
}

func TestNaverGeocodeTakesFirstCandidate(t *testing.T) {
	n, _ := newNaverTestServer(t, naverGeocodeBody, naverReverseBody, http.StatusOK)

	result, err := n.Geocode(context.Background(), "강남대로 396")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.InDelta(t, 127.0276368, result.Longitude, 1e-9)
	assert.InDelta(t, 37.4979502, result.Latitude, 1e-9)
	assert.Equal(t, "서울특별시 강남구 강남대로 396", result.Address)
	assert.Equal(t, "ROAD", result.AddressKind)
}

func TestNaverGeocodeJibunOnly(t *testing.T) {
	body := `{"addresses": [{"roadAddress": "", "jibunAddress": "서울 강남구 역삼동 825", "x": "127.02", "y": "37.49"}]}`

	n, _ := newNaverTestServer(t, body, "", http.StatusOK)

	result, err := n.Geocode(context.Background(), "역삼동 825")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "서울 강남구 역삼동 825", result.Address)
	assert.Empty(t, result.AddressKind)
}

func TestNaverGeocodeEmptyAddressSkipsNetwork(t *testing.T) {
	n, requests := newNaverTestServer(t, naverGeocodeBody, naverReverseBody, http.StatusOK)

	result, err := n.Geocode(context.Background(), "  ")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Zero(t, requests.Load())
}

func TestNaverGeocodeNoMatch(t *testing.T) {
	n, _ := newNaverTestServer(t, `{"status": "OK", "addresses": []}`, "", http.StatusOK)

	result, err := n.Geocode(context.Background(), "no such place")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestNaverGeocodeAuthError(t *testing.T) {
	n, _ := newNaverTestServer(t, `{"error": {"errorCode": "200", "message": "Authentication Failed"}}`, "", http.StatusUnauthorized)

	_, err := n.Geocode(context.Background(), "강남대로 396")
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
}

func TestNaverReverseGeocode(t *testing.T) {
	n, _ := newNaverTestServer(t, "", naverReverseBody, http.StatusOK)

	result, err := n.ReverseGeocode(context.Background(), 127.0276368, 37.4979502, ReverseOptions{IncludeDetails: true})
	require.NoError(t, err)
	require.NotNil(t, result)

	// text synthesized from region and land parts
	assert.Equal(t, "서울특별시 강남구 역삼동 강남대로 396", result.RoadAddress)
	assert.Equal(t, "서울특별시 강남구 역삼동 825", result.Address)

	assert.Equal(t, "서울특별시", result.RoadRegion1)
	assert.Equal(t, "강남구", result.RoadRegion2)
	assert.Equal(t, "역삼동", result.RoadRegion3)
	assert.Equal(t, "서울특별시", result.AddrRegion1)
	assert.Equal(t, "강남대로", result.RoadName)
	assert.Equal(t, "강남역", result.RoadBuildingName)

	// fields this vendor does not supply stay empty
	assert.Empty(t, result.RoadZoneNo)
	assert.Empty(t, result.AddrHCode)
	assert.Empty(t, result.AddrBCode)
	assert.Empty(t, result.AddrMountainYN)
}

func TestNaverReverseGeocodeSynthesizesLotNumbers(t *testing.T) {
	body := `{"results": [{
		"name": "addr",
		"region": {
			"area1": {"name": "서울특별시"},
			"area2": {"name": "종로구"},
			"area3": {"name": "청운동"},
			"area4": {"name": ""}
		},
		"land": {"name": "", "number1": "1", "number2": "2", "addition0": {"value": ""}}
	}]}`

	n, _ := newNaverTestServer(t, "", body, http.StatusOK)

	result, err := n.ReverseGeocode(context.Background(), 126.97, 37.58, ReverseOptions{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "서울특별시 종로구 청운동 1-2", result.Address)
	assert.Empty(t, result.RoadAddress)
}

func TestNaverReverseGeocodeFallsBackToFirstEntry(t *testing.T) {
	body := `{"results": [{
		"name": "legalcode",
		"region": {
			"area1": {"name": "서울특별시"},
			"area2": {"name": "강남구"},
			"area3": {"name": "역삼동"},
			"area4": {"name": ""}
		},
		"land": {"name": "", "number1": "", "number2": "", "addition0": {"value": ""}}
	}]}`

	n, _ := newNaverTestServer(t, "", body, http.StatusOK)

	result, err := n.ReverseGeocode(context.Background(), 127.02, 37.49, ReverseOptions{IncludeDetails: true})
	require.NoError(t, err)
	require.NotNil(t, result)

	// neither tagged entry matched, so both headline strings stay empty
	// but region details come from the fallback entry
	assert.Empty(t, result.RoadAddress)
	assert.Empty(t, result.Address)
	assert.Equal(t, "서울특별시", result.RoadRegion1)
	assert.Equal(t, "강남구", result.AddrRegion2)
}

func TestNaverReverseGeocodeNoMatch(t *testing.T) {
	n, _ := newNaverTestServer(t, "", `{"results": []}`, http.StatusOK)

	result, err := n.ReverseGeocode(context.Background(), 0, 0, ReverseOptions{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestNaverReverseGeocodeNaNSkipsNetwork(t *testing.T) {
	n, requests := newNaverTestServer(t, "", naverReverseBody, http.StatusOK)

	result, err := n.ReverseGeocode(context.Background(), math.NaN(), 37.49, ReverseOptions{})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Zero(t, requests.Load())
}
