// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Server exposes single-call geocoding over a local HTTP API, for
// interactive use against the same provider registry the batch runner uses.
type Server struct {
	registry *Registry
}

// NewServer creates a server over the given registry.
func NewServer(registry *Registry) *Server {
	return &Server{registry: registry}
}

// Router builds the gin engine with the API routes.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.GET("/api/geocode", s.handleGeocode)
	router.GET("/api/reverse", s.handleReverse)

	return router
}

// Run serves the API on addr until the process terminates.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) provider(c *gin.Context) (Provider, bool) {
	name := c.DefaultQuery("provider", ProviderKakao)

	p, err := s.registry.Provider(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnknownProvider) {
			status = http.StatusBadRequest
		}

		c.JSON(status, gin.H{"error": err.Error()})

		return nil, false
	}

	return p, true
}

func (s *Server) handleGeocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})

		return
	}

	p, ok := s.provider(c)
	if !ok {
		return
	}

	result, err := p.Geocode(c.Request.Context(), address)
	if err != nil {
		var geoErr *Error
		if errors.As(err, &geoErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": geoErr.Message, "type": geoErr.Type.String()})
		} else {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}

		return
	}

	if result == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":        true,
		"longitude":    result.Longitude,
		"latitude":     result.Latitude,
		"address":      result.Address,
		"address_kind": result.AddressKind,
	})
}

func (s *Server) handleReverse(c *gin.Context) {
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)

	if errLng != nil || errLat != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng and lat must be valid coordinates"})

		return
	}

	details, _ := strconv.ParseBool(c.DefaultQuery("details", "false"))

	p, ok := s.provider(c)
	if !ok {
		return
	}

	result, err := p.ReverseGeocode(c.Request.Context(), lng, lat, ReverseOptions{IncludeDetails: details})
	if err != nil {
		var geoErr *Error
		if errors.As(err, &geoErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": geoErr.Message, "type": geoErr.Type.String()})
		} else {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}

		return
	}

	if result == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})

		return
	}

	payload := gin.H{
		"found":        true,
		"road_address": result.RoadAddress,
		"address":      result.Address,
	}

	if details {
		fields := result.DetailFields()
		for i, col := range DetailColumns() {
			payload[col] = fields[i]
		}
	}

	c.JSON(http.StatusOK, payload)
}
