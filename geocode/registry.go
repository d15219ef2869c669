// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jusogo/jusogo/utils"
)

// ErrUnknownProvider is returned for provider names outside the supported set.
var ErrUnknownProvider = errors.New("unknown provider")

// Names of the supported providers.
const (
	ProviderKakao = "kakao"
	ProviderNaver = "naver"
)

// Registry constructs and caches one adapter per provider. It is created
// once at startup and passed by reference to whatever needs providers;
// instances live for the registry's lifetime, with no eviction.
type Registry struct {
	mu        sync.Mutex
	options   *ClientOptions
	providers map[string]Provider
}

// NewRegistry creates an empty registry sharing the given client options
// across adapters.
func NewRegistry(options *ClientOptions) *Registry {
	return &Registry{
		options:   options,
		providers: make(map[string]Provider),
	}
}

// Provider returns the adapter for the given name (case-insensitive,
// trimmed), constructing and caching it on first use. Credential
// resolution happens here, so a misconfigured provider fails before any
// network activity.
func (r *Registry) Provider(name string) (Provider, error) {
	key := utils.LowerASCIIFolding(name)

	switch key {
	case ProviderKakao, ProviderNaver:
	default:
		return nil, fmt.Errorf("%w %q: supported providers are %q and %q",
			ErrUnknownProvider, name, ProviderKakao, ProviderNaver)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.providers[key]; ok {
		return p, nil
	}

	var (
		p   Provider
		err error
	)

	switch key {
	case ProviderKakao:
		var creds KakaoCredentials

		creds, err = ResolveKakaoCredentials()
		if err == nil {
			p, err = NewKakao(creds, r.options)
		}
	case ProviderNaver:
		var creds NaverCredentials

		creds, err = ResolveNaverCredentials()
		if err == nil {
			p, err = NewNaver(creds, r.options)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("constructing %s adapter: %w", key, err)
	}

	r.providers[key] = p

	return p, nil
}
