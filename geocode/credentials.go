// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Environment variables holding provider credentials.
const (
	EnvKakaoRESTAPIKey = "KAKAO_REST_API_KEY"
	EnvNaverKeyID      = "NAVER_MAPS_API_KEY_ID"
	EnvNaverKey        = "NAVER_MAPS_API_KEY"
)

var dotEnvOnce sync.Once

// lookupEnv reads an environment variable, loading a local .env file once
// as a fallback source. Real environment variables always win: godotenv
// never overrides values that are already set.
func lookupEnv(name string) string {
	dotEnvOnce.Do(func() {
		// A missing .env file is the normal case.
		_ = godotenv.Load()
	})

	return os.Getenv(name)
}

// KakaoCredentials holds the Kakao REST API key.
type KakaoCredentials struct {
	APIKey string
}

// ResolveKakaoCredentials reads Kakao credentials from the environment,
// falling back to a local .env file.
func ResolveKakaoCredentials() (KakaoCredentials, error) {
	key := lookupEnv(EnvKakaoRESTAPIKey)
	if key == "" {
		return KakaoCredentials{}, fmt.Errorf(
			"kakao credentials missing: set %s in the environment or in a local .env file",
			EnvKakaoRESTAPIKey,
		)
	}

	return KakaoCredentials{APIKey: key}, nil
}

// NaverCredentials holds the NCP API gateway key pair.
type NaverCredentials struct {
	KeyID string
	Key   string
}

// ResolveNaverCredentials reads Naver credentials from the environment,
// falling back to a local .env file.
func ResolveNaverCredentials() (NaverCredentials, error) {
	keyID := lookupEnv(EnvNaverKeyID)
	key := lookupEnv(EnvNaverKey)

	if keyID == "" || key == "" {
		return NaverCredentials{}, fmt.Errorf(
			"naver credentials missing: set %s and %s in the environment or in a local .env file",
			EnvNaverKeyID, EnvNaverKey,
		)
	}

	return NaverCredentials{KeyID: keyID, Key: key}, nil
}
