// Package auth persists the YouTube API key in the system keyring.
package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	service = "shua-cli"
	user    = "youtube-api-key"
)

// ErrNoKey is returned when no key has been stored.
var ErrNoKey = keyring.ErrNotFound

// SetAPIKey stores the API key.
func SetAPIKey(apiKey string) error {
	if apiKey == "" {
		return errors.New("empty api key")
	}
	return keyring.Set(service, user, apiKey)
}

// GetAPIKey returns the stored API key.
func GetAPIKey() (string, error) {
	return keyring.Get(service, user)
}

// DeleteAPIKey removes the stored API key.
func DeleteAPIKey() error {
	return keyring.Delete(service, user)
}

// LookupAPIKey prefers explicit configuration and falls back to the keyring.
// An empty result means anonymous-only searching.
func LookupAPIKey(configured string) string {
	if configured != "" {
		return configured
	}
	stored, err := GetAPIKey()
	if err != nil {
		return ""
	}
	return stored
}
