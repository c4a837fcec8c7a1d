package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/appengine-ltd/pondside/internal/game"
)

const (
	DefaultProfileFile  = "pondside-profile.json"
	defaultCatchLogFile = "pondside-catches.db"

	profileFormatVersion = 1
)

type profilePayload struct {
	FormatVersion int          `json:"format_version"`
	SavedAt       time.Time    `json:"saved_at"`
	Profile       game.Profile `json:"profile"`
}

// loadProfile reads a saved profile. A missing or unreadable save returns
// nil with no error so the caller starts fresh; a save written by a newer
// build is refused rather than silently mangled.
func loadProfile(path string) (*game.Profile, error) {
	if path == "" {
		path = DefaultProfileFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var payload profilePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, nil
	}
	if payload.FormatVersion > profileFormatVersion {
		return nil, fmt.Errorf("profile format %d is newer than this build supports", payload.FormatVersion)
	}
	p := payload.Profile
	p.Normalize()
	return &p, nil
}

func saveProfile(path string, p *game.Profile) error {
	if path == "" {
		path = DefaultProfileFile
	}
	payload := profilePayload{
		FormatVersion: profileFormatVersion,
		SavedAt:       time.Now().UTC(),
		Profile:       *p,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
