package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Config holds the ranking defaults of a node. Zero fields keep the
// library defaults.
type Config struct {
	Damping    float64 `json:"damping"`
	Alpha      float64 `json:"alpha"`
	Beta       float64 `json:"beta"`
	MaxIter    int     `json:"max_iter"`
	Tol        float64 `json:"tol"`
	Normalizer string  `json:"normalizer"`
}

// Load config.json (damping factors, iteration cap, tolerance, normalizer).
// A missing file yields an empty Config.
func LoadConfiguration(path string) (config Config, err error) {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		WarnLog("config", "%s does not exist, using defaults", path)
		return Config{}, nil
	}
	if err != nil {
		err = fmt.Errorf("read: %v", err)
		return
	}
	// Parse config.json into Config struct
	if err = json.Unmarshal(bytes, &config); err != nil {
		err = fmt.Errorf("parse: %v", err)
		return
	}
	return
}
