package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/geofield/borelog/internal/flagx"
	"github.com/geofield/borelog/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StorePath      string         `json:"store_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. Absent flag means no JSON is loaded. Fields left empty
// in the file keep their current values. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
}
