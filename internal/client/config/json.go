package config

import (
	"encoding/json"
	"os"

	"github.com/fitcoach/fitcoach/internal/flagx"
	"github.com/fitcoach/fitcoach/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the toast delay either as a string
// like "4s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL  string         `json:"api_base_url"`
	TokenDBPath string         `json:"token_db_path"`
	ToastDelay  timex.Duration `json:"toast_delay"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. Missing flag means no JSON layer.
// Read or unmarshal errors panic; the loader runs before any user session
// exists and a broken config file should stop startup.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.TokenDBPath != "" {
		cfg.TokenDBPath = jc.TokenDBPath
	}
	if jc.ToastDelay.Duration > 0 {
		cfg.ToastDelay = jc.ToastDelay.Duration
	}
}
