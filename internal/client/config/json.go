package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/awarddeck/internal/flagx"
	"github.com/dmitrijs2005/awarddeck/internal/timex"
)

// JsonConfig is the DTO for reading the optional JSON configuration file.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	APIToken           string         `json:"api_token"`
	DraftDBPath        string         `json:"draft_db_path"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flags; absent flags mean no JSON overlay. Read or parse failures
// panic, matching the server config behavior.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.APIToken = c.APIToken
	config.DraftDBPath = c.DraftDBPath
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
