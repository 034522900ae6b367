package config

import (
	"encoding/json"
	"os"

	"github.com/reddsec/scoreboard/internal/flagx"
	"github.com/reddsec/scoreboard/internal/timex"
)

// JsonConfig is the DTO for reading JSON configuration files. It uses
// timex.Duration for interval fields so both "5m" strings and integer
// nanoseconds parse. After unmarshalling, set fields are copied into the
// runtime Config.
type JsonConfig struct {
	Addr                 *string         `json:"addr"`
	DatabaseDSN          *string         `json:"database_dsn"`
	SecretKey            *string         `json:"secret_key"`
	SessionTokenValidity *timex.Duration `json:"session_token_validity"`
	PendingSignupTTL     *timex.Duration `json:"pending_signup_ttl"`
	PrimaryOrigin        *string         `json:"primary_origin"`
	AllowedOrigins       []string        `json:"allowed_origins"`
	ResendAPIKey         *string         `json:"resend_api_key"`
	ResendEndpoint       *string         `json:"resend_endpoint"`
	MailFrom             *string         `json:"mail_from"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. Absent flags mean no file is
// loaded; unreadable or invalid files panic. Fields omitted from the file
// keep their current values.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	applyJson(config, c)
}

func applyJson(config *Config, c *JsonConfig) {
	if c.Addr != nil {
		config.Addr = *c.Addr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionTokenValidity != nil {
		config.SessionTokenValidity = c.SessionTokenValidity.Duration
	}
	if c.PendingSignupTTL != nil {
		config.PendingSignupTTL = c.PendingSignupTTL.Duration
	}
	if c.PrimaryOrigin != nil {
		config.PrimaryOrigin = *c.PrimaryOrigin
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.ResendAPIKey != nil {
		config.ResendAPIKey = *c.ResendAPIKey
	}
	if c.ResendEndpoint != nil {
		config.ResendEndpoint = *c.ResendEndpoint
	}
	if c.MailFrom != nil {
		config.MailFrom = *c.MailFrom
	}
}
