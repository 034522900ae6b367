package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyJson_OverridesOnlySetFields(t *testing.T) {
	var c Config
	c.LoadDefaults()

	raw := `{
		"addr": ":7070",
		"secret_key": "json-secret",
		"session_token_validity": "90m",
		"allowed_origins": ["https://game.example"]
	}`

	jc := &JsonConfig{}
	require.NoError(t, json.Unmarshal([]byte(raw), jc))

	applyJson(&c, jc)

	assert.Equal(t, c.Addr, ":7070")
	assert.Equal(t, c.SecretKey, "json-secret")
	assert.Equal(t, c.SessionTokenValidity, 90*time.Minute)
	assert.Equal(t, c.AllowedOrigins, []string{"https://game.example"})

	// untouched fields keep defaults
	assert.Equal(t, c.PendingSignupTTL, 5*time.Minute)
	assert.Equal(t, c.PrimaryOrigin, "https://reddsec.com")
}

func TestApplyJson_EmptyFileChangesNothing(t *testing.T) {
	var c Config
	c.LoadDefaults()
	before := c

	applyJson(&c, &JsonConfig{})

	assert.Equal(t, before.Addr, c.Addr)
	assert.Equal(t, before.DatabaseDSN, c.DatabaseDSN)
	assert.Equal(t, before.AllowedOrigins, c.AllowedOrigins)
}
