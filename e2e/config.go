package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIURL  string `envconfig:"E2E_CHAT_API_URL"`
	PushURL string `envconfig:"E2E_CHAT_PUSH_URL"`
	Token   string `envconfig:"E2E_CHAT_TOKEN"`
	// E2E_SERVER_ID / E2E_CHANNEL_ID pick the channel the scenario writes to
	ServerID  string `envconfig:"E2E_SERVER_ID"`
	ChannelID string `envconfig:"E2E_CHANNEL_ID"`
	// E2E_DEBUG_JSON dumps the session view as JSON after each step
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// Enabled reports whether a live chat server was configured.
func (c Config) Enabled() bool {
	return c.APIURL != "" && c.PushURL != "" && c.Token != ""
}
