package internal

import (
	"chat-session/contract"
	"chat-session/runtime"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StrategyFixed       = "fixed"
	StrategyExponential = "exponential"
)

type Config struct {
	APIURL       string `env:"CHAT_API_URL,required=true" validate:"required,url"`
	PushURL      string `env:"CHAT_PUSH_URL,required=true" validate:"required,url"`
	BootstrapURL string `env:"CHAT_BOOTSTRAP_URL"`
	Origin       string `env:"CHAT_ORIGIN,default=default" validate:"required"`

	StorePath       string `env:"CHAT_STORE_PATH"`
	ParentStorePath string `env:"CHAT_PARENT_STORE_PATH"`

	ServerID  string `env:"CHAT_SERVER_ID" validate:"omitempty,excludesall=0x7C"`
	ChannelID string `env:"CHAT_CHANNEL_ID" validate:"omitempty,excludesall=0x7C"`

	HistoryLimit   int           `env:"CHAT_HISTORY_LIMIT,default=50" validate:"min=1,max=500"`
	RequestTimeout time.Duration `env:"CHAT_REQUEST_TIMEOUT,default=10s" validate:"gt=0"`

	ReconnectStrategy    string        `env:"CHAT_RECONNECT_STRATEGY,default=fixed" validate:"oneof=fixed exponential"`
	ReconnectDelay       time.Duration `env:"CHAT_RECONNECT_DELAY,default=3s" validate:"gt=0"`
	ReconnectMaxDelay    time.Duration `env:"CHAT_RECONNECT_MAX_DELAY,default=1m" validate:"gtefield=ReconnectDelay"`
	ReconnectMaxAttempts int           `env:"CHAT_RECONNECT_MAX_ATTEMPTS,default=0" validate:"min=0"`

	TypingHorizon      time.Duration `env:"CHAT_TYPING_HORIZON,default=2s" validate:"gt=0"`
	RemoteTypingIdle   time.Duration `env:"CHAT_REMOTE_TYPING_IDLE,default=10s" validate:"min=0"`
	ValidationErrorTTL time.Duration `env:"CHAT_VALIDATION_ERROR_TTL,default=3s" validate:"gt=0"`
	ServerErrorTTL     time.Duration `env:"CHAT_SERVER_ERROR_TTL,default=5s" validate:"gt=0"`

	DebugPort int    `env:"CHAT_DEBUG_PORT,default=0" validate:"min=0,max=65535"`
	LogLevel  string `env:"LOG_LEVEL,default=INFO"`
}

// Validate checks the values the environment parser cannot.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// BackoffPolicy builds the reconnect policy selected by CHAT_RECONNECT_STRATEGY.
func (c Config) BackoffPolicy() contract.IBackoffPolicy {
	if c.ReconnectStrategy == StrategyExponential {
		return runtime.ExponentialBackoff{
			Base:        c.ReconnectDelay,
			Max:         c.ReconnectMaxDelay,
			MaxAttempts: c.ReconnectMaxAttempts,
		}
	}
	return runtime.NewFixedBackoff(c.ReconnectDelay)
}
