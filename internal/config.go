package internal

import "time"

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`

	PushGatewayURL string        `env:"PUSH_GATEWAY_URL,required=true"`
	PushServiceKey string        `env:"PUSH_SERVICE_KEY,required=true"`
	PushTokenTTL   time.Duration `env:"PUSH_TOKEN_TTL,required=true"`
	SendTimeout    time.Duration `env:"SEND_TIMEOUT,required=true"`

	// PrivilegedDisplayName is the single persona shared by all
	// privileged senders; DefaultSenderName covers missing profiles.
	PrivilegedDisplayName string `env:"PRIVILEGED_DISPLAY_NAME,required=true"`
	DefaultSenderName     string `env:"DEFAULT_SENDER_NAME,required=true"`

	DebugPort int `env:"DEBUG_PORT,required=true"`
}
