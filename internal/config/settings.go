package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Settings contains the application config
type Settings struct {
	Port            int           `env:"PORT" envDefault:"3000" validate:"gt=0"`
	MonPort         int           `env:"MON_PORT" envDefault:"8888" validate:"gt=0"`
	EnablePprof     bool          `env:"ENABLE_PPROF"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"messenger-relay"`
	OutboundTimeout time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Facebook   FacebookSettings   `envPrefix:"FACEBOOK_"`
	Dialogflow DialogflowSettings `envPrefix:"DIALOGFLOW_"`
}

// FacebookSettings holds the Messenger platform credentials.
type FacebookSettings struct {
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN" validate:"required"`
	VerifyToken     string `env:"VERIFY_TOKEN" validate:"required"`
	GraphAPIURL     string `env:"GRAPH_API_URL" envDefault:"https://graph.facebook.com/v2.6" validate:"required,url"`
}

// DialogflowSettings holds the intent detection settings.
// An empty ClientAccessToken puts the relay in echo mode.
type DialogflowSettings struct {
	ClientAccessToken string `env:"CLIENT_ACCESS_TOKEN"`
	APIURL            string `env:"API_URL" envDefault:"https://api.dialogflow.com/v1" validate:"required,url"`
	Lang              string `env:"LANG" envDefault:"en" validate:"required"`
	ProtocolVersion   string `env:"PROTOCOL_VERSION" envDefault:"20150910" validate:"required"`
}

// EchoMode reports whether intent detection is disabled.
func (s *Settings) EchoMode() bool {
	return s.Dialogflow.ClientAccessToken == ""
}

// Validate checks that the loaded settings are usable.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
