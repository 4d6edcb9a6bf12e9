package authclient

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/sethvargo/go-envconfig"
)

var _ Config = &ClientConfig{}

// ClientConfig is the concrete Config, loadable from the environment.
type ClientConfig struct {
	BaseURL        string        `env:"STOREFRONT_API_URL, default=http://localhost:4002"`
	RequestTimeout time.Duration `env:"STOREFRONT_API_TIMEOUT, default=10s"`
	Debug          bool          `env:"STOREFRONT_API_DEBUG"`
}

// NewConfigFromEnv loads client configuration from STOREFRONT_* variables.
func NewConfigFromEnv(ctx context.Context) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "unable to load client config").
			WithCode(errors.CodeBadRequest)
	}
	return cfg, nil
}

func (c *ClientConfig) GetBaseURL() string {
	return c.BaseURL
}

func (c *ClientConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

func (c *ClientConfig) GetDebug() bool {
	return c.Debug
}
