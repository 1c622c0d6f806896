package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger Logger `envPrefix:"LOGGER_"`
	HTTP   HTTP   `envPrefix:"HTTP_"`
	GitLab GitLab `envPrefix:"GITLAB_"`
	OAuth  OAuth  `envPrefix:"OAUTH_"`
	Poll   Poll   `envPrefix:"POLL_"`
	UI     UI     `envPrefix:"UI_"`
	I18n   I18n   `envPrefix:"I18N_"`

	// Admins are the emails allowed to manage manual deployments
	Admins []string `env:"ADMINS" envSeparator:","`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "BURNIN_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
