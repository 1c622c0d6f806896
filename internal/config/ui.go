package config

import "time"

type UI struct {
	// GitHubRepository is used to shorten pull request and commit links
	GitHubRepository string `env:"GITHUB_REPOSITORY" envDefault:"paritytech/polkadot"`
	// HealthMaxAge is the poll result age above which /health fails
	HealthMaxAge time.Duration `env:"HEALTH_MAX_AGE" envDefault:"1m"`
}

type I18n struct {
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
}
