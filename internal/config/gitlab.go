package config

import "time"

type GitLab struct {
	URL           string        `env:"URL,expand" envDefault:"https://gitlab.example.com"`
	Project       string        `env:"PROJECT,expand" envDefault:"burn-in-tests/deployments"`
	Branch        string        `env:"BRANCH,expand" envDefault:"master"`
	ReadOnlyToken string        `env:"READONLY_TOKEN,expand"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"10s"`
	Concurrency   int           `env:"CONCURRENCY" envDefault:"8"`
}

type OAuth struct {
	ClientID     string   `env:"CLIENT_ID,expand"`
	ClientSecret string   `env:"CLIENT_SECRET,expand"`
	RedirectURL  string   `env:"REDIRECT_URL,expand" envDefault:"http://localhost:3002/auth/callback"`
	Scopes       []string `env:"SCOPES" envSeparator:"," envDefault:"api"`
}
