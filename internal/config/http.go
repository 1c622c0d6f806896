package config

import "time"

type HTTP struct {
	BaseURL string  `env:"BASE_URL,expand" envDefault:"/"`
	Address string  `env:"ADDRESS,expand" envDefault:":3002"`
	Session Session `envPrefix:"SESSION_"`
	// MetricsToken protects the /metrics endpoint when set
	MetricsToken string `env:"METRICS_TOKEN,expand"`
	// ShutdownTimeout bounds the wait for in-flight requests on shutdown
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Session struct {
	Name   string   `env:"NAME" envDefault:"burnin_session"`
	Keys   []string `env:"KEYS" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"720h"`
}
