package config

import "time"

type Poll struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"5s"`
}
