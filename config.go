package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type config struct {
	AccessToken string `env:"ACCESS_TOKEN"`
	Database    string `env:"BRIDGESCORE_DATABASE" envDefault:"sqlite"`
	Filename    string `env:"BRIDGESCORE_FILENAME" envDefault:"bridgescore.sql"`
	MaxVP       int    `env:"BRIDGESCORE_MAX_VP" envDefault:"20"`
	Places      int    `env:"BRIDGESCORE_PLACES" envDefault:"2"`
	Discrete    bool   `env:"BRIDGESCORE_DISCRETE"`
	Debug       bool   `env:"BRIDGESCORE_DEBUG"`
}

func loadConfig() (config, error) {
	var c config
	if err := env.Parse(&c); err != nil {
		return c, errors.Wrap(err, "unable to parse environment")
	}

	return c, nil
}

func (c config) settings() settings {
	return settings{MaxVP: c.MaxVP, Places: c.Places, Discrete: c.Discrete}
}
