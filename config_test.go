package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcshearer/bridgescore/scoring"
)

func defaultConfig() config {
	return config{
		Database: "sqlite",
		Filename: "bridgescore.sql",
		MaxVP:    scoring.DefaultMaxVP,
		Places:   2,
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "")

	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), c)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "xoxb-token")
	t.Setenv("BRIDGESCORE_DATABASE", "boltdb")
	t.Setenv("BRIDGESCORE_MAX_VP", "30")
	t.Setenv("BRIDGESCORE_DISCRETE", "true")

	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "xoxb-token", c.AccessToken)
	assert.Equal(t, "boltdb", c.Database)
	assert.Equal(t, settings{MaxVP: 30, Places: 2, Discrete: true}, c.settings())
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("BRIDGESCORE_PLACES", "two")

	_, err := loadConfig()
	assert.Error(t, err)
}
