package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var c Config
	c.App.RecentRoundsLimit = -1

	applyDefaults(&c)

	assert.Equal(t, DefaultServerPort, c.Server.Port)
	assert.Equal(t, DefaultRecentRoundsLimit, c.App.RecentRoundsLimit)
	assert.Equal(t, DefaultScoreDistributionRounds, c.App.ScoreDistributionRounds)
	assert.Equal(t, "UTC", c.App.Timezone)
	assert.Equal(t, DefaultRedisTTL, c.Redis.TTL)
}

func TestAppConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, AppConfig{}.Location())
	assert.Equal(t, time.UTC, AppConfig{Timezone: "Not/AZone"}.Location())
}
