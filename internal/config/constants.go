// internal/config/constants.go
package config

import "time"

const (
	AppName    = "golf-stat-keep"
	AppVersion = "0.4.0"
)

const (
	DefaultServerPort              = ":8080"
	DefaultLogLevel                = "info"
	DefaultLogFormat               = "json"
	DefaultAuthEnabled             = false
	DefaultDatabaseMigrate         = true
	DefaultRecentRoundsLimit       = 5
	DefaultScoreDistributionRounds = 5
	DefaultTimezone                = "UTC"
	DefaultPrefillScorecard        = true
	DefaultRedisTTL                = 10 * time.Minute
)
