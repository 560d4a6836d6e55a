package config

import "time"

// StoreDriver selects the storage medium backing the three slots.
type StoreDriver string

const (
	DriverFile   StoreDriver = "file"
	DriverSQLite StoreDriver = "sqlite"
)

type Config interface {
	GetAppName() string
	GetDataFolder() string
	GetStoreDriver() StoreDriver
	GetAdminUsername() string
	GetAdminPassword() string
	GetLatency() time.Duration
	GetLogLevel() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}
