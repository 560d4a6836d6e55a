package config

import (
	"os"
	"time"
)

const (
	appNameVar       = "APP_NAME"
	folderEnvVar     = "FOLDER"
	storeDriverVar   = "STORE_DRIVER"
	adminUserVar     = "ADMIN_USERNAME"
	adminPasswordVar = "ADMIN_PASSWORD"
	latencyVar       = "SIMULATED_LATENCY"
	logLevelVar      = "LOG_LEVEL"
)

type EnvVars struct{}

var _ Config = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Field Visit Tracker")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

func (EnvVars) GetStoreDriver() StoreDriver {
	if GetEnv(storeDriverVar, string(DriverFile)) == string(DriverSQLite) {
		return DriverSQLite
	}
	return DriverFile
}

// The default administrator credentials are the inherited demo pair. The
// weak default is deliberate; override via environment when it matters.
func (EnvVars) GetAdminUsername() string {
	return GetEnv(adminUserVar, "admin")
}

func (EnvVars) GetAdminPassword() string {
	return GetEnv(adminPasswordVar, "admin")
}

// GetLatency returns the artificial delay applied before each backend
// operation. Zero by default; the delay only exists to pace UI feedback.
func (EnvVars) GetLatency() time.Duration {
	d, err := time.ParseDuration(GetEnv(latencyVar, "0"))
	if err != nil {
		return 0
	}
	return d
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
