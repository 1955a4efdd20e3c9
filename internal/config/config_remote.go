package config

import (
	"fmt"
)

// RemoteConfig is the configuration view used by the standalone remote merge
// store binary.
type RemoteConfig struct {
	App App
	// Server contains listener addresses and timeouts.
	Server Server
	// Storage contains the snapshot document store settings.
	Storage Remote
	// APIKey is the pre-shared key callers must present.
	APIKey string
}

// GetRemoteConfig builds and validates the remote store view of the merged
// structured configuration.
func GetRemoteConfig() (*RemoteConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(commandLineArgs()).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	remoteCfg := newRemoteConfig(cfg)
	return remoteCfg, remoteCfg.validate()
}

func newRemoteConfig(cfg *StructuredConfig) *RemoteConfig {
	return &RemoteConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage.Remote,
		APIKey:  cfg.Sync.APIKey,
	}
}
