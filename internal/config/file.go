package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the config file. The same
// layout is accepted as JSON and as YAML.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer" yaml:"token_issuer"`
		Version      string `json:"version" yaml:"version"`
		LogFile      string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Remote struct {
			Driver    string `json:"driver" yaml:"driver"`
			DSN       string `json:"dsn" yaml:"dsn"`
			Namespace string `json:"namespace" yaml:"namespace"`
			S3        struct {
				Bucket          string `json:"bucket" yaml:"bucket"`
				Prefix          string `json:"prefix" yaml:"prefix"`
				Region          string `json:"region" yaml:"region"`
				Endpoint        string `json:"endpoint" yaml:"endpoint"`
				AccessKeyID     string `json:"access_key_id" yaml:"access_key_id"`
				SecretAccessKey string `json:"secret_access_key" yaml:"secret_access_key"`
			} `json:"s3,omitempty" yaml:"s3,omitempty"`
		} `json:"remote,omitempty" yaml:"remote,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Sync struct {
		Enabled         bool     `json:"enabled" yaml:"enabled"`
		Endpoint        string   `json:"endpoint" yaml:"endpoint"`
		APIKey          string   `json:"api_key" yaml:"api_key"`
		RetryMax        int      `json:"retry_max" yaml:"retry_max"`
		Timeout         Duration `json:"timeout" yaml:"timeout"`
		FlushOnShutdown bool     `json:"flush_on_shutdown" yaml:"flush_on_shutdown"`
	} `json:"sync,omitempty" yaml:"sync,omitempty"`

	Workers struct {
		FlushInterval Duration `json:"flush_interval" yaml:"flush_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a JSON or YAML config file. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer f.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: fileCfg.App.TokenSignKey,
			TokenIssuer:  fileCfg.App.TokenIssuer,
			Version:      fileCfg.App.Version,
			LogFile:      fileCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
			Remote: Remote{
				Driver:    fileCfg.Storage.Remote.Driver,
				DSN:       fileCfg.Storage.Remote.DSN,
				Namespace: fileCfg.Storage.Remote.Namespace,
				S3: S3{
					Bucket:          fileCfg.Storage.Remote.S3.Bucket,
					Prefix:          fileCfg.Storage.Remote.S3.Prefix,
					Region:          fileCfg.Storage.Remote.S3.Region,
					Endpoint:        fileCfg.Storage.Remote.S3.Endpoint,
					AccessKeyID:     fileCfg.Storage.Remote.S3.AccessKeyID,
					SecretAccessKey: fileCfg.Storage.Remote.S3.SecretAccessKey,
				},
			},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			GRPCAddress:    fileCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
		Sync: Sync{
			Enabled:         fileCfg.Sync.Enabled,
			Endpoint:        fileCfg.Sync.Endpoint,
			APIKey:          fileCfg.Sync.APIKey,
			RetryMax:        fileCfg.Sync.RetryMax,
			Timeout:         time.Duration(fileCfg.Sync.Timeout),
			FlushOnShutdown: fileCfg.Sync.FlushOnShutdown,
		},
		Workers: Workers{
			FlushInterval: time.Duration(fileCfg.Workers.FlushInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports decoding from
// strings like "1h", "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
