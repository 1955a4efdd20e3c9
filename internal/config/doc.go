// Package config provides configuration loading, merging, and validation
// facilities for the catalog node and the remote merge store.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the catalog node and
// [GetRemoteConfig] for the standalone remote store.
package config
