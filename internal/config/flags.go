package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	return os.Args[1:]
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d catalog database DSN
//	-remote-driver remote document store driver (postgres, sqlite, s3)
//	-remote-dsn remote document store DSN or sqlite file path
//	-c/-config json or yaml file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-endpoint remote merge store URL
//	-sync-api-key pre-shared sync API key
//	-sync-timeout outbound sync timeout (e.g., "4s")
//	-flush-interval background flush period (e.g., "5m")
//	-log-file rotated log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("plms", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, remoteDriver, remoteDSN string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout, syncTimeout, flushInterval time.Duration
	var syncEndpoint, syncAPIKey string
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Catalog database DSN")
	fs.StringVar(&remoteDriver, "remote-driver", "", "Remote document store driver")
	fs.StringVar(&remoteDSN, "remote-dsn", "", "Remote document store DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "Config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&syncEndpoint, "sync-endpoint", "", "Remote merge store URL")
	fs.StringVar(&syncAPIKey, "sync-api-key", "", "Sync API key")
	fs.DurationVar(&syncTimeout, "sync-timeout", 0, "Outbound sync timeout")
	fs.DurationVar(&flushInterval, "flush-interval", 0, "Background flush interval")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			LogFile:      logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Remote: Remote{
				Driver: remoteDriver,
				DSN:    remoteDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Endpoint: syncEndpoint,
			APIKey:   syncAPIKey,
			Timeout:  syncTimeout,
		},
		Workers:      Workers{FlushInterval: flushInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
