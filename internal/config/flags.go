package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a                 dashboard address [host]:[port]
//	-grpc-address      health endpoint address [host]:[port]
//	-d                 database DSN
//	-c / -config       JSON config file path
//	-clients-api       Clients API base URL
//	-clients-api-token Clients API bearer token
//	-price-api         price API base URL
//	-token-sign-key    session token signing key
//	-token-issuer      session token issuer
//	-token-duration    session token lifetime (e.g. "12h")
//	-request-timeout   inbound request timeout (e.g. "30s")
//	-adapter-timeout   outbound request timeout (e.g. "5s")
//	-hash-key          CSRF HMAC key
//	-check-interval    upstream health check interval
//	-locale            default UI locale
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-wallet-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var clientsAPI, clientsAPIToken, priceAPI string
	var tokenSignKey, tokenIssuer, hashKey, locale string
	var tokenDuration, requestTimeout, adapterTimeout, checkInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&clientsAPI, "clients-api", "", "Clients API base URL")
	fs.StringVar(&clientsAPIToken, "clients-api-token", "", "Clients API bearer token")
	fs.StringVar(&priceAPI, "price-api", "", "Price API base URL")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 12h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Upstream request timeout (e.g., 5s)")
	fs.StringVar(&hashKey, "hash-key", "", "CSRF hash key")
	fs.DurationVar(&checkInterval, "check-interval", 0, "Upstream health check interval")
	fs.StringVar(&locale, "locale", "", "Default UI locale")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
			DefaultLocale: locale,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			ClientsAPIAddress: clientsAPI,
			ClientsAPIToken:   clientsAPIToken,
			PriceAPIAddress:   priceAPI,
			RequestTimeout:    adapterTimeout,
		},
		Workers:      Workers{CheckInterval: checkInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses s of form host:port. The host must be "localhost", empty, or a
// valid IP address; the port must be positive.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
