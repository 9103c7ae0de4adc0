package config

import (
	"errors"
	"flag"
	"net"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-vegvesen-url vehicle registry base URL
//	-vegvesen-timeout vehicle registry request timeout
//	-ai-url suggestion service base URL
//	-ai-key suggestion service API key
//	-ai-model suggestion service model name
//	-ai-timeout suggestion service request timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var vegvesenURL string
	var vegvesenTimeout time.Duration
	var aiURL string
	var aiKey string
	var aiModel string
	var aiTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&vegvesenURL, "vegvesen-url", "", "Vehicle registry base URL")
	flag.DurationVar(&vegvesenTimeout, "vegvesen-timeout", 0, "Vehicle registry request timeout")
	flag.StringVar(&aiURL, "ai-url", "", "Suggestion service base URL")
	flag.StringVar(&aiKey, "ai-key", "", "Suggestion service API key")
	flag.StringVar(&aiModel, "ai-model", "", "Suggestion service model name")
	flag.DurationVar(&aiTimeout, "ai-timeout", 0, "Suggestion service request timeout")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Vegvesen: Vegvesen{
			BaseURL: vegvesenURL,
			Timeout: vegvesenTimeout,
		},
		AI: AI{
			BaseURL: aiURL,
			APIKey:  aiKey,
			Model:   aiModel,
			Timeout: aiTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
