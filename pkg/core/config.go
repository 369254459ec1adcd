package core

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Default connection settings for the exchange.
const (
	// DefaultAPIRoot is the production REST API root.
	DefaultAPIRoot = "https://www.namebase.io/api"
	// DefaultAPIVersion is the REST API version path segment.
	DefaultAPIVersion = "/v0"
	// DefaultWSRoot is the production websocket host.
	DefaultWSRoot = "wss://app.namebase.io:443"
	// DefaultTimeout applies to every REST request.
	DefaultTimeout = 30 * time.Second
)

// Credentials holds the API key pair used for Basic authentication.
type Credentials struct {
	// AccessKey is the public API key identifier.
	AccessKey string `json:"access_key" validate:"required"`
	// SecretKey is the private API key.
	SecretKey string `json:"secret_key" validate:"required"`
}

// BasicAuth returns the base64 encoding of "accessKey:secretKey" as carried
// in the Authorization header.
func (c *Credentials) BasicAuth() string {
	return base64.StdEncoding.EncodeToString([]byte(c.AccessKey + ":" + c.SecretKey))
}

// String returns a masked representation safe for logging.
func (c *Credentials) String() string {
	return fmt.Sprintf("Credentials{AccessKey:%s}", maskKey(c.AccessKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains all configuration options for an exchange client.
// The credentials and base URL are immutable once a client is constructed.
type Config struct {
	// APIRoot is the scheme and host of the REST API.
	APIRoot string `json:"api_root" validate:"required,url"`
	// APIVersion is appended to APIRoot to form the base URL.
	APIVersion string `json:"api_version" validate:"required,startswith=/"`
	// WSRoot is the websocket host used by the streaming subscriber.
	WSRoot string `json:"ws_root" validate:"required"`
	// Credentials is the API key pair. Optional: public market data
	// endpoints work without it.
	Credentials *Credentials `json:"credentials,omitempty"`
	// Timeout is the maximum duration for each HTTP request.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`
	// LogLevel controls client logging verbosity.
	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config pointing at the production API with a 30
// second request timeout.
func DefaultConfig() *Config {
	return &Config{
		APIRoot:    DefaultAPIRoot,
		APIVersion: DefaultAPIVersion,
		WSRoot:     DefaultWSRoot,
		Timeout:    DefaultTimeout,
		LogLevel:   "info",
	}
}

var validate = validator.New()

// Validate checks the configuration, including the credential pair when set.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Credentials != nil {
		if err := validate.Struct(c.Credentials); err != nil {
			return err
		}
	}
	return nil
}

// BaseURL returns the full REST base URL (APIRoot + APIVersion).
func (c *Config) BaseURL() string {
	return c.APIRoot + c.APIVersion
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithAPIRoot sets the REST API root and returns the config for chaining.
func (c *Config) WithAPIRoot(root string) *Config {
	c.APIRoot = root
	return c
}

// WithWSRoot sets the websocket host and returns the config for chaining.
func (c *Config) WithWSRoot(root string) *Config {
	c.WSRoot = root
	return c
}
