package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration required by the dialer process.
// All values must come from env (or an env-file loaded before Load is called).
// No business logic should depend on raw environment variables.
type Config struct {
	App    AppConfig
	Twilio TwilioConfig
	Call   CallConfig
	HTTP   HTTPConfig
}

type AppConfig struct {
	Env  string
	Port int
}

// TwilioConfig identifies the account, the API key pair used to sign access
// tokens, and the TwiML application the browser client dials through.
type TwilioConfig struct {
	AccountSID   string
	APIKeySID    string
	APIKeySecret string
	TwiMLAppSID  string
	TokenTTL     time.Duration
}

// CallConfig describes the single fixed call destination.
type CallConfig struct {
	// SIPAddress is the dial target, normally a sip: URI.
	SIPAddress string
	// CallerID serves both as the access-token identity and the TwiML callerId.
	CallerID string
}

type HTTPConfig struct {
	// WebhookPath is the single path segment under /webhooks/ that Twilio posts to.
	WebhookPath string
	// StaticDir is the on-disk directory re-exposing the vendor SDK bundle.
	StaticDir string
}

const (
	defaultPort        = 3000
	defaultEnv         = "local"
	defaultWebhookPath = "voice"
	defaultCallerID    = "browser-dialer"
	defaultTokenTTL    = time.Hour
	defaultStaticDir   = "web/static"
)

func Load() (Config, error) {
	c := Config{}
	var parseErrs []error

	c.App.Env = strings.TrimSpace(os.Getenv("APP_ENV"))
	{
		n, err := optionalInt("APP_PORT")
		if err != nil {
			parseErrs = append(parseErrs, err)
		}
		c.App.Port = n
	}

	c.Twilio.AccountSID = strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID"))
	c.Twilio.APIKeySID = strings.TrimSpace(os.Getenv("TWILIO_API_KEY"))
	c.Twilio.APIKeySecret = os.Getenv("TWILIO_API_SECRET")
	c.Twilio.TwiMLAppSID = strings.TrimSpace(os.Getenv("TWILIO_TWIML_APP_SID"))
	{
		d, err := optionalDuration("TOKEN_TTL")
		if err != nil {
			parseErrs = append(parseErrs, err)
		}
		c.Twilio.TokenTTL = d
	}

	c.Call.SIPAddress = strings.TrimSpace(os.Getenv("SIP_ADDRESS"))
	c.Call.CallerID = strings.TrimSpace(os.Getenv("CALLER_ID"))

	c.HTTP.WebhookPath = strings.TrimSpace(os.Getenv("WEBHOOK_PATH"))
	c.HTTP.StaticDir = strings.TrimSpace(os.Getenv("STATIC_DIR"))

	if err := joinErrors(parseErrs); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks required fields and applies defaults for optional ones.
// Pointer receiver so the applied defaults stick.
func (c *Config) Validate() error {
	var errs []error

	if c.App.Env == "" {
		c.App.Env = defaultEnv
	} else if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port == 0 {
		c.App.Port = defaultPort
	}
	if c.App.Port < 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %d", c.App.Port))
	}

	if c.Twilio.AccountSID == "" {
		errs = append(errs, errors.New("TWILIO_ACCOUNT_SID is required"))
	}
	if c.Twilio.APIKeySID == "" {
		errs = append(errs, errors.New("TWILIO_API_KEY is required"))
	}
	if strings.TrimSpace(c.Twilio.APIKeySecret) == "" {
		errs = append(errs, errors.New("TWILIO_API_SECRET is required"))
	}
	if c.Twilio.TwiMLAppSID == "" {
		errs = append(errs, errors.New("TWILIO_TWIML_APP_SID is required"))
	}
	if c.Twilio.TokenTTL <= 0 {
		// Twilio caps token lifetime at 24h; one hour is the SDK default.
		c.Twilio.TokenTTL = defaultTokenTTL
	}

	if c.Call.SIPAddress == "" {
		errs = append(errs, errors.New("SIP_ADDRESS is required"))
	}
	if c.Call.CallerID == "" {
		c.Call.CallerID = defaultCallerID
	}

	if c.HTTP.WebhookPath == "" {
		c.HTTP.WebhookPath = defaultWebhookPath
	}
	if strings.Contains(c.HTTP.WebhookPath, "/") {
		// Keep it a single segment so the status route derives cleanly.
		errs = append(errs, fmt.Errorf("WEBHOOK_PATH must be a single path segment, got %q", c.HTTP.WebhookPath))
	}
	if c.HTTP.StaticDir == "" {
		c.HTTP.StaticDir = defaultStaticDir
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// VoiceWebhookRoute is the full path Twilio posts voice webhooks to.
func (c Config) VoiceWebhookRoute() string {
	return "/webhooks/" + c.HTTP.WebhookPath
}

// StatusCallbackRoute is the full path Twilio posts status callbacks to.
func (c Config) StatusCallbackRoute() string {
	return c.VoiceWebhookRoute() + "/status"
}

func optionalInt(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func optionalDuration(key string) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 1h or 30m, got %q", key, v)
	}
	return d, nil
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
