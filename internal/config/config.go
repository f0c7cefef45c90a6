package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the process reads from the environment.
type Config struct {
	RazorpayKeyID     string
	RazorpayKeySecret string

	EmailUser  string
	EmailPass  string
	AdminEmail string

	SMTPHost string
	SMTPPort int

	Port      string
	StaticDir string
}

// Load reads configuration from the environment. Gateway credentials are
// mandatory; mail credentials are not (the mailer runs disabled without
// them, see Config.MailEnabled).
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("STATIC_DIR", "client/dist")

	cfg := &Config{
		RazorpayKeyID:     v.GetString("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: v.GetString("RAZORPAY_KEY_SECRET"),
		EmailUser:         v.GetString("EMAIL_USER"),
		EmailPass:         v.GetString("EMAIL_PASS"),
		AdminEmail:        v.GetString("ADMIN_EMAIL"),
		SMTPHost:          v.GetString("SMTP_HOST"),
		SMTPPort:          v.GetInt("SMTP_PORT"),
		Port:              v.GetString("PORT"),
		StaticDir:         v.GetString("STATIC_DIR"),
	}

	var missing []string
	if cfg.RazorpayKeyID == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if cfg.RazorpayKeySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment: %s", strings.Join(missing, ", "))
	}

	// the configured sender identity doubles as the admin recipient
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.EmailUser
	}

	return cfg, nil
}

// MailEnabled reports whether SMTP credentials were provided.
func (c *Config) MailEnabled() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}
