// Package connector holds the SFTP writer configuration as the writer
// process receives it from the platform, together with the pure
// helpers applied to it at configuration time.
package connector

import (
	"encoding/json"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sftpconfig/internal/schema"
)

// AuthMethod tells the consumer which credential to hand to the SFTP
// client process.
type AuthMethod string

const (
	AuthPassword   AuthMethod = "password"
	AuthPrivateKey AuthMethod = "private_key"
)

// Config is a validated SFTP writer configuration. Field names follow
// the platform convention: '#'-prefixed keys are secrets.
type Config struct {
	Hostname   string `json:"hostname"`
	Port       int    `json:"port"`
	User       string `json:"user"`
	Password   string `json:"#pass"`
	PrivateKey string `json:"#private_key"`
	Path       string `json:"path,omitempty"`
	AppendDate bool   `json:"append_date,omitempty"`
	Debug      bool   `json:"debug,omitempty"`
}

// ParseConfig decodes a raw configuration object, applies schema
// defaults (port 22) and validates it against the SFTP writer form
// schema. All field errors are reported at once.
func ParseConfig(data []byte) (*Config, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	doc := schema.SftpWriter()
	raw = doc.ApplyDefaults(raw)

	if errs := doc.ValidateConfig(raw); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Auth resolves the credential precedence rule: a non-empty private
// key wins over the password.
func (c *Config) Auth() AuthMethod {
	if strings.TrimSpace(c.PrivateKey) != "" {
		return AuthPrivateKey
	}
	return AuthPassword
}

// EffectivePassword returns the password the consumer should use. It
// is empty under key auth, where the password must be ignored.
func (c *Config) EffectivePassword() string {
	if c.Auth() == AuthPrivateKey {
		return ""
	}
	return c.Password
}

// Addr returns the host:port dial address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Hostname, strconv.Itoa(c.Port))
}

// FixPath ensures the remote path carries exactly one trailing slash.
func FixPath(p string) string {
	return strings.TrimRight(p, "/") + "/"
}

// AppendTimestamp returns the "_YYYYMMDDhhmmss" suffix appended to
// uploaded file names when the append_date option is on, or the empty
// string when it is off. Timestamps are UTC.
func AppendTimestamp(enabled bool, t time.Time) string {
	if !enabled {
		return ""
	}
	return "_" + t.UTC().Format("20060102150405")
}

// RemoteName builds the destination name for a local file: remote
// path, base name, optional timestamp suffix, original extension.
func RemoteName(localPath string, cfg *Config, now time.Time) string {
	base := filepath.Base(localPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return FixPath(cfg.Path) + name + AppendTimestamp(cfg.AppendDate, now) + ext
}
