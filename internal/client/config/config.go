package config

import "time"

// Config holds runtime settings for the admin console.
//
// Fields:
//   - BaseURL: root of the portfolio REST API (endpoint paths are appended).
//   - DatabasePath: SQLite file that keeps the session token between runs.
//   - LogLevel: diagnostics level (debug|info|warn|error).
//   - ToastDuration: how long a notice stays in the view before it is dismissed.
//   - S3*: optional object storage target for the "backup" command.
type Config struct {
	BaseURL       string
	DatabasePath  string
	LogLevel      string
	ToastDuration time.Duration

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.DatabasePath = "portfolio-admin.db"
	c.LogLevel = "info"
	c.ToastDuration = 3 * time.Second
	c.S3Region = "us-east-1"
}

// BackupEnabled reports whether enough S3 settings are present to upload.
func (c *Config) BackupEnabled() bool {
	return c.S3Bucket != "" && c.S3BaseEndpoint != ""
}

// LoadConfig applies defaults, then the optional JSON file, then flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
