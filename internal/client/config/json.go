package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/portfolioadmin/internal/flagx"
	"github.com/dmitrijs2005/portfolioadmin/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Empty fields leave the
// current value untouched.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	DatabasePath   string         `json:"database_path"`
	LogLevel       string         `json:"log_level"`
	ToastDuration  timex.Duration `json:"toast_duration"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays cfg with the file named by -c/-config. It panics on read
// or decode errors; no flag means no change.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.BaseURL, jc.BaseURL)
	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)

	if jc.ToastDuration.Duration > 0 {
		cfg.ToastDuration = jc.ToastDuration.Duration
	}
}
