package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/payrollview/internal/flagx"
	"github.com/dmitrijs2005/payrollview/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent fields leave
// the current value untouched; timeout accepts "30s" or nanoseconds.
type JsonConfig struct {
	BaseURL      *string         `json:"base_url"`
	Timeout      *timex.Duration `json:"timeout"`
	DBPath       *string         `json:"db_path"`
	ExportDir    *string         `json:"export_dir"`
	ExportFormat *string         `json:"export_format"`
	ExportTarget *string         `json:"export_target"`
	ExportURL    *string         `json:"export_url"`
	PageSize     *int            `json:"page_size"`
	LogLevel     *string         `json:"log_level"`
	LogFile      *string         `json:"log_file"`
	UI           *string         `json:"ui"`
	S3           *JsonS3Config   `json:"s3"`
}

type JsonS3Config struct {
	Bucket          *string `json:"bucket"`
	Prefix          *string `json:"prefix"`
	Region          *string `json:"region"`
	Endpoint        *string `json:"endpoint"`
	AccessKeyID     *string `json:"access_key_id"`
	SecretAccessKey *string `json:"secret_access_key"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	if jc.Timeout != nil {
		cfg.Timeout = jc.Timeout.Duration
	}
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.ExportDir, jc.ExportDir)
	setString(&cfg.ExportFormat, jc.ExportFormat)
	setString(&cfg.ExportTarget, jc.ExportTarget)
	setString(&cfg.ExportURL, jc.ExportURL)
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.UI, jc.UI)
	if s := jc.S3; s != nil {
		setString(&cfg.S3.Bucket, s.Bucket)
		setString(&cfg.S3.Prefix, s.Prefix)
		setString(&cfg.S3.Region, s.Region)
		setString(&cfg.S3.Endpoint, s.Endpoint)
		setString(&cfg.S3.AccessKeyID, s.AccessKeyID)
		setString(&cfg.S3.SecretAccessKey, s.SecretAccessKey)
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
