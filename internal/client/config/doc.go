// Package config loads runtime configuration for the payroll client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. PAYROLL_* environment variables (PAYROLL_S3_* for the S3 export sink).
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Every field is optional; timeout is a duration string or nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080/api",
//	  "timeout": "10s",
//	  "db_path": "payrollview.db",
//	  "export_dir": "download",
//	  "export_format": "csv",
//	  "export_target": "s3",
//	  "page_size": 20,
//	  "log_level": "debug",
//	  "ui": "tui",
//	  "s3": {"bucket": "payroll-exports", "endpoint": "http://localhost:9000"}
//	}
//
// With "export_target": "http", files are PUT under "export_url".
package config
