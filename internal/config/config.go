// file: internal/config/config.go
// version: 1.1.0
// guid: 5e3f9a2b-0c4d-4f6a-9b7c-8d2e3f4a5b6c

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Digest exporter
	SourceDir string
	DestDir   string
	Algorithm string
	Workers   int

	// Name auditor
	AuditPath        string
	IncludeExtension bool
	Save             bool
	SavePath         string
}

var AppConfig Config

// InitConfig initializes the application configuration from viper
func InitConfig() {
	viper.SetDefault("algorithm", "md5")
	viper.SetDefault("workers", 1)
	viper.SetDefault("include_extension", true)
	viper.SetDefault("save", false)

	AppConfig = Config{
		SourceDir:        viper.GetString("source"),
		DestDir:          viper.GetString("destination"),
		Algorithm:        viper.GetString("algorithm"),
		Workers:          viper.GetInt("workers"),
		AuditPath:        viper.GetString("path"),
		IncludeExtension: viper.GetBool("include_extension"),
		Save:             viper.GetBool("save"),
		SavePath:         viper.GetString("save_path"),
	}

	if AppConfig.Workers < 1 {
		AppConfig.Workers = 1
	}
}
