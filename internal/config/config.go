package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, read from config.toml
// next to the executable. There is no other persisted state.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Upload UploadConfig `toml:"upload"`
}

// ServerConfig holds the HTTP settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// UploadConfig holds upload limits.
type UploadConfig struct {
	MaxSizeMB int64 `toml:"max_size_mb"`
}

// DefaultConfig is used when no config.toml exists.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20474,
			DevMode: false,
		},
		Upload: UploadConfig{
			MaxSizeMB: 10,
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable's directory. A
// missing file falls back to defaults; a malformed file is an error.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// Environment override for local runs and E2E.
	if v := os.Getenv("ORDERCOMPARE_MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			config.Upload.MaxSizeMB = n
		}
	}

	return config, nil
}

// SaveConfig writes config.toml next to the executable.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// MaxUploadBytes converts the configured limit to bytes.
func (c *AppConfig) MaxUploadBytes() int64 {
	if c.Upload.MaxSizeMB <= 0 {
		return 10 * 1024 * 1024
	}
	return c.Upload.MaxSizeMB * 1024 * 1024
}
