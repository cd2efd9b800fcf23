/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/domocarroll/subfracture-v3/internal/system/constants"
	"github.com/domocarroll/subfracture-v3/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Workshop DataSource `yaml:"workshop"`
}

// CacheConfig holds the in-memory cache configuration details.
type CacheConfig struct {
	Disabled        bool `yaml:"disabled"`
	SizeMB          int  `yaml:"size_mb"`
	CleanupInterval int  `yaml:"cleanup_interval"`
	SessionTTL      int  `yaml:"session_ttl"`
}

// StreamConfig holds the event stream configuration details.
type StreamConfig struct {
	EventBufferSize int `yaml:"event_buffer_size"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	CORS     CORSConfig     `yaml:"cors"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	Stream   StreamConfig   `yaml:"stream"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyCacheSizeOverride(&cfg)
	return &cfg, nil
}

// applyCacheSizeOverride overrides the configured cache size with the
// CACHE_SIZE_MB environment variable when it carries a valid value.
func applyCacheSizeOverride(cfg *Config) {
	sizeMB := os.Getenv(constants.CacheSizeEnvironmentVariable)
	if sizeMB == "" {
		return
	}

	parsed, err := strconv.Atoi(sizeMB)
	if err != nil || parsed <= 0 {
		log.GetLogger().Warn("Ignoring invalid cache size override", log.String("value", sizeMB))
		return
	}
	cfg.Cache.SizeMB = parsed
}
