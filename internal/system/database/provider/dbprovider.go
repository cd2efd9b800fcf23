/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

// Package provider provides access to the configured database client.
package provider

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/domocarroll/subfracture-v3/internal/system/config"
	"github.com/domocarroll/subfracture-v3/internal/system/database/client"
	"github.com/domocarroll/subfracture-v3/internal/system/database/model"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
)

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(name string) (client.DBClientInterface, error)
}

// DBProvider is the default implementation of DBProviderInterface.
type DBProvider struct {
	mu      sync.RWMutex
	clients map[string]client.DBClientInterface
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the singleton database provider instance.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{
			clients: make(map[string]client.DBClientInterface),
		}
	})
	return instance
}

// GetDBClient returns the database client for the named datasource,
// initializing it on first use.
func (p *DBProvider) GetDBClient(name string) (client.DBClientInterface, error) {
	p.mu.RLock()
	if dbClient, ok := p.clients[name]; ok {
		p.mu.RUnlock()
		return dbClient, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if dbClient, ok := p.clients[name]; ok {
		return dbClient, nil
	}

	dataSource, err := resolveDataSource(name)
	if err != nil {
		return nil, err
	}

	dbClient, err := initClient(name, dataSource)
	if err != nil {
		return nil, err
	}
	p.clients[name] = dbClient
	return dbClient, nil
}

// CloseClients closes every initialized database client. Called at server
// shutdown.
func CloseClients() error {
	if instance == nil {
		return nil
	}

	instance.mu.Lock()
	defer instance.mu.Unlock()

	var firstErr error
	for name, dbClient := range instance.clients {
		if err := dbClient.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close datasource %s: %w", name, err)
		}
		delete(instance.clients, name)
	}
	return firstErr
}

// resolveDataSource maps a datasource name to its configuration.
func resolveDataSource(name string) (*config.DataSource, error) {
	cfg := config.GetRuntime().Config
	switch name {
	case "workshop":
		return &cfg.Database.Workshop, nil
	default:
		return nil, fmt.Errorf("unknown datasource: %s", name)
	}
}

// initClient opens a connection pool for the datasource and wraps it in a client.
func initClient(name string, ds *config.DataSource) (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dsn, err := buildDSN(ds)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(ds.Type, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open datasource %s: %w", name, err)
	}

	if ds.MaxOpenConns > 0 {
		db.SetMaxOpenConns(ds.MaxOpenConns)
	}
	if ds.MaxIdleConns > 0 {
		db.SetMaxIdleConns(ds.MaxIdleConns)
	}
	if ds.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(ds.ConnMaxLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Failed to close database after ping failure", log.Error(cerr))
		}
		return nil, fmt.Errorf("failed to connect to datasource %s: %w", name, err)
	}

	if logger.IsDebugEnabled() {
		logger.Debug("Initialized database client", log.String("datasource", name),
			log.String("type", ds.Type), log.String("user", log.MaskString(ds.Username)))
	}
	return client.NewDBClient(model.NewDB(db), ds.Type), nil
}

// buildDSN constructs the driver specific connection string for a datasource.
func buildDSN(ds *config.DataSource) (string, error) {
	switch ds.Type {
	case "postgres":
		sslMode := ds.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
			ds.Hostname, ds.Port, ds.Name, ds.Username, ds.Password, sslMode), nil
	case "sqlite":
		path := filepath.Clean(ds.Path)
		dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
		if ds.Options != "" {
			dsn += "&" + ds.Options
		}
		return dsn, nil
	default:
		return "", fmt.Errorf("unsupported database type: %s", ds.Type)
	}
}
