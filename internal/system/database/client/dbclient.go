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

// Package client provides the database client interface and its implementation.
package client

import (
	"fmt"
	"strings"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/domocarroll/subfracture-v3/internal/system/database/model"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
)

// DBClientInterface defines the interface for database client operations.
type DBClientInterface interface {
	Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)
	Execute(query model.DBQuery, args ...interface{}) (int64, error)
	BeginTx() (model.TxInterface, error)
	Close() error
}

// DBClient is the implementation of DBClientInterface.
type DBClient struct {
	db     model.DBInterface
	dbType string
}

// NewDBClient creates a new database client for the given database handle and type.
func NewDBClient(db model.DBInterface, dbType string) DBClientInterface {
	return &DBClient{db: db, dbType: dbType}
}

// Query executes a query and returns the results as a slice of maps keyed by
// lowercase column name.
func (c *DBClient) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBClient"))

	rows, err := c.db.Query(query.GetQuery(c.dbType), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query %s: %w", query.GetID(), err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			logger.Error("Failed to close rows", log.Error(cerr))
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for query %s: %w", query.GetID(), err)
	}

	results := make([]map[string]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row for query %s: %w", query.GetID(), err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			val := values[i]
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			row[strings.ToLower(col)] = val
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed for query %s: %w", query.GetID(), err)
	}

	return results, nil
}

// Execute runs a statement and returns the number of rows affected.
func (c *DBClient) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	result, err := c.db.Exec(query.GetQuery(c.dbType), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute statement %s: %w", query.GetID(), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected for %s: %w", query.GetID(), err)
	}
	return rowsAffected, nil
}

// BeginTx starts a new database transaction.
func (c *DBClient) BeginTx() (model.TxInterface, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return model.NewTx(tx), nil
}

// Close closes the underlying database handle.
func (c *DBClient) Close() error {
	return c.db.Close()
}
