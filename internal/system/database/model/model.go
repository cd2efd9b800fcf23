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

// Package model provides the interfaces and implementations for database operations.
package model

import "database/sql"

// DBQuery represents a database query with an identifier. When a dialect
// specific variant is set it takes precedence over the base query for
// that database type.
type DBQuery struct {
	ID            string
	Query         string
	PostgresQuery string
	SQLiteQuery   string
}

// GetQuery returns the query string for the given database type.
func (q DBQuery) GetQuery(dbType string) string {
	switch dbType {
	case "postgres":
		if q.PostgresQuery != "" {
			return q.PostgresQuery
		}
	case "sqlite":
		if q.SQLiteQuery != "" {
			return q.SQLiteQuery
		}
	}
	return q.Query
}

// GetID returns the identifier of the query.
func (q DBQuery) GetID() string {
	return q.ID
}

// DBInterface defines the interface for database operations.
type DBInterface interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
	Begin() (*sql.Tx, error)
	Close() error
}

// DB is a wrapper around sql.DB that implements DBInterface.
type DB struct {
	*sql.DB
}

// NewDB creates a new DB instance wrapping the given sql.DB.
func NewDB(db *sql.DB) *DB {
	return &DB{DB: db}
}

// TxInterface defines the interface for database transaction operations.
type TxInterface interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
	Commit() error
	Rollback() error
}

// Tx is a wrapper around sql.Tx that implements TxInterface.
type Tx struct {
	*sql.Tx
}

// NewTx creates a new Tx instance wrapping the given sql.Tx.
func NewTx(tx *sql.Tx) *Tx {
	return &Tx{Tx: tx}
}
