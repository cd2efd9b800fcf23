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

package brand

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/domocarroll/subfracture-v3/internal/system/database/provider"
)

// brandStoreInterface defines the interface for brand store operations.
type brandStoreInterface interface {
	CreateBrand(b Brand, initialSnapshot Snapshot) error
	GetBrand(id string) (Brand, error)
	GetBrandListCount() (int, error)
	GetBrandList(limit, offset int) ([]Brand, error)
	CheckBrandNameConflict(name string) (bool, error)
	UpdateBrand(b Brand) error
	DeleteBrand(id string) error
	CreateSnapshot(s Snapshot) error
}

// brandStore is the default implementation of brandStoreInterface.
type brandStore struct {
	dbProvider provider.DBProviderInterface
}

// newBrandStore creates a new instance of brandStore.
func newBrandStore() brandStoreInterface {
	return &brandStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateBrand creates a new brand together with its initial snapshot in a
// single transaction.
func (s *brandStore) CreateBrand(b Brand, initialSnapshot Snapshot) error {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	dimensionsJSON, err := json.Marshal(b.Dimensions)
	if err != nil {
		return fmt.Errorf("failed to marshal dimensions: %w", err)
	}
	cognitiveJSON, err := json.Marshal(b.CognitiveState)
	if err != nil {
		return fmt.Errorf("failed to marshal cognitive state: %w", err)
	}
	stateJSON, err := json.Marshal(initialSnapshot.State)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot state: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(
		queryCreateBrand.Query,
		b.ID,
		b.Name,
		b.Description,
		string(dimensionsJSON),
		string(cognitiveJSON),
		b.CreatedAt.UTC().Format(time.RFC3339Nano),
		b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	_, err = tx.Exec(
		queryCreateSnapshot.Query,
		initialSnapshot.ID,
		initialSnapshot.BrandID,
		initialSnapshot.Name,
		initialSnapshot.Context,
		string(stateJSON),
		initialSnapshot.CreatedBy,
		initialSnapshot.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetBrand retrieves an active brand by its id.
func (s *brandStore) GetBrand(id string) (Brand, error) {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return Brand{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetBrandByID, id)
	if err != nil {
		return Brand{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return Brand{}, ErrBrandNotFound
	}

	return buildBrandFromResultRow(results[0])
}

// GetBrandListCount retrieves the total count of active brands.
func (s *brandStore) GetBrandListCount() (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetBrandListCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	var total int
	if len(results) > 0 {
		if count, ok := results[0]["total"].(int64); ok {
			total = int(count)
		} else {
			return 0, fmt.Errorf("unexpected type for total: %T", results[0]["total"])
		}
	}

	return total, nil
}

// GetBrandList retrieves active brands with pagination.
func (s *brandStore) GetBrandList(limit, offset int) ([]Brand, error) {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetBrandList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	brands := make([]Brand, 0, len(results))
	for _, row := range results {
		b, err := buildBrandFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build brand: %w", err)
		}
		brands = append(brands, b)
	}

	return brands, nil
}

// CheckBrandNameConflict checks if an active brand with the given name exists.
func (s *brandStore) CheckBrandNameConflict(name string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCheckBrandNameConflict, name)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) > 0 {
		if count, ok := results[0]["count"].(int64); ok && count > 0 {
			return true, nil
		}
	}

	return false, nil
}

// UpdateBrand updates a brand's dimensional state.
func (s *brandStore) UpdateBrand(b Brand) error {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	dimensionsJSON, err := json.Marshal(b.Dimensions)
	if err != nil {
		return fmt.Errorf("failed to marshal dimensions: %w", err)
	}
	cognitiveJSON, err := json.Marshal(b.CognitiveState)
	if err != nil {
		return fmt.Errorf("failed to marshal cognitive state: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		queryUpdateBrand,
		b.ID,
		string(dimensionsJSON),
		string(cognitiveJSON),
		b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrBrandNotFound
	}

	return nil
}

// DeleteBrand soft deletes a brand by marking it inactive.
func (s *brandStore) DeleteBrand(id string) error {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeleteBrand, id, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrBrandNotFound
	}

	return nil
}

// CreateSnapshot creates a brand snapshot in the database.
func (s *brandStore) CreateSnapshot(snap Snapshot) error {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	stateJSON, err := json.Marshal(snap.State)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot state: %w", err)
	}

	_, err = dbClient.Execute(
		queryCreateSnapshot,
		snap.ID,
		snap.BrandID,
		snap.Name,
		snap.Context,
		string(stateJSON),
		snap.CreatedBy,
		snap.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// buildBrandFromResultRow constructs a Brand from a database result row.
func buildBrandFromResultRow(row map[string]interface{}) (Brand, error) {
	brandID, ok := row["brand_id"].(string)
	if !ok {
		return Brand{}, fmt.Errorf("brand_id is not a string")
	}

	name, ok := row["name"].(string)
	if !ok {
		return Brand{}, fmt.Errorf("name is not a string")
	}

	description := ""
	if desc, ok := row["description"]; ok && desc != nil {
		if descStr, ok := desc.(string); ok {
			description = descStr
		}
	}

	b := Brand{
		ID:          brandID,
		Name:        name,
		Description: description,
	}

	if dims, ok := row["dimensions"].(string); ok && dims != "" {
		if err := json.Unmarshal([]byte(dims), &b.Dimensions); err != nil {
			return Brand{}, fmt.Errorf("failed to unmarshal dimensions: %w", err)
		}
	}
	if cog, ok := row["cognitive_state"].(string); ok && cog != "" {
		if err := json.Unmarshal([]byte(cog), &b.CognitiveState); err != nil {
			return Brand{}, fmt.Errorf("failed to unmarshal cognitive state: %w", err)
		}
	}

	var err error
	if b.CreatedAt, err = parseTimestamp(row["created_at"]); err != nil {
		return Brand{}, err
	}
	if b.UpdatedAt, err = parseTimestamp(row["updated_at"]); err != nil {
		return Brand{}, err
	}

	return b, nil
}

// parseTimestamp parses a timestamp column that may arrive as a string or
// a native time value depending on the driver.
func parseTimestamp(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", v, err)
		}
		return t, nil
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type: %T", value)
	}
}
