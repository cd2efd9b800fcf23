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
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/domocarroll/subfracture-v3/internal/system/database/client"
	"github.com/domocarroll/subfracture-v3/internal/system/database/model"
)

type stubDBProvider struct {
	client client.DBClientInterface
}

func (p *stubDBProvider) GetDBClient(name string) (client.DBClientInterface, error) {
	return p.client, nil
}

type BrandStoreTestSuite struct {
	suite.Suite
	mockDB *sql.DB
	mock   sqlmock.Sqlmock
	store  brandStoreInterface
}

func TestBrandStoreSuite(t *testing.T) {
	suite.Run(t, new(BrandStoreTestSuite))
}

func (suite *BrandStoreTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	dbClient := client.NewDBClient(model.NewDB(suite.mockDB), "postgres")
	suite.store = &brandStore{dbProvider: &stubDBProvider{client: dbClient}}
}

func (suite *BrandStoreTestSuite) TearDownTest() {
	if err := suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Fatalf("There were unfulfilled expectations: %v", err)
	}
}

func (suite *BrandStoreTestSuite) TestGetBrand() {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	rows := sqlmock.NewRows([]string{
		"brand_id", "name", "description", "dimensions", "cognitive_state", "created_at", "updated_at",
	}).AddRow(
		"b1", "acme", "test brand",
		`[{"name":"market_position","signal_strength":0.5,"coherence":0.7,"connections":[]}]`,
		`{"analytical":0.5}`,
		now, now,
	)
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetBrandByID.Query)).
		WithArgs("b1").
		WillReturnRows(rows)

	b, err := suite.store.GetBrand("b1")
	suite.NoError(err)
	suite.Equal("b1", b.ID)
	suite.Equal("acme", b.Name)
	suite.Len(b.Dimensions, 1)
	suite.Equal("market_position", b.Dimensions[0].Name)
	suite.InDelta(0.5, b.CognitiveState["analytical"], 0.0001)
	suite.False(b.CreatedAt.IsZero())
}

func (suite *BrandStoreTestSuite) TestGetBrandNotFound() {
	rows := sqlmock.NewRows([]string{
		"brand_id", "name", "description", "dimensions", "cognitive_state", "created_at", "updated_at",
	})
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetBrandByID.Query)).
		WithArgs("missing").
		WillReturnRows(rows)

	_, err := suite.store.GetBrand("missing")
	suite.ErrorIs(err, ErrBrandNotFound)
}

func (suite *BrandStoreTestSuite) TestCreateBrand() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(queryCreateBrand.Query)).
		WithArgs("b1", "acme", "desc", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(queryCreateSnapshot.Query)).
		WithArgs("s1", "b1", "initial_state", "Brand created", sqlmock.AnyArg(), "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	now := time.Now().UTC()
	b := Brand{
		ID:             "b1",
		Name:           "acme",
		Description:    "desc",
		Dimensions:     defaultDimensions(),
		CognitiveState: defaultCognitiveState(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := suite.store.CreateBrand(b, Snapshot{
		ID:        "s1",
		BrandID:   "b1",
		Name:      "initial_state",
		Context:   "Brand created",
		State:     b,
		CreatedAt: now,
	})
	suite.NoError(err)
}

func (suite *BrandStoreTestSuite) TestCreateBrandRollsBackOnSnapshotFailure() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(queryCreateBrand.Query)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(queryCreateSnapshot.Query)).
		WillReturnError(errors.New("constraint violation"))
	suite.mock.ExpectRollback()

	now := time.Now().UTC()
	b := Brand{ID: "b1", Name: "acme", CreatedAt: now, UpdatedAt: now}
	err := suite.store.CreateBrand(b, Snapshot{
		ID:        "s1",
		BrandID:   "b1",
		Name:      "initial_state",
		State:     b,
		CreatedAt: now,
	})
	suite.Error(err)
}

func (suite *BrandStoreTestSuite) TestCheckBrandNameConflict() {
	rows := sqlmock.NewRows([]string{"count"}).AddRow(int64(1))
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryCheckBrandNameConflict.Query)).
		WithArgs("acme").
		WillReturnRows(rows)

	conflict, err := suite.store.CheckBrandNameConflict("acme")
	suite.NoError(err)
	suite.True(conflict)
}

func (suite *BrandStoreTestSuite) TestGetBrandListCount() {
	rows := sqlmock.NewRows([]string{"total"}).AddRow(int64(3))
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetBrandListCount.Query)).
		WillReturnRows(rows)

	total, err := suite.store.GetBrandListCount()
	suite.NoError(err)
	suite.Equal(3, total)
}

func (suite *BrandStoreTestSuite) TestUpdateBrandNotFound() {
	suite.mock.ExpectExec(regexp.QuoteMeta(queryUpdateBrand.Query)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := suite.store.UpdateBrand(Brand{ID: "missing"})
	suite.ErrorIs(err, ErrBrandNotFound)
}

func (suite *BrandStoreTestSuite) TestDeleteBrandNotFound() {
	suite.mock.ExpectExec(regexp.QuoteMeta(queryDeleteBrand.Query)).
		WithArgs("missing", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := suite.store.DeleteBrand("missing")
	suite.ErrorIs(err, ErrBrandNotFound)
}

func (suite *BrandStoreTestSuite) TestCreateSnapshot() {
	suite.mock.ExpectExec(regexp.QuoteMeta(queryCreateSnapshot.Query)).
		WithArgs("s1", "b1", "initial_state", "Brand created", sqlmock.AnyArg(), "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := suite.store.CreateSnapshot(Snapshot{
		ID:        "s1",
		BrandID:   "b1",
		Name:      "initial_state",
		Context:   "Brand created",
		State:     Brand{ID: "b1", Name: "acme"},
		CreatedAt: time.Now().UTC(),
	})
	suite.NoError(err)
}
