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

package workshop

import (
	"database/sql"
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

type WorkshopStoreTestSuite struct {
	suite.Suite
	mockDB *sql.DB
	mock   sqlmock.Sqlmock
	store  workshopStoreInterface
}

func TestWorkshopStoreSuite(t *testing.T) {
	suite.Run(t, new(WorkshopStoreTestSuite))
}

func (suite *WorkshopStoreTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	dbClient := client.NewDBClient(model.NewDB(suite.mockDB), "postgres")
	suite.store = &workshopStore{dbProvider: &stubDBProvider{client: dbClient}}
}

func (suite *WorkshopStoreTestSuite) TearDownTest() {
	if err := suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Fatalf("There were unfulfilled expectations: %v", err)
	}
}

func sessionRows(now string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"session_id", "brand_id", "facilitator", "workshop_type", "max_participants",
		"participants", "status", "created_at", "updated_at",
	}).AddRow(
		"sess-1", "b1", "f1", "discovery", int64(10), `["p-1","p-2"]`, "active", now, now,
	)
}

func (suite *WorkshopStoreTestSuite) TestGetSession() {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetSessionByID.Query)).
		WithArgs("sess-1").
		WillReturnRows(sessionRows(now))

	session, err := suite.store.GetSession("sess-1")
	suite.NoError(err)
	suite.Equal("sess-1", session.ID)
	suite.Equal("b1", session.BrandID)
	suite.Equal(10, session.MaxParticipants)
	suite.Equal([]string{"p-1", "p-2"}, session.Participants)
	suite.Equal(StatusActive, session.Status)
	suite.False(session.CreatedAt.IsZero())
}

func (suite *WorkshopStoreTestSuite) TestGetSessionNotFound() {
	rows := sqlmock.NewRows([]string{
		"session_id", "brand_id", "facilitator", "workshop_type", "max_participants",
		"participants", "status", "created_at", "updated_at",
	})
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetSessionByID.Query)).
		WithArgs("missing").
		WillReturnRows(rows)

	_, err := suite.store.GetSession("missing")
	suite.ErrorIs(err, ErrSessionNotFound)
}

func (suite *WorkshopStoreTestSuite) TestCreateSession() {
	suite.mock.ExpectExec(regexp.QuoteMeta(queryCreateSession.Query)).
		WithArgs("sess-1", "b1", "f1", "discovery", 10, `["p-1"]`,
			"active", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now().UTC()
	err := suite.store.CreateSession(Session{
		ID:              "sess-1",
		BrandID:         "b1",
		Facilitator:     "f1",
		WorkshopType:    "discovery",
		MaxParticipants: 10,
		Participants:    []string{"p-1"},
		Status:          StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	suite.NoError(err)
}

func (suite *WorkshopStoreTestSuite) TestGetActiveSessions() {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetActiveSessions.Query)).
		WillReturnRows(sessionRows(now))

	sessions, err := suite.store.GetActiveSessions()
	suite.NoError(err)
	suite.Len(sessions, 1)
	suite.Equal("sess-1", sessions[0].ID)
}

func (suite *WorkshopStoreTestSuite) TestUpdateSession() {
	suite.mock.ExpectExec(regexp.QuoteMeta(queryUpdateSession.Query)).
		WithArgs("sess-1", `["p-1"]`, "completed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := suite.store.UpdateSession(Session{
		ID:           "sess-1",
		Participants: []string{"p-1"},
		Status:       StatusCompleted,
		UpdatedAt:    time.Now().UTC(),
	})
	suite.NoError(err)
}

func (suite *WorkshopStoreTestSuite) TestUpdateSessionNotFound() {
	suite.mock.ExpectExec(regexp.QuoteMeta(queryUpdateSession.Query)).
		WithArgs("missing", `[]`, "active", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := suite.store.UpdateSession(Session{
		ID:           "missing",
		Participants: []string{},
		Status:       StatusActive,
		UpdatedAt:    time.Now().UTC(),
	})
	suite.ErrorIs(err, ErrSessionNotFound)
}

func (suite *WorkshopStoreTestSuite) TestCreateEvent() {
	suite.mock.ExpectExec(regexp.QuoteMeta(queryCreateEvent.Query)).
		WithArgs("e1", "sess-1", "join", "p-1", `{"seat":"remote"}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := suite.store.CreateEvent(Event{
		ID:        "e1",
		SessionID: "sess-1",
		EventType: "join",
		Actor:     "p-1",
		Details:   map[string]interface{}{"seat": "remote"},
		CreatedAt: time.Now().UTC(),
	})
	suite.NoError(err)
}

func (suite *WorkshopStoreTestSuite) TestGetSessionEvents() {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	rows := sqlmock.NewRows([]string{
		"event_id", "session_id", "event_type", "actor", "details", "created_at",
	}).
		AddRow("e1", "sess-1", "session_created", "f1", `{}`, now).
		AddRow("e2", "sess-1", "join", "p-1", `{"seat":"remote"}`, now)

	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetSessionEvents.Query)).
		WithArgs("sess-1").
		WillReturnRows(rows)

	events, err := suite.store.GetSessionEvents("sess-1")
	suite.NoError(err)
	suite.Len(events, 2)
	suite.Equal("session_created", events[0].EventType)
	suite.Equal("remote", events[1].Details["seat"])
}
