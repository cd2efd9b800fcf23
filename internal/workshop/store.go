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
	"encoding/json"
	"fmt"
	"time"

	"github.com/domocarroll/subfracture-v3/internal/system/database/provider"
)

// workshopStoreInterface defines the interface for workshop store operations.
type workshopStoreInterface interface {
	CreateSession(s Session) error
	GetSession(id string) (Session, error)
	GetActiveSessions() ([]Session, error)
	UpdateSession(s Session) error
	CreateEvent(e Event) error
	GetSessionEvents(sessionID string) ([]Event, error)
}

// workshopStore is the default implementation of workshopStoreInterface.
type workshopStore struct {
	dbProvider provider.DBProviderInterface
}

// newWorkshopStore creates a new instance of workshopStore.
func newWorkshopStore() workshopStoreInterface {
	return &workshopStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateSession creates a new workshop session in the database.
func (s *workshopStore) CreateSession(session Session) error {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	participantsJSON, err := json.Marshal(session.Participants)
	if err != nil {
		return fmt.Errorf("failed to marshal participants: %w", err)
	}

	_, err = dbClient.Execute(
		queryCreateSession,
		session.ID,
		session.BrandID,
		session.Facilitator,
		session.WorkshopType,
		session.MaxParticipants,
		string(participantsJSON),
		session.Status,
		session.CreatedAt.UTC().Format(time.RFC3339Nano),
		session.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetSession retrieves a workshop session by its id.
func (s *workshopStore) GetSession(id string) (Session, error) {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return Session{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetSessionByID, id)
	if err != nil {
		return Session{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return Session{}, ErrSessionNotFound
	}

	return buildSessionFromResultRow(results[0])
}

// GetActiveSessions retrieves all active workshop sessions.
func (s *workshopStore) GetActiveSessions() ([]Session, error) {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetActiveSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	sessions := make([]Session, 0, len(results))
	for _, row := range results {
		session, err := buildSessionFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build session: %w", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// UpdateSession updates a session's participants and status.
func (s *workshopStore) UpdateSession(session Session) error {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	participantsJSON, err := json.Marshal(session.Participants)
	if err != nil {
		return fmt.Errorf("failed to marshal participants: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		queryUpdateSession,
		session.ID,
		string(participantsJSON),
		session.Status,
		session.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// CreateEvent appends an event to a session's activity log.
func (s *workshopStore) CreateEvent(e Event) error {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	detailsJSON, err := json.Marshal(e.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal event details: %w", err)
	}

	_, err = dbClient.Execute(
		queryCreateEvent,
		e.ID,
		e.SessionID,
		e.EventType,
		e.Actor,
		string(detailsJSON),
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetSessionEvents retrieves the event log for a session in creation order.
func (s *workshopStore) GetSessionEvents(sessionID string) ([]Event, error) {
	dbClient, err := s.dbProvider.GetDBClient("workshop")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetSessionEvents, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	events := make([]Event, 0, len(results))
	for _, row := range results {
		e, err := buildEventFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build event: %w", err)
		}
		events = append(events, e)
	}

	return events, nil
}

// buildSessionFromResultRow constructs a Session from a database result row.
func buildSessionFromResultRow(row map[string]interface{}) (Session, error) {
	sessionID, ok := row["session_id"].(string)
	if !ok {
		return Session{}, fmt.Errorf("session_id is not a string")
	}

	brandID, ok := row["brand_id"].(string)
	if !ok {
		return Session{}, fmt.Errorf("brand_id is not a string")
	}

	facilitator, ok := row["facilitator"].(string)
	if !ok {
		return Session{}, fmt.Errorf("facilitator is not a string")
	}

	status, ok := row["status"].(string)
	if !ok {
		return Session{}, fmt.Errorf("status is not a string")
	}

	session := Session{
		ID:          sessionID,
		BrandID:     brandID,
		Facilitator: facilitator,
		Status:      status,
	}

	if wt, ok := row["workshop_type"].(string); ok {
		session.WorkshopType = wt
	}
	if maxP, ok := row["max_participants"].(int64); ok {
		session.MaxParticipants = int(maxP)
	}
	if participants, ok := row["participants"].(string); ok && participants != "" {
		if err := json.Unmarshal([]byte(participants), &session.Participants); err != nil {
			return Session{}, fmt.Errorf("failed to unmarshal participants: %w", err)
		}
	}

	var err error
	if session.CreatedAt, err = parseTimestamp(row["created_at"]); err != nil {
		return Session{}, err
	}
	if session.UpdatedAt, err = parseTimestamp(row["updated_at"]); err != nil {
		return Session{}, err
	}

	return session, nil
}

// buildEventFromResultRow constructs an Event from a database result row.
func buildEventFromResultRow(row map[string]interface{}) (Event, error) {
	eventID, ok := row["event_id"].(string)
	if !ok {
		return Event{}, fmt.Errorf("event_id is not a string")
	}

	sessionID, ok := row["session_id"].(string)
	if !ok {
		return Event{}, fmt.Errorf("session_id is not a string")
	}

	eventType, ok := row["event_type"].(string)
	if !ok {
		return Event{}, fmt.Errorf("event_type is not a string")
	}

	e := Event{
		ID:        eventID,
		SessionID: sessionID,
		EventType: eventType,
	}

	if actor, ok := row["actor"].(string); ok {
		e.Actor = actor
	}
	if details, ok := row["details"].(string); ok && details != "" {
		if err := json.Unmarshal([]byte(details), &e.Details); err != nil {
			return Event{}, fmt.Errorf("failed to unmarshal event details: %w", err)
		}
	}

	var err error
	if e.CreatedAt, err = parseTimestamp(row["created_at"]); err != nil {
		return Event{}, err
	}

	return e, nil
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
