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

// Package workshop handles workshop session bookkeeping.
package workshop

import (
	"errors"
	"strings"
	"time"

	"github.com/domocarroll/subfracture-v3/internal/stream"
	"github.com/domocarroll/subfracture-v3/internal/system/cache"
	"github.com/domocarroll/subfracture-v3/internal/system/error/serviceerror"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
	"github.com/domocarroll/subfracture-v3/internal/system/utils"
)

const loggerComponentNameService = "WorkshopService"

// WorkshopServiceInterface defines the interface for workshop session operations.
type WorkshopServiceInterface interface {
	CreateSession(request CreateSessionRequest) (Session, *serviceerror.ServiceError)
	AddParticipantAction(sessionID string, request ParticipantActionRequest) (
		Session, *serviceerror.ServiceError)
	GetSession(id string, includeEvents bool) (*SessionResponse, *serviceerror.ServiceError)
	ListActiveSessions() (*SessionListResponse, *serviceerror.ServiceError)
	EndSession(id string) *serviceerror.ServiceError
}

// workshopService provides workshop session operations. Hot session state is
// kept in the cache via the session helpers; the relational store remains the
// source of truth.
type workshopService struct {
	store      workshopStoreInterface
	cache      *cache.MemoryCache
	broker     *stream.Broker
	sessionTTL time.Duration
}

// newWorkshopService creates a new instance of workshopService.
func newWorkshopService(
	store workshopStoreInterface,
	memoryCache *cache.MemoryCache,
	broker *stream.Broker,
	sessionTTL time.Duration,
) WorkshopServiceInterface {
	return &workshopService{
		store:      store,
		cache:      memoryCache,
		broker:     broker,
		sessionTTL: sessionTTL,
	}
}

// CreateSession creates a new workshop session, caches its hot state, and
// records the session_created event.
func (ws *workshopService) CreateSession(request CreateSessionRequest) (Session, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if strings.TrimSpace(request.BrandID) == "" || strings.TrimSpace(request.Facilitator) == "" {
		return Session{}, &ErrorInvalidRequestFormat
	}

	maxParticipants := request.MaxParticipants
	if maxParticipants <= 0 {
		maxParticipants = DefaultMaxParticipants
	}

	participants := request.Participants
	if participants == nil {
		participants = []string{}
	}

	now := time.Now().UTC()
	session := Session{
		ID:              utils.GenerateShortID(),
		BrandID:         request.BrandID,
		Facilitator:     request.Facilitator,
		WorkshopType:    request.WorkshopType,
		MaxParticipants: maxParticipants,
		Participants:    participants,
		Status:          StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := ws.store.CreateSession(session); err != nil {
		logger.Error("Failed to create session", log.Error(err))
		return Session{}, &ErrorInternalServerError
	}

	ws.appendEvent(session.ID, "session_created", request.Facilitator, map[string]interface{}{
		"workshop_type":        session.WorkshopType,
		"initial_participants": session.Participants,
	}, logger)

	ws.cacheSession(session)
	ws.publish(stream.EventSessionStarted, session.ID, map[string]interface{}{
		"brand_id":       session.BrandID,
		"facilitator_id": session.Facilitator,
	})

	logger.Debug("Successfully created workshop session",
		log.String(log.LoggerKeySessionID, session.ID))
	return session, nil
}

// AddParticipantAction applies a participant action to an active session.
// Joins are subject to the session's capacity limit; every action refreshes
// the cached session state and extends its TTL.
func (ws *workshopService) AddParticipantAction(
	sessionID string, request ParticipantActionRequest,
) (Session, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if strings.TrimSpace(request.ParticipantID) == "" || strings.TrimSpace(request.ActionType) == "" {
		return Session{}, &ErrorInvalidRequestFormat
	}

	session, svcErr := ws.loadSession(sessionID, logger)
	if svcErr != nil {
		return Session{}, svcErr
	}
	if session.Status != StatusActive {
		return Session{}, &ErrorSessionNotActive
	}

	changed := false
	switch request.ActionType {
	case ActionJoin:
		if !containsParticipant(session.Participants, request.ParticipantID) {
			if len(session.Participants) >= session.MaxParticipants {
				return Session{}, &ErrorSessionFull
			}
			session.Participants = append(session.Participants, request.ParticipantID)
			changed = true
		}
	case ActionLeave:
		if containsParticipant(session.Participants, request.ParticipantID) {
			session.Participants = removeParticipant(session.Participants, request.ParticipantID)
			changed = true
		}
	}

	if changed {
		session.UpdatedAt = time.Now().UTC()
		if err := ws.store.UpdateSession(session); err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				return Session{}, &ErrorSessionNotFound
			}
			logger.Error("Failed to update session", log.Error(err))
			return Session{}, &ErrorInternalServerError
		}
	}

	ws.appendEvent(sessionID, request.ActionType, request.ParticipantID, request.Details, logger)

	ws.cacheSession(session)
	if ws.cache != nil {
		ws.cache.ExtendSession(sessionID, int(ws.sessionTTL.Seconds()))
	}

	eventType := stream.EventParticipantAction
	if request.ActionType == ActionJoin {
		eventType = stream.EventParticipantJoined
	}
	ws.publish(eventType, sessionID, map[string]interface{}{
		"participant_id": request.ParticipantID,
		"action_type":    request.ActionType,
	})

	return session, nil
}

// GetSession retrieves a session, preferring the cached copy, optionally
// including its event history.
func (ws *workshopService) GetSession(
	id string, includeEvents bool,
) (*SessionResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	session, svcErr := ws.loadSession(id, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	response := &SessionResponse{Session: session}
	if includeEvents {
		events, err := ws.store.GetSessionEvents(id)
		if err != nil {
			logger.Error("Failed to get session events", log.Error(err))
			return nil, &ErrorInternalServerError
		}
		response.Events = events
	}

	return response, nil
}

// ListActiveSessions lists all active workshop sessions.
func (ws *workshopService) ListActiveSessions() (*SessionListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	sessions, err := ws.store.GetActiveSessions()
	if err != nil {
		logger.Error("Failed to list active sessions", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &SessionListResponse{
		TotalResults: len(sessions),
		Sessions:     sessions,
	}, nil
}

// EndSession marks a session completed and drops its cached state.
func (ws *workshopService) EndSession(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	session, svcErr := ws.loadSession(id, logger)
	if svcErr != nil {
		return svcErr
	}
	if session.Status != StatusActive {
		return &ErrorSessionNotActive
	}

	session.Status = StatusCompleted
	session.UpdatedAt = time.Now().UTC()
	if err := ws.store.UpdateSession(session); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return &ErrorSessionNotFound
		}
		logger.Error("Failed to end session", log.Error(err))
		return &ErrorInternalServerError
	}

	ws.appendEvent(id, "session_ended", session.Facilitator, nil, logger)
	if ws.cache != nil {
		ws.cache.DeleteSession(id)
	}
	ws.publish(stream.EventSessionEnded, id, map[string]interface{}{
		"brand_id": session.BrandID,
	})

	logger.Debug("Ended workshop session", log.String(log.LoggerKeySessionID, id))
	return nil
}

// loadSession returns the cached session when present, falling back to the
// store on a miss.
func (ws *workshopService) loadSession(id string, logger *log.Logger) (Session, *serviceerror.ServiceError) {
	if ws.cache != nil {
		if value, ok := ws.cache.GetSession(id); ok {
			if session, ok := value.(Session); ok {
				return copySession(session), nil
			}
		}
	}

	session, err := ws.store.GetSession(id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Session{}, &ErrorSessionNotFound
		}
		logger.Error("Failed to get session", log.Error(err))
		return Session{}, &ErrorInternalServerError
	}

	ws.cacheSession(session)
	return session, nil
}

// appendEvent writes an event to the session log. Event log failures are
// logged but do not fail the originating operation.
func (ws *workshopService) appendEvent(
	sessionID, eventType, actor string, details map[string]interface{}, logger *log.Logger,
) {
	e := Event{
		ID:        utils.GenerateUUID(),
		SessionID: sessionID,
		EventType: eventType,
		Actor:     actor,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
	if err := ws.store.CreateEvent(e); err != nil {
		logger.Error("Failed to append session event",
			log.String(log.LoggerKeySessionID, sessionID), log.Error(err))
	}
}

func (ws *workshopService) cacheSession(session Session) {
	if ws.cache != nil {
		ws.cache.SetSession(session.ID, copySession(session), ws.sessionTTL)
	}
}

// copySession clones the session's participant slice. The cached copy must
// never share backing storage with a value handed to callers, since joins
// append to the slice in place.
func copySession(s Session) Session {
	clone := s
	if s.Participants != nil {
		clone.Participants = append([]string(nil), s.Participants...)
	}
	return clone
}

func (ws *workshopService) publish(
	eventType stream.EventType, sessionID string, payload map[string]interface{},
) {
	if ws.broker != nil {
		ws.broker.Publish(stream.NewEvent(eventType, sessionID, payload))
	}
}

func containsParticipant(participants []string, id string) bool {
	for _, p := range participants {
		if p == id {
			return true
		}
	}
	return false
}

func removeParticipant(participants []string, id string) []string {
	filtered := make([]string, 0, len(participants))
	for _, p := range participants {
		if p != id {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
