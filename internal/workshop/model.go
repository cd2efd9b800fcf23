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

import "time"

// Session statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Participant action types.
const (
	ActionJoin  = "join"
	ActionLeave = "leave"
)

// DefaultMaxParticipants is the session capacity used when none is requested.
const DefaultMaxParticipants = 10

// Session is a workshop session anchored to a brand.
type Session struct {
	ID              string    `json:"session_id"`
	BrandID         string    `json:"brand_id"`
	Facilitator     string    `json:"facilitator_id"`
	WorkshopType    string    `json:"workshop_type,omitempty"`
	MaxParticipants int       `json:"max_participants"`
	Participants    []string  `json:"participants"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Event is a single entry in a session's activity log.
type Event struct {
	ID        string                 `json:"id"`
	SessionID string                 `json:"session_id"`
	EventType string                 `json:"event_type"`
	Actor     string                 `json:"actor,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// CreateSessionRequest is the request payload for creating a session.
type CreateSessionRequest struct {
	BrandID         string   `json:"brand_id"`
	Facilitator     string   `json:"facilitator_id"`
	WorkshopType    string   `json:"workshop_type,omitempty"`
	MaxParticipants int      `json:"max_participants,omitempty"`
	Participants    []string `json:"participants,omitempty"`
}

// ParticipantActionRequest is the request payload for a participant action.
type ParticipantActionRequest struct {
	ParticipantID string                 `json:"participant_id"`
	ActionType    string                 `json:"action_type"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// SessionResponse is a session together with its optional event history.
type SessionResponse struct {
	Session Session `json:"session"`
	Events  []Event `json:"events,omitempty"`
}

// SessionListResponse is the list response for active sessions.
type SessionListResponse struct {
	TotalResults int       `json:"totalResults"`
	Sessions     []Session `json:"sessions"`
}
