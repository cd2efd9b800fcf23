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

package stream

import (
	"time"

	"github.com/domocarroll/subfracture-v3/internal/system/utils"
)

// EventType identifies the kind of workshop event flowing through the broker.
type EventType string

// Event types published by the workshop and brand services.
const (
	EventSessionStarted    EventType = "session_started"
	EventParticipantJoined EventType = "participant_joined"
	EventParticipantAction EventType = "participant_action"
	EventDimensionUpdated  EventType = "dimension_updated"
	EventInsightGenerated  EventType = "insight_generated"
	EventSessionEnded      EventType = "session_ended"
)

// Event is a single workshop event. ThreadID groups events belonging to the
// same workshop session or brand so subscribers receive only their stream.
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	ThreadID  string                 `json:"thread_id"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// NewEvent creates an event with a fresh ID and the current timestamp.
func NewEvent(eventType EventType, threadID string, payload map[string]interface{}) Event {
	return Event{
		ID:        utils.GenerateUUID(),
		Type:      eventType,
		ThreadID:  threadID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
