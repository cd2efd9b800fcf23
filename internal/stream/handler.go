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
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/domocarroll/subfracture-v3/internal/system/constants"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
	"github.com/domocarroll/subfracture-v3/internal/system/middleware"
)

const loggerComponentName = "StreamHandler"

// streamHandler bridges broker subscriptions to Server-Sent Events.
type streamHandler struct {
	broker *Broker
}

// Initialize registers the SSE route on the mux and returns the broker the
// other services publish to.
func Initialize(mux *http.ServeMux, broker *Broker) *Broker {
	handler := &streamHandler{broker: broker}

	corsOptions := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /workshops/{id}/events",
		handler.handleEventStream, corsOptions))

	return broker
}

// handleEventStream streams events for the workshop session as SSE until
// the client disconnects.
func (h *streamHandler) handleEventStream(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	sessionID := r.PathValue("id")
	if sessionID == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeEventStream)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, unsubscribe := h.broker.Subscribe(sessionID)
	defer unsubscribe()

	logger.Debug("Subscriber connected", log.String(log.LoggerKeySessionID, sessionID))

	for {
		select {
		case event, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				logger.Error("Failed to marshal event", log.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				logger.Debug("Subscriber write failed, closing stream",
					log.String(log.LoggerKeySessionID, sessionID))
				return
			}
			flusher.Flush()
		case <-r.Context().Done():
			logger.Debug("Subscriber disconnected", log.String(log.LoggerKeySessionID, sessionID))
			return
		}
	}
}
