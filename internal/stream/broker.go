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

// Package stream provides an in-process event broker and its SSE bridge.
package stream

import (
	"sync"

	"github.com/domocarroll/subfracture-v3/internal/system/log"
)

const defaultEventBufferSize = 16

// Broker fans events out to per-thread subscribers. Publishing never blocks:
// an event is dropped for any subscriber whose buffer is full.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	bufferSize  int
	logger      *log.Logger
}

// NewBroker creates a broker with the given per-subscriber buffer size.
// A non-positive size falls back to the default.
func NewBroker(bufferSize int) *Broker {
	if bufferSize <= 0 {
		bufferSize = defaultEventBufferSize
	}
	return &Broker{
		subscribers: make(map[string]map[chan Event]struct{}),
		bufferSize:  bufferSize,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "StreamBroker")),
	}
}

// Subscribe registers a subscriber for the thread and returns its event
// channel together with an unsubscribe function. The channel is closed when
// the unsubscribe function is called.
func (b *Broker) Subscribe(threadID string) (<-chan Event, func()) {
	ch := make(chan Event, b.bufferSize)

	b.mu.Lock()
	if b.subscribers[threadID] == nil {
		b.subscribers[threadID] = make(map[chan Event]struct{})
	}
	b.subscribers[threadID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers[threadID], ch)
			if len(b.subscribers[threadID]) == 0 {
				delete(b.subscribers, threadID)
			}
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

// Publish delivers the event to every subscriber of its thread without
// blocking. It returns the number of subscribers that received the event.
func (b *Broker) Publish(event Event) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for ch := range b.subscribers[event.ThreadID] {
		select {
		case ch <- event:
			delivered++
		default:
			b.logger.Warn("Dropping event for slow subscriber",
				log.String("threadId", event.ThreadID), log.String("eventType", string(event.Type)))
		}
	}
	return delivered
}

// SubscriberCount returns the number of subscribers for a thread.
func (b *Broker) SubscriberCount(threadID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[threadID])
}
