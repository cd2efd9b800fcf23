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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishFansOutToSubscribers(t *testing.T) {
	broker := NewBroker(4)

	ch1, unsub1 := broker.Subscribe("thread-1")
	defer unsub1()
	ch2, unsub2 := broker.Subscribe("thread-1")
	defer unsub2()

	event := NewEvent(EventParticipantJoined, "thread-1", map[string]interface{}{
		"participant_id": "p-1",
	})
	delivered := broker.Publish(event)

	assert.Equal(t, 2, delivered)
	assert.Equal(t, event.ID, (<-ch1).ID)
	assert.Equal(t, event.ID, (<-ch2).ID)
}

func TestPublishRoutesByThread(t *testing.T) {
	broker := NewBroker(4)

	ch, unsubscribe := broker.Subscribe("thread-1")
	defer unsubscribe()

	delivered := broker.Publish(NewEvent(EventSessionStarted, "thread-2", nil))

	assert.Zero(t, delivered)
	assert.Empty(t, ch)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	broker := NewBroker(4)
	assert.Zero(t, broker.Publish(NewEvent(EventSessionEnded, "thread-1", nil)))
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	broker := NewBroker(2)

	ch, unsubscribe := broker.Subscribe("thread-1")
	defer unsubscribe()

	assert.Equal(t, 1, broker.Publish(NewEvent(EventParticipantAction, "thread-1", nil)))
	assert.Equal(t, 1, broker.Publish(NewEvent(EventParticipantAction, "thread-1", nil)))

	// Buffer is full; publishing must not block and the event is dropped.
	assert.Zero(t, broker.Publish(NewEvent(EventParticipantAction, "thread-1", nil)))
	assert.Len(t, ch, 2)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	broker := NewBroker(4)

	ch, unsubscribe := broker.Subscribe("thread-1")
	assert.Equal(t, 1, broker.SubscriberCount("thread-1"))

	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, broker.SubscriberCount("thread-1"))
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	broker := NewBroker(4)

	_, unsubscribe := broker.Subscribe("thread-1")
	unsubscribe()
	assert.NotPanics(t, func() { unsubscribe() })
}

func TestNewBrokerDefaultsBufferSize(t *testing.T) {
	broker := NewBroker(0)

	ch, unsubscribe := broker.Subscribe("thread-1")
	defer unsubscribe()

	assert.Equal(t, defaultEventBufferSize, cap(ch))
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	broker := NewBroker(64)

	var drainers sync.WaitGroup
	unsubscribes := make([]func(), 0, 8)
	for i := 0; i < 8; i++ {
		ch, unsubscribe := broker.Subscribe("thread-1")
		unsubscribes = append(unsubscribes, unsubscribe)
		drainers.Add(1)
		go func() {
			defer drainers.Done()
			for range ch {
			}
		}()
	}
	assert.Equal(t, 8, broker.SubscriberCount("thread-1"))

	var publishers sync.WaitGroup
	for i := 0; i < 4; i++ {
		publishers.Add(1)
		go func() {
			defer publishers.Done()
			for j := 0; j < 100; j++ {
				broker.Publish(NewEvent(EventDimensionUpdated, "thread-1", nil))
			}
		}()
	}
	publishers.Wait()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
	drainers.Wait()

	assert.Zero(t, broker.SubscriberCount("thread-1"))
}
