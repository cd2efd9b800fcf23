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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SessionHelpersTestSuite struct {
	suite.Suite
	cache *MemoryCache
}

func TestSessionHelpersSuite(t *testing.T) {
	suite.Run(t, new(SessionHelpersTestSuite))
}

func (s *SessionHelpersTestSuite) SetupTest() {
	s.cache = New(1, 300)
}

func (s *SessionHelpersTestSuite) TearDownTest() {
	s.cache.Close()
}

func (s *SessionHelpersTestSuite) TestSetAndGetSession() {
	data := map[string]interface{}{"participant": "alice"}
	s.cache.SetSession("abc123", data, 0)

	got, ok := s.cache.GetSession("abc123")
	s.True(ok)
	s.Equal(data, got)
}

func (s *SessionHelpersTestSuite) TestSessionKeysShareTheStore() {
	s.cache.SetSession("abc123", "data", 0)

	s.ElementsMatch([]string{"session:abc123"}, s.cache.Keys("session:*"))

	value, ok := s.cache.Get("session:abc123")
	s.True(ok)
	s.Equal("data", value)
}

func (s *SessionHelpersTestSuite) TestDefaultSessionTTL() {
	s.cache.SetSession("abc123", "data", 0)

	ttl := s.cache.TTL(SessionKeyPrefix + "abc123")
	s.GreaterOrEqual(ttl, int(DefaultSessionTTL.Seconds())-1)
	s.LessOrEqual(ttl, int(DefaultSessionTTL.Seconds()))
}

func (s *SessionHelpersTestSuite) TestExplicitSessionTTL() {
	s.cache.SetSession("abc123", "data", 30*time.Second)

	ttl := s.cache.TTL(SessionKeyPrefix + "abc123")
	s.GreaterOrEqual(ttl, 29)
	s.LessOrEqual(ttl, 30)
}

func (s *SessionHelpersTestSuite) TestDeleteSession() {
	s.cache.SetSession("abc123", "data", 0)

	s.True(s.cache.DeleteSession("abc123"))
	s.False(s.cache.DeleteSession("abc123"))

	_, ok := s.cache.GetSession("abc123")
	s.False(ok)
}

func (s *SessionHelpersTestSuite) TestExtendSession() {
	s.cache.SetSession("abc123", "data", 30*time.Second)

	s.True(s.cache.ExtendSession("abc123", 7200))
	ttl := s.cache.TTL(SessionKeyPrefix + "abc123")
	s.Greater(ttl, 30)

	s.False(s.cache.ExtendSession("missing", 60))
}
