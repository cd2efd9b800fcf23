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

package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) TestParseLogLevel() {
	testCases := []struct {
		name     string
		logLevel string
		expected slog.Level
	}{
		{"Debug", "debug", slog.LevelDebug},
		{"Info", "info", slog.LevelInfo},
		{"Warn", "warn", slog.LevelWarn},
		{"Error", "error", slog.LevelError},
		{"Invalid", "invalid", slog.LevelInfo},
		{"Empty", "", slog.LevelInfo},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLogLevel(tc.logLevel))
		})
	}
}

func (suite *LogTestSuite) TestIsDebugEnabled() {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	debugLogger := &Logger{internal: slog.New(handler), level: slog.LevelDebug}
	assert.True(suite.T(), debugLogger.IsDebugEnabled())

	infoLogger := &Logger{internal: slog.New(handler), level: slog.LevelInfo}
	assert.False(suite.T(), infoLogger.IsDebugEnabled())
}

func (suite *LogTestSuite) TestLogMethods() {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := &Logger{internal: slog.New(handler), level: slog.LevelDebug}

	logger.Debug("Debug message", Field{Key: "test", Value: "debug"})
	logger.Info("Info message", Field{Key: "test", Value: "info"})
	logger.Warn("Warning message", Field{Key: "test", Value: "warn"})
	logger.Error("Error message", Field{Key: "test", Value: "error"})

	output := buf.String()
	assert.Contains(suite.T(), output, "Debug message")
	assert.Contains(suite.T(), output, "Info message")
	assert.Contains(suite.T(), output, "Warning message")
	assert.Contains(suite.T(), output, "Error message")
	assert.Contains(suite.T(), output, "test=debug")
}

func (suite *LogTestSuite) TestLoggerWith() {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := &Logger{internal: slog.New(handler), level: slog.LevelDebug}

	contextLogger := logger.With(Field{Key: "context", Value: "test"})
	contextLogger.Info("Context log message")

	output := buf.String()
	assert.Contains(suite.T(), output, "context=test")
	assert.Contains(suite.T(), output, "Context log message")
}

func (suite *LogTestSuite) TestMaskString() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", "****"},
		{"Short", "abcd", "****"},
		{"FiveChars", "abcde", "ab*de"},
		{"Normal", "password", "pa****rd"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskString(tc.input))
		})
	}
}
