package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info json", level: "info", format: "json", expectLevel: logrus.InfoLevel, expectJSON: true},
		{name: "warn upper-case", level: "WARN", format: "TEXT", expectLevel: logrus.WarnLevel},
		{name: "error json", level: "error", format: "JSON", expectLevel: logrus.ErrorLevel, expectJSON: true},
		{name: "invalid level falls back to info", level: "chatty", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			_, isJSON := adapter.logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSON, isJSON)
		})
	}
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func newJSONAdapter(buf *bytes.Buffer) Logger {
	base := logrus.New()
	base.SetOutput(buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.JSONFormatter{})
	return NewLogrusAdapterFromLogger(base)
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestLogrusAdapter_LevelsAndFields(t *testing.T) {
	tests := []struct {
		name  string
		log   func(Logger)
		level string
	}{
		{name: "debug", log: func(l Logger) { l.Debug("scan", F(FieldRow, 4)) }, level: "debug"},
		{name: "info", log: func(l Logger) { l.Info("scan", F(FieldRow, 4)) }, level: "info"},
		{name: "warn", log: func(l Logger) { l.Warn("scan", F(FieldRow, 4)) }, level: "warning"},
		{name: "error", log: func(l Logger) { l.Error("scan", F(FieldRow, 4)) }, level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newJSONAdapter(&buf))

			line := decodeLine(t, &buf)
			assert.Equal(t, tt.level, line["level"])
			assert.Equal(t, "scan", line["msg"])
			assert.Equal(t, float64(4), line[FieldRow])
		})
	}
}

func TestLogrusAdapter_DerivedLoggers(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONAdapter(&buf).
		WithField(FieldPass, "fill").
		WithFields(F(FieldSheet, "Kontoutskrift"), F(FieldCount, 3)).
		WithError(errors.New("boom"))

	logger.Info("pass done")

	line := decodeLine(t, &buf)
	assert.Equal(t, "fill", line[FieldPass])
	assert.Equal(t, "Kontoutskrift", line[FieldSheet])
	assert.Equal(t, float64(3), line[FieldCount])
	assert.Equal(t, "boom", line["error"])
}

func TestLogrusAdapter_DerivedDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newJSONAdapter(&buf)
	_ = parent.WithField(FieldPass, "regroup")

	parent.Info("plain")
	line := decodeLine(t, &buf)
	_, present := line[FieldPass]
	assert.False(t, present)
}

func TestNewDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	assert.NotPanics(t, func() {
		logger.Info("ignored", F(FieldCount, 1))
		logger.WithError(errors.New("x")).Error("ignored")
	})
}

func TestMockLogger(t *testing.T) {
	mock := NewMockLogger()
	child := mock.WithField(FieldPass, "insert")
	child.Info("appended", F(FieldCount, 2))
	mock.WithError(errors.New("bad row")).Warn("skipped")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.True(t, mock.HasEntry("INFO", "appended"))

	v, ok := entries[0].FieldValue(FieldPass)
	require.True(t, ok)
	assert.Equal(t, "insert", v)
	v, ok = entries[0].FieldValue(FieldCount)
	require.True(t, ok)
	assert.Equal(t, 2, v)

	warns := mock.GetEntriesByLevel("WARN")
	require.Len(t, warns, 1)
	assert.EqualError(t, warns[0].Error, "bad row")

	mock.Clear()
	assert.Empty(t, mock.Entries())
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var mock MockLogger
	mock.Fatalf("failed %d", 1)
	assert.True(t, mock.HasEntry("FATAL", "failed 1"))
}
