package logsvc

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/edcentre/core/person"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestZeroLogger_levels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantMsgs  []string
		wantLevel []string
	}{
		{name: "warn", level: "warn", wantMsgs: []string{"w", "e"}, wantLevel: []string{"warn", "error"}},
		{name: "debug", level: "debug", wantMsgs: []string{"d", "i", "w", "e"}, wantLevel: []string{"debug", "info", "warn", "error"}},
		{name: "unknown falls back to warn", level: "lol", wantMsgs: []string{"w", "e"}, wantLevel: []string{"warn", "error"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewZeroLogger(&buf, tt.level)
			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")

			entries := decodeLines(t, &buf)
			require.Len(t, entries, len(tt.wantMsgs))
			for i, entry := range entries {
				assert.Equal(t, tt.wantMsgs[i], entry["message"])
				assert.Equal(t, tt.wantLevel[i], entry["level"])
			}
		})
	}
}

func TestZeroLogger_args(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, "info")

	rec, err := person.New(person.RoleAdmin)
	require.NoError(t, err)
	rec.Base().Name = "Grace"

	l.Info("record added", rec, errors.New("boom"), map[string]interface{}{"menu": 1}, 42)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "record added", entry["message"])
	assert.Equal(t, rec.Base().ID.String(), entry["record_id"])
	assert.Equal(t, "Admin", entry["role"])
	assert.Equal(t, "Grace", entry["name"])
	assert.Equal(t, "boom", entry["error"])
	assert.EqualValues(t, 1, entry["menu"])
	assert.EqualValues(t, 42, entry["arg3"])
}

func TestNopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		l := NewNopLogger()
		l.Info("ignored")
		l.Error("ignored", errors.New("boom"))
	})
}
