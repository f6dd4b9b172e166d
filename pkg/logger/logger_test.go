package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFallback(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", "").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("loud", "").GetLevel())
}

func TestNew_WritesJSONToFile(t *testing.T) {
	// Подготовка
	path := filepath.Join(t.TempDir(), "app.log")
	log := New("info", path)

	// Действие
	log.WithField("incident_id", "X1").Info("incident claimed")

	// Проверки
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "incident claimed", entry["msg"])
	assert.Equal(t, "X1", entry["incident_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestOutput_StdoutWithoutFile(t *testing.T) {
	assert.Equal(t, os.Stdout, Output(""))
}
