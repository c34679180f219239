package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, categories map[string]bool) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core), categories)
	t.Cleanup(func() { SetLogger(nil, nil) })
	return logs
}

func TestGet_NamesLoggerByCategory(t *testing.T) {
	logs := observe(t, nil)

	Get(CategoryBuild).Infow("table built", "columns", 12)
	Watch("watching %s", "boardpos.yaml")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "build", entries[0].LoggerName)
	assert.Equal(t, "table built", entries[0].Message)
	assert.Equal(t, int64(12), entries[0].ContextMap()["columns"])
	assert.Equal(t, "watch", entries[1].LoggerName)
	assert.Equal(t, "watching boardpos.yaml", entries[1].Message)
}

func TestGet_DisabledCategoryIsSilent(t *testing.T) {
	logs := observe(t, map[string]bool{"emit": false, "build": true})

	Get(CategoryEmit).Info("hidden")
	Get(CategoryBuild).Info("shown")
	Boot("unlisted categories stay on")

	assert.False(t, IsCategoryEnabled(CategoryEmit))
	assert.True(t, IsCategoryEnabled(CategoryBoot))
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, 0, logs.FilterLoggerName("emit").Len())
}

func TestGet_CachesPerCategory(t *testing.T) {
	observe(t, nil)
	assert.Same(t, Get(CategoryUI), Get(CategoryUI))
}

func TestSetLogger_ResetsCache(t *testing.T) {
	first := observe(t, nil)
	Get(CategoryConfig).Info("one")

	second := observe(t, nil)
	Get(CategoryConfig).Info("two")

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())
}

func TestNew(t *testing.T) {
	logger, err := New(Options{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = New(Options{Level: "error", Verbose: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}
