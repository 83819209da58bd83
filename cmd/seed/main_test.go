package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSeedComplete_OmitsPassword(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	logSeedComplete(zap.New(core))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, adminEmail, fields["admin_email"])
	for key, value := range fields {
		assert.NotContains(t, strings.ToLower(key), "password")
		assert.NotEqual(t, adminPassword, value)
	}
}

func TestDefaultCategories(t *testing.T) {
	require.Len(t, defaultCategories, 8)
	seen := make(map[string]bool)
	for i, c := range defaultCategories {
		assert.False(t, seen[c.name], "duplicate %s", c.name)
		seen[c.name] = true
		assert.Equal(t, i+1, c.sortOrder)
	}
}
