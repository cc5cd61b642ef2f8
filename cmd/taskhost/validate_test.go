package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklattice/taskhost/internal/options"
)

func TestBuildResolver_NoEnvFile(t *testing.T) {
	t.Setenv("TASKHOST_TEST_SITE", "Orders")

	resolver, err := buildResolver("")
	require.NoError(t, err)

	value, found := resolver.Lookup("TASKHOST_TEST_SITE")
	assert.True(t, found)
	assert.Equal(t, "Orders", value)
}

func TestBuildResolver_EnvFileLayersUnderProcess(t *testing.T) {
	t.Setenv("TASKHOST_TEST_SITE", "FromProcess")

	path := filepath.Join(t.TempDir(), ".env")
	content := "TASKHOST_TEST_SITE=FromFile\nTASKHOST_TEST_REGION=eu-west\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	resolver, err := buildResolver(path)
	require.NoError(t, err)

	// Process environment wins over dotenv values.
	value, _ := resolver.Lookup("TASKHOST_TEST_SITE")
	assert.Equal(t, "FromProcess", value)

	// Dotenv fills in what the process environment lacks.
	value, found := resolver.Lookup("TASKHOST_TEST_REGION")
	assert.True(t, found)
	assert.Equal(t, "eu-west", value)
}

func TestBuildResolver_MissingEnvFile(t *testing.T) {
	t.Parallel()

	_, err := buildResolver(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load env file")
}

func TestRenderOptionsSummary(t *testing.T) {
	t.Parallel()

	opts := options.New()
	opts.SetHubName("OrdersHub")

	summary := renderOptionsSummary("/etc/taskhost/options.toml", opts)
	assert.Contains(t, summary, "Path: /etc/taskhost/options.toml")
	assert.Contains(t, summary, "Task Hub: OrdersHub")
	assert.Contains(t, summary, "App Lease: true")
	assert.Contains(t, summary, "--tree")
}
