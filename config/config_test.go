package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"claritel/claritel_go_admin_service/config"
)

func TestBootstrapTokenDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", config.DebugMode)
	cfg := config.Load()
	assert.Equal(t, "org_test_token", cfg.BootstrapToken)

	t.Setenv("ENVIRONMENT", config.TestMode)
	cfg = config.Load()
	assert.Equal(t, "org_test_token", cfg.BootstrapToken)

	// a release deploy gets no bootstrap token unless it sets one
	t.Setenv("ENVIRONMENT", config.ReleaseMode)
	cfg = config.Load()
	assert.Equal(t, "", cfg.BootstrapToken)

	t.Setenv("BOOTSTRAP_TOKEN", "release_token")
	cfg = config.Load()
	assert.Equal(t, "release_token", cfg.BootstrapToken)
}
