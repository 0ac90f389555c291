package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "2026-01-02", "1a2b3c")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, "1a2b3c", info.BuildCommit())
	assert.Equal(t, "v1.2.0 (commit 1a2b3c, built 2026-01-02)", info.String())
}
