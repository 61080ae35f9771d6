package domain_test

import (
	"testing"

	"github.com/packship/packship/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestVersionMap_Clone(t *testing.T) {
	m := domain.VersionMap{"pkg": {Version: 1, ContentHash: "h1"}}

	clone := m.Clone()
	clone["pkg"] = domain.VersionRecord{Version: 2, ContentHash: "h2"}
	clone["other"] = domain.VersionRecord{Version: 1, ContentHash: "x"}

	assert.Equal(t, 1, m["pkg"].Version)
	assert.NotContains(t, m, "other")
}
