package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersions(t *testing.T) {
	versions, err := Versions()
	require.NoError(t, err)

	require.NotEmpty(t, versions)
	assert.Equal(t, "001_create_opportunities", versions[0])
	assert.IsIncreasing(t, versions)
}
