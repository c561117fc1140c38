package params

import (
	"os"
	"testing"

	"github.com/ekomkassa/hubctl/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppdataDirResolvesThroughApplication(t *testing.T) {
	require.NotEmpty(t, AppdataDir)

	dir, err := application.GetApplicationDirectory()
	require.NoError(t, err)
	assert.Equal(t, dir, AppdataDir)

	info, err := os.Stat(AppdataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
