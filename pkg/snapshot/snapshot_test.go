package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSnapshot(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() {
		_ = os.Chdir(wd)
	}()

	obj := map[string]int{"pot": 60}
	ValidateSnapshot(t, obj, 0)

	b, err := os.ReadFile(filepath.Join("testdata", "snapshot.TestValidateSnapshot-0.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"pot\": 60\n}\n", string(b))

	// the second call gets its own file
	ValidateSnapshot(t, obj, 0)
	_, err = os.Stat(filepath.Join("testdata", "snapshot.TestValidateSnapshot-1.json"))
	assert.NoError(t, err)
}
