package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWellFormed(t *testing.T) {
	findings, err := Check([]byte(`{"apple": 7, "café": 0}`))

	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheckNegativeQuantity(t *testing.T) {
	findings, err := Check([]byte(`{"apple": -5}`))

	require.NoError(t, err)
	assert.NotEmpty(t, findings)
}

func TestCheckNonIntegerQuantity(t *testing.T) {
	for _, doc := range []string{`{"apple": "many"}`, `{"apple": 1.5}`, `{"apple": null}`} {
		findings, err := Check([]byte(doc))

		require.NoError(t, err, "doc %s", doc)
		assert.NotEmpty(t, findings, "doc %s", doc)
	}
}

func TestCheckEmptyName(t *testing.T) {
	findings, err := Check([]byte(`{"": 3}`))

	require.NoError(t, err)
	assert.NotEmpty(t, findings)
}

func TestCheckTopLevelNotObject(t *testing.T) {
	findings, err := Check([]byte(`[1, 2, 3]`))

	require.NoError(t, err)
	assert.NotEmpty(t, findings)
}

func TestCheckInvalidJSON(t *testing.T) {
	_, err := Check([]byte(`{"apple": `))

	assert.Error(t, err)
}

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"apple": 7}`), 0644))

	findings, err := CheckFile(path)
	require.NoError(t, err)
	assert.Empty(t, findings)

	_, err = CheckFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
