package parts_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/partbench/parts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errReader fails on the first Read to simulate an I/O fault mid-stream.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// TestLoad_Scenario checks the canonical three-line input.
func TestLoad_Scenario(t *testing.T) {
	pm, err := parts.Load(strings.NewReader("1,10\n2,10\n3,20\n"))
	require.NoError(t, err)
	assert.Equal(t, parts.PartMap{10: {1, 2}, 20: {3}}, pm)
	assert.Equal(t, []parts.PartID{10, 20}, pm.IDs())
}

// TestLoad_Delimiters accepts every supported delimiter.
func TestLoad_Delimiters(t *testing.T) {
	in := "1,5\n2\t5\n3 5\n4|5\n"
	pm, err := parts.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []parts.NodeID{1, 2, 3, 4}, pm[5])
}

// TestLoad_SkipsNonMatching verifies malformed lines are ignored silently.
func TestLoad_SkipsNonMatching(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"letters", "abc,def"},
		{"trailing text", "1,10 extra"},
		{"trailing delimiter", "1,10,"},
		{"leading space", " 1,10"},
		{"semicolon", "1;10"},
		{"double delimiter", "1,,10"},
		{"negative", "-1,10"},
		{"single number", "42"},
		{"empty", ""},
		{"overflow", "99999999999999999999,10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pm, err := parts.Load(strings.NewReader(tc.line + "\n7,8\n"))
			require.NoError(t, err)
			assert.Equal(t, parts.PartMap{8: {7}}, pm)
		})
	}
}

// TestLoad_CRLFAndNoFinalNewline covers Windows line endings and a last
// line without terminator.
func TestLoad_CRLFAndNoFinalNewline(t *testing.T) {
	pm, err := parts.Load(strings.NewReader("1,10\r\n2,10\r\n3,20"))
	require.NoError(t, err)
	assert.Equal(t, parts.PartMap{10: {1, 2}, 20: {3}}, pm)
}

// TestLoad_DuplicatesPreserved keeps repeated nodes inside a part.
func TestLoad_DuplicatesPreserved(t *testing.T) {
	pm, err := parts.Load(strings.NewReader("4|1\n4|1\n0|1\n"))
	require.NoError(t, err)
	assert.Equal(t, []parts.NodeID{4, 4, 0}, pm[1])
}

// TestLoad_Errors surfaces read and decode failures as ErrDataLoad.
func TestLoad_Errors(t *testing.T) {
	_, err := parts.Load(errReader{})
	assert.ErrorIs(t, err, parts.ErrDataLoad)

	_, err = parts.Load(strings.NewReader("1,2\n\xff\xfe,3\n"))
	assert.ErrorIs(t, err, parts.ErrDataLoad)

	_, err = parts.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, parts.ErrDataLoad)
}

// TestLoadFile_Idempotent loads the same file twice and compares.
func TestLoadFile_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,10\n2 10\nnoise\n3|20\n9\t20\n"), 0o600))

	first, err := parts.LoadFile(path)
	require.NoError(t, err)
	second, err := parts.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 4, first.NodeCount())
	assert.Equal(t, parts.NodeID(9), first.MaxNode())
}
