package dataset

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSONL = `{"task_id":"HumanEval/0","prompt":"def f(x):\n","canonical_solution":"    return x\n","entry_point":"f"}

{"task_id":"HumanEval/1","prompt":"def g(y):\n","canonical_solution":"    return y * 2\n","entry_point":"g"}
`

// TestReadExamples checks JSONL parsing, blank-line skipping and ordering.
func TestReadExamples(t *testing.T) {
	examples, err := Read(strings.NewReader(sampleJSONL), 0)
	require.NoError(t, err)
	require.Len(t, examples, 2)
	assert.Equal(t, "HumanEval/0", examples[0].TaskID)
	assert.Equal(t, "def g(y):\n", examples[1].Prompt)
}

// TestReadLimit checks the example cap.
func TestReadLimit(t *testing.T) {
	examples, err := Read(strings.NewReader(sampleJSONL), 1)
	require.NoError(t, err)
	assert.Len(t, examples, 1)
}

// TestReadMalformed checks a bad record fails with its line number.
func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("{\"task_id\":\"a\"}\nnot json\n"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

// TestLoadGzip checks transparent decompression by extension.
func TestLoadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.jsonl.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(sampleJSONL))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	examples, err := Load(path, 0)
	require.NoError(t, err)
	assert.Len(t, examples, 2)
}

// TestLoadMissingFile checks the not-found error message.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.jsonl"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// TestPrompts checks prompt extraction keeps order.
func TestPrompts(t *testing.T) {
	examples, err := Read(strings.NewReader(sampleJSONL), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"def f(x):\n", "def g(y):\n"}, Prompts(examples))
}
