package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRaw(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDir_ReadAll(t *testing.T) {
	root := t.TempDir()
	writeRaw(t, root, ProductOriginFile, "id,name,price,Stock Available\nP001,Widget,5.0,10\n\nP002,Gadget,3.0,7\n")

	d := NewDir(root, Config{Delimiter: ","})
	rows, err := d.ReadAll(ProductOriginFile)

	require.NoError(t, err)
	// Blank line is skipped
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"P001", "Widget", "5.0", "10"}, rows[1])
	assert.Equal(t, []string{"P002", "Gadget", "3.0", "7"}, rows[2])
}

func TestDir_ReadAll_CustomDelimiter(t *testing.T) {
	root := t.TempDir()
	writeRaw(t, root, ProductOriginFile, "id|name|price|Stock Available\nP001|Widget|5.0|10\n")

	d := NewDir(root, Config{Delimiter: "|"})
	rows, err := d.ReadAll(ProductOriginFile)

	require.NoError(t, err)
	assert.Equal(t, []string{"P001", "Widget", "5.0", "10"}, rows[1])
}

func TestDir_ReadAll_RaggedRows(t *testing.T) {
	root := t.TempDir()
	writeRaw(t, root, CustomerDeleteFile, "phoneNumber\n0123456789\nC001,John,j@x.com,0987654321\n")

	d := NewDir(root, Config{Delimiter: ","})
	rows, err := d.ReadAll(CustomerDeleteFile)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 1)
	assert.Len(t, rows[2], 4)
}

func TestDir_ReadAll_MissingFile(t *testing.T) {
	d := NewDir(t.TempDir(), Config{Delimiter: ","})

	_, err := d.ReadAll(ProductOriginFile)

	assert.Error(t, err)
}

func TestDir_WriteAll_TruncatesExisting(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root, Config{Delimiter: ","})

	require.NoError(t, d.WriteAll(ProductOutputFile,
		[]string{"id", "name"},
		[][]string{{"P001", "Widget"}, {"P002", "Gadget"}}))
	require.NoError(t, d.WriteAll(ProductOutputFile,
		[]string{"id", "name"},
		[][]string{{"P003", "Sprocket"}}))

	data, err := os.ReadFile(filepath.Join(root, ProductOutputFile))
	require.NoError(t, err)
	assert.Equal(t, "id,name\nP003,Sprocket\n", string(data))
}

func TestErrorLog_AppendsAcrossRuns(t *testing.T) {
	root := t.TempDir()

	first := NewErrorLog(root)
	first.Log("Error on line 2: Product ID cannot be empty.")

	// A fresh instance models a new process run: the sink must append.
	second := NewErrorLog(root)
	second.Log("Error on line 3: Invalid email: nope")

	data, err := os.ReadFile(filepath.Join(root, ErrorFile))
	require.NoError(t, err)
	assert.Equal(t,
		"Error on line 2: Product ID cannot be empty.\nError on line 3: Invalid email: nope\n",
		string(data))
}

func TestConfig_DelimiterRune(t *testing.T) {
	assert.Equal(t, ',', Config{}.DelimiterRune())
	assert.Equal(t, ';', Config{Delimiter: ";"}.DelimiterRune())
}
