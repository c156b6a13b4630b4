package phantomfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conf "github.com/jorge-borbinha/ReadPhantom/config"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestReadOrganFieldBinary(t *testing.T) {
	path := writeTempFile(t, "phantom.dat", []byte{0, 1, 2, 255})

	organ, err := ReadOrganField(path, conf.FormatBinary)
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 1, 2, 255}, organ)
}

func TestReadOrganFieldASCII(t *testing.T) {
	// Lines carry inconsistent numbers of values; only whitespace
	// separation matters.
	path := writeTempFile(t, "phantom.dat", []byte("1 2 3\n4\n\n 5 6\t7\n8\n"))

	organ, err := ReadOrganField(path, conf.FormatASCII)
	require.NoError(t, err)

	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8}, organ)
}

func TestReadOrganFieldASCIIRejectsNonIntegers(t *testing.T) {
	path := writeTempFile(t, "phantom.dat", []byte("1 2 liver 4"))

	_, err := ReadOrganField(path, conf.FormatASCII)
	assert.Error(t, err)
}

func TestReadOrganFieldGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phantom.dat.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	compressor := gzip.NewWriter(file)
	_, err = compressor.Write([]byte{7, 8, 9})
	require.NoError(t, err)
	require.NoError(t, compressor.Close())
	require.NoError(t, file.Close())

	organ, err := ReadOrganField(path, conf.FormatBinary)
	require.NoError(t, err)

	assert.Equal(t, []int32{7, 8, 9}, organ)
}

func TestReadOrganFieldMissingFile(t *testing.T) {
	_, err := ReadOrganField(filepath.Join(t.TempDir(), "absent.dat"), conf.FormatBinary)
	assert.Error(t, err)
}

func TestReadOrganFieldUnknownFormat(t *testing.T) {
	path := writeTempFile(t, "phantom.dat", []byte{1})

	_, err := ReadOrganField(path, "utf-16")
	assert.Error(t, err)
}
