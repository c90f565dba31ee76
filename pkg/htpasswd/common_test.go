package htpasswd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keepPkgHtpasswdFiles = os.Getenv("KEEP_PKG_HTPASSWD_TEST_FILES") == "yes"
)

func b(in string) []byte {
	return []byte(in)
}

func newTestFile(t *testing.T, name string, content string) testFile {
	prefix := t.Name()
	prefix = strings.ReplaceAll(prefix, "/", "_")
	prefix = strings.ReplaceAll(prefix, "\\", "_")
	prefix = strings.ReplaceAll(prefix, "*", "_")
	prefix = strings.ReplaceAll(prefix, "$", "_")

	f, err := os.CreateTemp("", "go-test-"+prefix+"-"+name+"-*")
	require.NoError(t, err)

	_, err = io.Copy(f, strings.NewReader(content))
	require.NoError(t, err)

	require.NoError(t, f.Close())

	return testFile(f.Name())
}

type testFile string

func (this testFile) dispose(t *testing.T) {
	if keepPkgHtpasswdFiles {
		t.Logf("File %q preserved", this)
		return
	}

	err := os.Remove(string(this))
	if os.IsNotExist(err) {
		return
	}
	assert.NoError(t, err, "test file %q should be deleted after the test", this)
}

func (this testFile) update(t *testing.T, with string) {
	f, err := os.OpenFile(string(this), os.O_TRUNC|os.O_WRONLY, 0600)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	_, err = io.Copy(f, strings.NewReader(with))
	require.NoError(t, err)
}

func (this testFile) content(t *testing.T) string {
	f, err := os.OpenFile(string(this), os.O_RDONLY, 0)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	all, err := io.ReadAll(f)
	require.NoError(t, err)

	return string(all)
}

func newTestDir(t *testing.T, name string) testDir {
	prefix := t.Name()
	prefix = strings.ReplaceAll(prefix, "/", "_")
	prefix = strings.ReplaceAll(prefix, "\\", "_")
	prefix = strings.ReplaceAll(prefix, "*", "_")
	prefix = strings.ReplaceAll(prefix, "$", "_")

	result, err := os.MkdirTemp("", "go-test-"+prefix+"-"+name+"-*")
	require.NoError(t, err)

	return testDir(result)
}

type testDir string

func (this testDir) dispose(t *testing.T) {
	if keepPkgHtpasswdFiles {
		t.Logf("Directory %q preserved", this)
		return
	}

	err := os.RemoveAll(string(this))
	if os.IsNotExist(err) {
		return
	}
	assert.NoError(t, err, "test directory %q should be deleted after the test", this)
}

func (this testDir) child(sub ...string) string {
	return filepath.Join(append([]string{string(this)}, sub...)...)
}
