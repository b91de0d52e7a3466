package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumipallolabs/codemap/internal/cache"
	"github.com/lumipallolabs/codemap/internal/counter"
	"github.com/lumipallolabs/codemap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// codeCounter reports a fixed number of code lines per path
type codeCounter struct {
	code  map[string]int64
	calls int
}

func (c *codeCounter) Count(_ context.Context, path string) ([]counter.Record, error) {
	c.calls++
	n := c.code[path]
	return []counter.Record{{Language: "Go", Lines: n, Code: n}}, nil
}

func names(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func setupTree(t *testing.T) (string, *codeCounter) {
	t.Helper()
	tmp := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "c"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "b"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a"), []byte("a"), 0644))

	cc := &codeCounter{code: map[string]int64{
		tmp:                     60,
		filepath.Join(tmp, "a"): 10,
		filepath.Join(tmp, "b"): 30,
		filepath.Join(tmp, "c"): 20,
	}}
	return tmp, cc
}

func TestScanByCode(t *testing.T) {
	tmp, cc := setupTree(t)
	d := NewDir(cache.New(cc), OrderByCode)

	entries, err := d.Scan(context.Background(), tmp)
	require.NoError(t, err)

	assert.Equal(t, []string{"..", ".", "b", "c", "a"}, names(entries))
	assert.Nil(t, entries[0].Stats, "parent link has no stats")
	assert.Equal(t, filepath.Dir(tmp), entries[0].Path)
	assert.Equal(t, int64(60), entries[1].Stats.Code)
	assert.True(t, entries[1].IsDir)
	assert.False(t, entries[2].IsDir)
	assert.True(t, entries[3].IsDir)
}

func TestScanFilesystemOrder(t *testing.T) {
	tmp, cc := setupTree(t)
	d := NewDir(cache.New(cc), OrderFilesystem)

	children, err := readDirUnsorted(tmp)
	require.NoError(t, err)
	want := []string{"..", "."}
	for _, c := range children {
		want = append(want, c.Name())
	}

	first, err := d.Scan(context.Background(), tmp)
	require.NoError(t, err)
	second, err := d.Scan(context.Background(), tmp)
	require.NoError(t, err)

	assert.Equal(t, want, names(first))
	assert.Equal(t, names(first), names(second), "repeated scans are stable")
}

func TestScanUsesCache(t *testing.T) {
	tmp, cc := setupTree(t)
	d := NewDir(cache.New(cc), OrderByCode)

	_, err := d.Scan(context.Background(), tmp)
	require.NoError(t, err)
	assert.Equal(t, 4, cc.calls)

	_, err = d.Scan(context.Background(), tmp)
	require.NoError(t, err)
	assert.Equal(t, 4, cc.calls, "second scan is served from cache")
}

func TestScanTiesKeepFilesystemOrder(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"x", "y", "z"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), nil, 0644))
	}
	cc := &codeCounter{code: map[string]int64{}}

	byCode, err := NewDir(cache.New(cc), OrderByCode).Scan(context.Background(), tmp)
	require.NoError(t, err)
	unsorted, err := NewDir(cache.New(cc), OrderFilesystem).Scan(context.Background(), tmp)
	require.NoError(t, err)

	assert.Equal(t, names(unsorted), names(byCode))
}

func TestScanRoot(t *testing.T) {
	root := filepath.VolumeName(os.TempDir()) + string(filepath.Separator)
	require.True(t, IsRoot(root))

	cc := &codeCounter{code: map[string]int64{}}
	entries, err := NewDir(cache.New(cc), OrderByCode).Scan(context.Background(), root)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, ".", entries[0].Name, "no parent link at the root")
}

func TestScanMarksIgnored(t *testing.T) {
	tmp, cc := setupTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".ignore"), []byte("a\n"), 0644))

	entries, err := NewDir(cache.New(cc), OrderByCode).Scan(context.Background(), tmp)
	require.NoError(t, err)

	for _, e := range entries {
		assert.Equal(t, e.Name == "a", e.Ignored, e.Name)
	}
}

func TestScanThroughSymlinkKeepsLexicalPaths(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "real")
	link := filepath.Join(tmp, "link")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "f"), []byte("f"), 0644))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	cc := &codeCounter{code: map[string]int64{
		link:                       12,
		filepath.Join(link, "f"):   5,
		target:                     99,
		filepath.Join(target, "f"): 99,
	}}
	c := cache.New(cc)
	entries, err := NewDir(c, OrderByCode).Scan(context.Background(), link)
	require.NoError(t, err)

	require.Equal(t, []string{"..", ".", "f"}, names(entries))
	assert.Equal(t, tmp, entries[0].Path, "parent of the link, not of its target")
	assert.Equal(t, link, entries[1].Path)
	assert.Equal(t, int64(12), entries[1].Stats.Code)
	assert.Equal(t, filepath.Join(link, "f"), entries[2].Path)
	assert.Equal(t, int64(5), entries[2].Stats.Code)
	assert.Equal(t, 2, c.Len())
}

func TestScanMissingDir(t *testing.T) {
	cc := &codeCounter{}
	_, err := NewDir(cache.New(cc), OrderByCode).Scan(context.Background(), filepath.Join(t.TempDir(), "gone"))
	assert.Error(t, err)
	assert.Zero(t, cc.calls)
}

func TestOrderToggle(t *testing.T) {
	assert.Equal(t, OrderFilesystem, OrderByCode.Toggle())
	assert.Equal(t, OrderByCode, OrderFilesystem.Toggle())
	assert.Equal(t, "code", OrderByCode.String())
}
