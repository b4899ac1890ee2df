package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cases := []ColorBounds{
		DefaultBounds(),
		{Lower: [3]int{35, 100, 100}, Upper: [3]int{50, 255, 255}},
		{Lower: [3]int{0, 0, 0}, Upper: [3]int{0, 0, 0}},
		// inverted bounds are legal
		{Lower: [3]int{200, 10, 90}, Upper: [3]int{20, 5, 80}},
	}

	for _, want := range cases {
		t.Run(want.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "limits.json")
			s := NewStore(path)

			require.NoError(t, s.Save(want))

			got, err := s.Load()
			require.NoError(t, err)
			if diff := cmp.Diff(want, *got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.json"))

	b, err := s.Load()
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestLoadMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":      `{"HSV_min": [1, 2`,
		"short triple":  `{"HSV_min": [1, 2], "HSV_max": [3, 4, 5]}`,
		"missing max":   `{"HSV_min": [1, 2, 3]}`,
		"out of range":  `{"HSV_min": [0, 0, 0], "HSV_max": [256, 0, 0]}`,
		"negative":      `{"HSV_min": [-1, 0, 0], "HSV_max": [10, 10, 10]}`,
		"wrong type":    `{"HSV_min": "red", "HSV_max": [10, 10, 10]}`,
		"empty content": ``,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "limits.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			b, err := NewStore(path).Load()
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "limits.json"))

	b, err := s.LoadOrDefault()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, DefaultBounds(), b)

	want := ColorBounds{Lower: [3]int{1, 2, 3}, Upper: [3]int{4, 5, 6}}
	require.NoError(t, s.Save(want))

	b, err = s.LoadOrDefault()
	assert.NoError(t, err)
	assert.Equal(t, want, b)
}

func TestSaveLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.json")
	require.NoError(t, NewStore(path).Save(ColorBounds{Lower: [3]int{1, 2, 3}, Upper: [3]int{4, 5, 6}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"HSV_min": [1, 2, 3], "HSV_max": [4, 5, 6]}`, string(data))

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.json")
	s := NewStore(path)

	require.NoError(t, s.Save(DefaultBounds()))
	second := ColorBounds{Lower: [3]int{9, 9, 9}, Upper: [3]int{10, 10, 10}}
	require.NoError(t, s.Save(second))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, second, *got)
}

func TestSaveIntoMissingDirFails(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "missing", "limits.json"))
	assert.Error(t, s.Save(DefaultBounds()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "limits.json"))

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save(ColorBounds{Lower: [3]int{i, i, i}, Upper: [3]int{200, 200, 200}}))
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "limits.json", entries[0].Name())

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm()&0644)
}
