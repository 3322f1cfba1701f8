package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandArgumentsNoGlob(t *testing.T) {
	directory := t.TempDir()
	pattern := filepath.Join(directory, "*.txt")

	paths, err := ExpandArguments([]string{pattern}, false)
	if err != nil {
		t.Fatal("unable to expand arguments:", err)
	}
	if len(paths) != 1 || paths[0] != pattern {
		t.Error("arguments modified without globbing:", paths)
	}
}

func TestExpandArgumentsGlob(t *testing.T) {
	// Create a small directory hierarchy.
	directory := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.exe", filepath.Join("sub", "d.txt")} {
		path := filepath.Join(directory, name)
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			t.Fatal("unable to create directory:", err)
		}
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal("unable to create file:", err)
		}
	}

	testCases := []struct {
		pattern  string
		expected []string
	}{
		{"*.txt", []string{"a.txt", "b.txt"}},
		{"**/*.txt", []string{"a.txt", "b.txt", filepath.Join("sub", "d.txt")}},
		{"{a,c}.*", []string{"a.txt", "c.exe"}},
	}

	for _, testCase := range testCases {
		paths, err := ExpandArguments([]string{filepath.Join(directory, testCase.pattern)}, true)
		if err != nil {
			t.Errorf("unable to expand %s: %v", testCase.pattern, err)
			continue
		}
		if len(paths) != len(testCase.expected) {
			t.Errorf("match count mismatch for %s: %v", testCase.pattern, paths)
			continue
		}
		for i, path := range paths {
			if path != filepath.Join(directory, testCase.expected[i]) {
				t.Errorf("match mismatch for %s: %s != %s", testCase.pattern, path, testCase.expected[i])
			}
		}
	}
}

func TestExpandArgumentsGlobNoMatches(t *testing.T) {
	pattern := filepath.Join(t.TempDir(), "*.missing")
	if _, err := ExpandArguments([]string{pattern}, true); err == nil {
		t.Error("pattern without matches accepted")
	}
}

func TestExpandArgumentsRelative(t *testing.T) {
	paths, err := ExpandArguments([]string{"relative"}, false)
	if err != nil {
		t.Fatal("unable to expand arguments:", err)
	}
	if !filepath.IsAbs(paths[0]) {
		t.Error("relative argument not made absolute:", paths[0])
	}
}
