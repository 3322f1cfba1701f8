package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mutagen-io/winstat/pkg/stat"
)

func TestQueryPreservesOrder(t *testing.T) {
	// Create paths of distinct lengths, which the test native reports as
	// their sizes.
	var paths []string
	for i := 0; i < 25; i++ {
		paths = append(paths, fmt.Sprintf(`C:\%s.txt`, strings.Repeat("a", i)))
	}
	paths[7] = `C:\missing.txt`

	for _, concurrency := range []int{0, 1, 4, 100} {
		results := query(stat.New(testNative{}, nil), paths, concurrency)
		if len(results) != len(paths) {
			t.Fatal("result count mismatch:", len(results))
		}
		for i, result := range results {
			if i == 7 {
				if result.err == nil {
					t.Error("missing path queried successfully")
				}
				continue
			} else if result.err != nil {
				t.Errorf("query for path %d failed: %v", i, result.err)
				continue
			}
			if result.status.Size() != uint64(len(paths[i])) {
				t.Errorf("result %d out of order with concurrency %d", i, concurrency)
			}
		}
	}
}

func TestQueryEmpty(t *testing.T) {
	if results := query(stat.New(testNative{}, nil), nil, 0); len(results) != 0 {
		t.Error("results returned for empty path list")
	}
}
