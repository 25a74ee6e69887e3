// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const productsCSV = `product_id,product_name,category,image_url,platforms
1,Wireless Headphones,Electronics,https://img/1,Amazon|Best Buy|Newegg
2,Ergonomic Desk Chair,Home Goods,https://img/2,Amazon|Wayfair
3,Sci-Fi Novel,Books,https://img/3,Amazon
`

const behaviorCSV = `user_id,viewed_product_id
101,1
101,2
102,1
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStore(t *testing.T) {
	s, err := LoadStore(writeTemp(t, "products.csv", productsCSV))
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	it, ok := s.Get(1)
	if !ok {
		t.Fatal("item 1 missing")
	}
	if it.Name != "Wireless Headphones" || it.Category != "Electronics" {
		t.Errorf("unexpected item: %+v", it)
	}
	want := []string{"Amazon", "Best Buy", "Newegg"}
	if len(it.Platforms) != len(want) {
		t.Fatalf("platforms = %v, want %v", it.Platforms, want)
	}
	for i := range want {
		if it.Platforms[i] != want[i] {
			t.Errorf("platforms[%d] = %q, want %q", i, it.Platforms[i], want[i])
		}
	}
}

func TestLoadStoreColumnOrderIndependent(t *testing.T) {
	shuffled := `category,product_id,platforms,product_name,image_url
Books,9,Audible,Classic Anthology,https://img/9
`
	s, err := LoadStore(writeTemp(t, "products.csv", shuffled))
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}

	it, ok := s.Get(9)
	if !ok || it.Name != "Classic Anthology" || it.Category != "Books" {
		t.Errorf("Get(9) = %+v, %v", it, ok)
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	if _, err := LoadStore(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadStoreMissingColumn(t *testing.T) {
	_, err := LoadStore(writeTemp(t, "products.csv", "product_id,product_name\n1,X\n"))
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "category") {
		t.Errorf("error should name the missing column: %v", err)
	}
}

func TestLoadStoreBadID(t *testing.T) {
	bad := strings.Replace(productsCSV, "1,Wireless", "abc,Wireless", 1)
	if _, err := LoadStore(writeTemp(t, "products.csv", bad)); err == nil {
		t.Fatal("expected error for non-integer product_id")
	}
}

func TestLoadLog(t *testing.T) {
	l, err := LoadLog(writeTemp(t, "user_behavior.csv", behaviorCSV))
	if err != nil {
		t.Fatalf("LoadLog: %v", err)
	}

	if len(l.History(101)) != 2 {
		t.Errorf("history(101) = %v", l.History(101))
	}
	if len(l.Viewers(1)) != 2 {
		t.Errorf("viewers(1) = %v", l.Viewers(1))
	}
}

func TestLoadLogMissingFile(t *testing.T) {
	if _, err := LoadLog(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSplitPlatforms(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"Amazon|Best Buy|Newegg", 3},
		{"Amazon", 1},
		{"", 0},
		{"Amazon||Target", 2},
	}

	for _, tt := range tests {
		if got := splitPlatforms(tt.input); len(got) != tt.want {
			t.Errorf("splitPlatforms(%q) = %v, want %d labels", tt.input, got, tt.want)
		}
	}
}
