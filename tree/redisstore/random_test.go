package redisstore

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newID(IDLength)
		if len(id) != IDLength {
			t.Errorf("Expected ID of length %d, got %q", IDLength, id)
		}
		for _, c := range id {
			if !strings.ContainsRune(idChars, c) {
				t.Errorf("Expected ID of alphanumeric characters, got %q", id)
			}
		}
		if seen[id] {
			t.Errorf("Expected unique IDs, got %q twice", id)
		}
		seen[id] = true
	}
}
