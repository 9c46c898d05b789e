package snapshot

import (
	"context"
	"testing"

	"github.com/wallery/wallery/pkg/errors"
)

func TestOpenDefaultsToFile(t *testing.T) {
	store, err := Open(context.Background(), Options{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*FileStore); !ok {
		t.Errorf("Open default = %T, want *FileStore", store)
	}
}

func TestOpenMemory(t *testing.T) {
	store, err := Open(context.Background(), Options{Backend: BackendMemory})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*MemoryStore); !ok {
		t.Errorf("Open = %T, want *MemoryStore", store)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: "carrier-pigeon"})
	if err == nil {
		t.Fatal("Open should reject unknown backends")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidConfig)
	}
}
