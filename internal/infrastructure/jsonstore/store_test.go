package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type testDoc struct {
	Counter int               `json:"counter"`
	Names   map[string]string `json:"names"`
}

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store, dir
}

func TestReadMissingDocumentLeavesDefaults(t *testing.T) {
	store, _ := newStore(t)

	doc := testDoc{Counter: 7}
	if err := store.Read("absent", &doc); err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.Counter != 7 {
		t.Errorf("counter = %d, want defaults untouched", doc.Counter)
	}
}

func TestReadCorruptDocumentLeavesDefaults(t *testing.T) {
	store, dir := newStore(t)

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	var doc testDoc
	if err := store.Read("broken", &doc); err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.Counter != 0 || doc.Names != nil {
		t.Errorf("doc = %+v, want zero value", doc)
	}
}

func TestWriteThenReadRoundtrip(t *testing.T) {
	store, dir := newStore(t)

	in := testDoc{Counter: 3, Names: map[string]string{"a": "b"}}
	if err := store.Write("doc", in); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out testDoc
	if err := store.Read("doc", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Counter != 3 || out.Names["a"] != "b" {
		t.Errorf("roundtrip = %+v", out)
	}

	// no temp file left behind
	if _, err := os.Stat(filepath.Join(dir, "doc.json.tmp")); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp file must be renamed away")
	}
}

func TestUpdateSkipsWriteOnError(t *testing.T) {
	store, _ := newStore(t)

	if err := store.Write("doc", testDoc{Counter: 1}); err != nil {
		t.Fatalf("write: %v", err)
	}

	boom := errors.New("boom")
	var doc testDoc
	err := store.Update("doc", &doc, func() error {
		doc.Counter = 99
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("update err = %v, want boom", err)
	}

	var after testDoc
	if err := store.Read("doc", &after); err != nil {
		t.Fatalf("read: %v", err)
	}
	if after.Counter != 1 {
		t.Errorf("counter = %d, want 1: failed mutate must not persist", after.Counter)
	}
}

func TestUpdateSerializesConcurrentMutations(t *testing.T) {
	store, _ := newStore(t)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var doc testDoc
			_ = store.Update("counter", &doc, func() error {
				doc.Counter++
				return nil
			})
		}()
	}
	wg.Wait()

	var doc testDoc
	if err := store.Read("counter", &doc); err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.Counter != workers {
		t.Errorf("counter = %d, want %d: updates must not be lost", doc.Counter, workers)
	}
}
