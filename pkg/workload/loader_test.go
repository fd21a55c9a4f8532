package workload

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesKeyIDPairs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workload.csv")
	content := "# comment\n1,100\n2,200\n\n3,300\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write workload file: %v", err)
	}

	w, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(w.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(w.Records))
	}
	if w.Records[0].Key != 1 || w.Records[0].Value != 100 {
		t.Fatalf("unexpected first record: %+v", w.Records[0])
	}
	if w.Records[2].Key != 3 || w.Records[2].Value != 300 {
		t.Fatalf("unexpected third record: %+v", w.Records[2])
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("1,2,3\n"), 0o644); err != nil {
		t.Fatalf("write workload file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed line")
	}
}

func TestGenerateAscending(t *testing.T) {
	w := Generate(10, 1, false)
	if len(w.Records) != 10 {
		t.Fatalf("expected 10 records, got %d", len(w.Records))
	}
	for i, rec := range w.Records {
		if rec.Key != int32(i) {
			t.Fatalf("expected ascending key %d at position %d, got %d", i, i, rec.Key)
		}
	}
}

func TestGenerateShuffleIsDeterministicPerSeed(t *testing.T) {
	a := Generate(50, 42, true)
	b := Generate(50, 42, true)

	for i := range a.Records {
		if a.Records[i].Key != b.Records[i].Key {
			t.Fatalf("same seed produced different order at position %d", i)
		}
	}

	seen := make(map[int32]bool)
	for _, rec := range a.Records {
		seen[rec.Key] = true
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 distinct keys after shuffle, got %d", len(seen))
	}
}

func TestSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.csv")

	original := Generate(5, 7, false)
	if err := Save(path, original); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded.Records) != len(original.Records) {
		t.Fatalf("expected %d records, got %d", len(original.Records), len(loaded.Records))
	}
	for i := range original.Records {
		if loaded.Records[i] != original.Records[i] {
			t.Fatalf("record %d mismatch: want %+v, got %+v", i, original.Records[i], loaded.Records[i])
		}
	}
}
