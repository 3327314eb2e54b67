package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTraceWriter_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")

	writer, err := NewTraceWriter(path)
	if err != nil {
		t.Fatalf("Failed to create trace writer: %v", err)
	}

	entries := []Entry{
		{Iteration: 1, Lower: -200, Upper: 47.2, Width: 247.2, Timestamp: time.Now()},
		{Iteration: 2, Lower: -105.6, Upper: 47.2, Width: 152.8, Timestamp: time.Now()},
		{Iteration: 3, Lower: -105.6, Upper: -11.2, Width: 94.4, Timestamp: time.Now()},
	}

	for _, entry := range entries {
		if err := writer.Write(entry); err != nil {
			t.Fatalf("Failed to write entry: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close writer: %v", err)
	}

	reader, err := NewTraceReader(path)
	if err != nil {
		t.Fatalf("Failed to create trace reader: %v", err)
	}
	defer reader.Close()

	readEntries, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read entries: %v", err)
	}

	if len(readEntries) != len(entries) {
		t.Fatalf("Expected %d entries, got %d", len(entries), len(readEntries))
	}

	for i, entry := range readEntries {
		if entry.Iteration != entries[i].Iteration {
			t.Errorf("Entry %d: expected iteration %d, got %d", i, entries[i].Iteration, entry.Iteration)
		}
		if entry.Lower != entries[i].Lower || entry.Upper != entries[i].Upper {
			t.Errorf("Entry %d: expected bracket [%v, %v], got [%v, %v]",
				i, entries[i].Lower, entries[i].Upper, entry.Lower, entry.Upper)
		}
		if entry.Width != entries[i].Width {
			t.Errorf("Entry %d: expected width %v, got %v", i, entries[i].Width, entry.Width)
		}
	}
}

func TestTraceWriter_Flush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")

	writer, err := NewTraceWriter(path)
	if err != nil {
		t.Fatalf("Failed to create trace writer: %v", err)
	}
	defer writer.Close()

	if err := writer.Write(Entry{Iteration: 1, Width: 1.0, Timestamp: time.Now()}); err != nil {
		t.Fatalf("Failed to write entry: %v", err)
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}

	// Data should be on disk without closing.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read trace file: %v", err)
	}
	if len(data) == 0 {
		t.Error("Trace file is empty after flush")
	}
}

func TestTraceReader_ReadIteratively(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")

	writer, err := NewTraceWriter(path)
	if err != nil {
		t.Fatalf("Failed to create trace writer: %v", err)
	}
	for i := 1; i <= 5; i++ {
		if err := writer.Write(Entry{Iteration: i, Width: 100 / float64(i), Timestamp: time.Now()}); err != nil {
			t.Fatalf("Failed to write entry: %v", err)
		}
	}
	writer.Close()

	reader, err := NewTraceReader(path)
	if err != nil {
		t.Fatalf("Failed to create trace reader: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		entry, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Failed to read entry: %v", err)
		}
		count++
		if entry.Iteration != count {
			t.Errorf("Entry %d: expected iteration %d, got %d", count, count, entry.Iteration)
		}
	}

	if count != 5 {
		t.Errorf("Expected to read 5 entries, got %d", count)
	}
}

func TestTraceReader_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.jsonl")

	_, err := NewTraceReader(path)
	if err == nil {
		t.Fatal("Expected error for nonexistent trace file")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected NotFoundError, got %T: %v", err, err)
	}
}

func TestTraceWriter_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")

	writer, err := NewTraceWriter(path)
	if err != nil {
		t.Fatalf("Failed to create trace writer: %v", err)
	}
	defer writer.Close()

	if writer.Path() != path {
		t.Errorf("Path() = %s, want %s", writer.Path(), path)
	}
}
