package storage

import (
	"testing"
	"time"
)

func TestBuildArchivePath(t *testing.T) {
	ts := time.Date(2026, time.February, 19, 4, 5, 6, 0, time.FixedZone("x", -5*3600))
	key, err := BuildArchivePath("events", ts)
	if err != nil {
		t.Fatalf("BuildArchivePath() error = %v", err)
	}
	want := "events/date=2026-02-19/snapshot-20260219T090506Z.parquet"
	if key != want {
		t.Fatalf("BuildArchivePath() = %q, want %q", key, want)
	}
}

func TestBuildArchivePathRejectsInvalidTable(t *testing.T) {
	for _, table := range []string{"../oops", "", "a/b", ".hidden"} {
		if _, err := BuildArchivePath(table, time.Now()); err == nil {
			t.Fatalf("BuildArchivePath(%q) expected invalid component error", table)
		}
	}
}
