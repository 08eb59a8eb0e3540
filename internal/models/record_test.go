package models

import (
	"reflect"
	"testing"
	"time"
)

func TestMergeRecordsUnion(t *testing.T) {
	stored := Record{"id": "42", "login": "alice", "description": "kept"}
	fetched := Record{"id": "42", "login": "alice_new", "view_count": float64(7)}

	merged := MergeRecords(stored, fetched)

	want := Record{
		"id":          "42",
		"login":       "alice_new",
		"description": "kept",
		"view_count":  float64(7),
	}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("merged = %v, want %v", merged, want)
	}
}

func TestMergeRecordsDoesNotMutateArguments(t *testing.T) {
	stored := Record{"login": "alice"}
	fetched := Record{"login": "bob"}

	MergeRecords(stored, fetched)

	if stored["login"] != "alice" {
		t.Fatalf("stored mutated: %v", stored)
	}
	if fetched["login"] != "bob" {
		t.Fatalf("fetched mutated: %v", fetched)
	}
}

func TestMergeRecordsIdempotent(t *testing.T) {
	record := Record{"id": "1", "login": "alice"}

	once := MergeRecords(Record{}, record)
	twice := MergeRecords(once, record)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("repeated merge changed record: %v vs %v", once, twice)
	}
}

func TestRecordStringField(t *testing.T) {
	record := Record{"login": "alice", "viewer_count": float64(10)}

	if got := record.Login(); got != "alice" {
		t.Fatalf("Login() = %q", got)
	}
	// non-string values never panic, they read as empty
	if got := record.StringField("viewer_count"); got != "" {
		t.Fatalf("StringField(viewer_count) = %q", got)
	}
	if got := record.StringField("missing"); got != "" {
		t.Fatalf("StringField(missing) = %q", got)
	}
}

func TestRecordUintField(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  uint64
	}{
		{"float64", float64(33), 33},
		{"negative float64", float64(-1), 0},
		{"int", int(12), 12},
		{"uint64", uint64(9000), 9000},
		{"numeric string", "77", 77},
		{"garbage string", "many", 0},
		{"missing", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := Record{}
			if tc.value != nil {
				record["viewer_count"] = tc.value
			}
			if got := record.ViewerCount(); got != tc.want {
				t.Fatalf("ViewerCount() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRecordTimeField(t *testing.T) {
	record := Record{"started_at": "2024-03-01T18:30:00Z"}

	want := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	if got := record.StartedAt(); !got.Equal(want) {
		t.Fatalf("StartedAt() = %v, want %v", got, want)
	}

	broken := Record{"started_at": "yesterday"}
	if got := broken.StartedAt(); !got.IsZero() {
		t.Fatalf("StartedAt() on garbage = %v, want zero", got)
	}
}

func TestStreamStateOnline(t *testing.T) {
	var nilState *StreamState
	if nilState.Online() {
		t.Fatal("nil state reported online")
	}

	live := &StreamState{Fields: Record{"type": "live"}}
	if !live.Online() {
		t.Fatal("live state reported offline")
	}

	offline := &StreamState{Fields: Record{"type": "offline"}}
	if offline.Online() {
		t.Fatal("offline sentinel reported online")
	}
}
