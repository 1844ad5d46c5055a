package discord

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
)

func TestSnowflakeUnmarshal(t *testing.T) {
	var s Snowflake

	if err := s.UnmarshalJSON([]byte(`"290926798626357250"`)); err != nil {
		t.Fatalf("failed to unmarshal quoted snowflake: %v", err)
	}

	if s != 290926798626357250 {
		t.Fatalf("expected 290926798626357250, got %d", s)
	}

	if err := s.UnmarshalJSON([]byte(`175928847299117063`)); err != nil {
		t.Fatalf("failed to unmarshal bare snowflake: %v", err)
	}

	if s != 175928847299117063 {
		t.Fatalf("expected 175928847299117063, got %d", s)
	}

	if err := s.UnmarshalJSON(null); err != nil {
		t.Fatalf("failed to unmarshal null snowflake: %v", err)
	}

	if !s.IsNil() {
		t.Fatal("expected null snowflake to be nil")
	}

	if err := s.UnmarshalJSON([]byte(`"not a number"`)); err == nil {
		t.Fatal("expected error for invalid snowflake")
	}
}

func TestSnowflakeMarshal(t *testing.T) {
	b, err := Snowflake(290926798626357250).MarshalJSON()
	if err != nil {
		t.Fatalf("failed to marshal snowflake: %v", err)
	}

	if string(b) != `"290926798626357250"` {
		t.Fatalf("expected quoted snowflake, got %s", b)
	}
}

func TestSnowflakeTime(t *testing.T) {
	// First second of 2015-01-01 is Discord's epoch.
	created := Snowflake(0).Time()

	if created.UnixMilli() != DiscordCreation {
		t.Fatalf("expected creation at epoch, got %d", created.UnixMilli())
	}
}

func TestTypedIDsShareSnowflakeCodec(t *testing.T) {
	var id GuildID

	if err := id.UnmarshalJSON([]byte(`"81384788765712384"`)); err != nil {
		t.Fatalf("failed to unmarshal guild id: %v", err)
	}

	if id.String() != "81384788765712384" {
		t.Fatalf("expected 81384788765712384, got %s", id.String())
	}

	b, err := id.MarshalJSON()
	if err != nil {
		t.Fatalf("failed to marshal guild id: %v", err)
	}

	if string(b) != `"81384788765712384"` {
		t.Fatalf("expected quoted guild id, got %s", b)
	}
}

func TestTimestamp(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	ts := NewTimestamp(now)

	parsed, err := ts.Time()
	if err != nil {
		t.Fatalf("failed to parse timestamp: %v", err)
	}

	if !parsed.Equal(now) {
		t.Fatalf("expected %v, got %v", now, parsed)
	}

	b, err := ts.MarshalJSON()
	if err != nil {
		t.Fatalf("failed to marshal timestamp: %v", err)
	}

	if string(b) != `"2024-06-01T12:30:00Z"` {
		t.Fatalf("unexpected timestamp encoding: %s", b)
	}
}

func TestTimestampEmptyMarshalsNull(t *testing.T) {
	b, err := Timestamp("").MarshalJSON()
	if err != nil {
		t.Fatalf("failed to marshal empty timestamp: %v", err)
	}

	if string(b) != "null" {
		t.Fatalf("expected null, got %s", b)
	}

	parsed, err := Timestamp("").Time()
	if err != nil {
		t.Fatalf("empty timestamp must parse to the zero time: %v", err)
	}

	if !parsed.IsZero() {
		t.Fatalf("expected zero time, got %v", parsed)
	}
}

func TestTimestampCorruptMarshalErrors(t *testing.T) {
	if _, err := Timestamp("yesterday").MarshalJSON(); err == nil {
		t.Fatal("expected error for corrupt timestamp")
	}
}

func TestListMarshalsEmptyAsArray(t *testing.T) {
	var roles RoleIDList

	b, err := jsoniter.Marshal(roles)
	if err != nil {
		t.Fatalf("failed to marshal empty list: %v", err)
	}

	if string(b) != "[]" {
		t.Fatalf("expected [], got %s", b)
	}

	ids := SnowflakeList{1, 2}

	b, err = jsoniter.Marshal(ids)
	if err != nil {
		t.Fatalf("failed to marshal list: %v", err)
	}

	if string(b) != `["1","2"]` {
		t.Fatalf("expected quoted ids, got %s", b)
	}
}
