package videokey

import (
	"strings"
	"testing"
	"time"
)

func TestNewFormat(t *testing.T) {
	before := time.Now()
	key := New("clip.mp4")
	after := time.Now()

	if !strings.HasSuffix(key, "_clip.mp4") {
		t.Fatalf("expected key to end with _clip.mp4, got %q", key)
	}

	ts, err := Timestamp(key)
	if err != nil {
		t.Fatalf("Timestamp(%q) returned error: %v", key, err)
	}
	if ts.Before(before.Truncate(time.Millisecond)) || ts.After(after) {
		t.Errorf("timestamp %v outside [%v, %v]", ts, before, after)
	}
}

func TestNewKeepsUnderscoresInFilename(t *testing.T) {
	key := New("my_cool_clip.mp4")

	if !strings.HasSuffix(key, "_my_cool_clip.mp4") {
		t.Fatalf("filename mangled in key %q", key)
	}
	if _, err := Timestamp(key); err != nil {
		t.Errorf("Timestamp should parse up to the first underscore: %v", err)
	}
}

func TestTimestampMalformed(t *testing.T) {
	for _, key := range []string{"", "clip.mp4", "notanumber_clip.mp4"} {
		if _, err := Timestamp(key); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}
