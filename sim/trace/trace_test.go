package trace

import (
	"testing"
)

func TestLog_Append_CollectsRecords(t *testing.T) {
	// GIVEN a log configured for events
	l := NewLog(Config{Level: LevelEvents})

	// WHEN an event record is appended
	l.Append(Record{Time: 3, PID: 1, Event: EventStarted, Process: "P1"})

	// THEN the log contains one record with correct data
	if len(l.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(l.Records))
	}
	if l.Records[0].Event != EventStarted {
		t.Errorf("expected started event, got %s", l.Records[0].Event)
	}
	if l.Records[0].Time != 3 {
		t.Errorf("expected time 3, got %d", l.Records[0].Time)
	}
}

func TestLog_LevelNone_DropsRecords(t *testing.T) {
	l := NewLog(Config{Level: LevelNone})

	l.Append(Record{Time: 0, PID: 1, Event: EventArrived})

	if l.Enabled() {
		t.Error("log with level none should report disabled")
	}
	if len(l.Records) != 0 {
		t.Errorf("expected 0 records, got %d", len(l.Records))
	}
}

func TestLog_Reset_DiscardsRecordsKeepsConfig(t *testing.T) {
	l := NewLog(Config{Level: LevelEvents})
	l.Append(Record{Time: 0, PID: 1, Event: EventArrived})
	l.Append(Record{Time: 1, PID: 1, Event: EventStarted})

	l.Reset()

	if len(l.Records) != 0 {
		t.Errorf("expected 0 records after reset, got %d", len(l.Records))
	}
	if !l.Enabled() {
		t.Error("reset must not change the configured level")
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range []string{"", "none", "events"} {
		if !IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q) = false, want true", level)
		}
	}
	if IsValidLevel("decisions") {
		t.Error("IsValidLevel should reject unknown levels")
	}
}
