package trace

import (
	"testing"
)

func TestSummarize_NilLog_ReturnsZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalEvents != 0 || summary.Preemptions != 0 || summary.Dispatches != 0 {
		t.Errorf("nil log should summarize to zero values, got %+v", summary)
	}
	if summary.DispatchesByPID == nil {
		t.Error("DispatchesByPID must be non-nil even for nil logs")
	}
}

func TestSummarize_CountsEventKinds(t *testing.T) {
	l := NewLog(Config{Level: LevelEvents})
	l.Append(Record{Time: 0, PID: 1, Event: EventArrived})
	l.Append(Record{Time: 0, PID: 2, Event: EventArrived})
	l.Append(Record{Time: 0, PID: 1, Event: EventStarted})
	l.Append(Record{Time: 2, PID: 1, Event: EventPreempted})
	l.Append(Record{Time: 2, PID: 2, Event: EventStarted})
	l.Append(Record{Time: 4, PID: 2, Event: EventCompleted})
	l.Append(Record{Time: 4, PID: 1, Event: EventResumed})
	l.Append(Record{Time: 8, PID: 1, Event: EventCompleted})

	summary := Summarize(l)

	if summary.TotalEvents != 8 {
		t.Errorf("TotalEvents = %d, want 8", summary.TotalEvents)
	}
	if summary.Preemptions != 1 {
		t.Errorf("Preemptions = %d, want 1", summary.Preemptions)
	}
	if summary.Dispatches != 3 {
		t.Errorf("Dispatches = %d, want 3", summary.Dispatches)
	}
	if summary.DispatchesByPID[1] != 2 {
		t.Errorf("DispatchesByPID[1] = %d, want 2", summary.DispatchesByPID[1])
	}
	wantOrder := []int{2, 1}
	if len(summary.CompletionOrder) != len(wantOrder) {
		t.Fatalf("CompletionOrder = %v, want %v", summary.CompletionOrder, wantOrder)
	}
	for i, pid := range wantOrder {
		if summary.CompletionOrder[i] != pid {
			t.Errorf("CompletionOrder[%d] = %d, want %d", i, summary.CompletionOrder[i], pid)
		}
	}
}
