package trace

// Summary aggregates statistics from an execution trace.
type Summary struct {
	TotalEvents     int
	Preemptions     int
	Dispatches      int         // started + resumed events
	CompletionOrder []int       // PIDs in completion order
	DispatchesByPID map[int]int // PID → number of times dispatched
}

// Summarize computes aggregate statistics from a Log.
// Safe for nil or empty logs (returns zero-value fields).
func Summarize(l *Log) *Summary {
	summary := &Summary{
		DispatchesByPID: make(map[int]int),
	}
	if l == nil {
		return summary
	}

	summary.TotalEvents = len(l.Records)
	for _, r := range l.Records {
		switch r.Event {
		case EventPreempted:
			summary.Preemptions++
		case EventStarted, EventResumed:
			summary.Dispatches++
			summary.DispatchesByPID[r.PID]++
		case EventCompleted:
			summary.CompletionOrder = append(summary.CompletionOrder, r.PID)
		}
	}

	return summary
}
