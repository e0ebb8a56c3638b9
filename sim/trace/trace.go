package trace

// Level controls the verbosity of execution tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelEvents captures every scheduling event (arrivals, dispatches,
	// preemptions, completions).
	LevelEvents Level = "events"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:   true,
	LevelEvents: true,
	"":          true, // empty defaults to events
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Config controls trace collection behavior.
type Config struct {
	Level Level
}

// Log collects scheduling event records during a simulation run.
type Log struct {
	Config  Config
	Records []Record
}

// NewLog creates a Log ready for recording.
func NewLog(config Config) *Log {
	return &Log{
		Config:  config,
		Records: make([]Record, 0),
	}
}

// Enabled reports whether this log is collecting events.
func (l *Log) Enabled() bool {
	return l.Config.Level != LevelNone
}

// Append adds an event record. No-op when tracing is disabled.
func (l *Log) Append(record Record) {
	if !l.Enabled() {
		return
	}
	l.Records = append(l.Records, record)
}

// Reset discards collected records, keeping the configuration.
// Called by the engine at the start of each run.
func (l *Log) Reset() {
	l.Records = l.Records[:0]
}
