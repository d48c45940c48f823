package logging

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldSession is the structured logging key for session names.
	FieldSession = "session"
	// FieldEntrantID is the structured logging key for entrant identities (grid columns).
	FieldEntrantID = "entrant_id"
	// FieldLapIndex is the structured logging key for zero-based lap indexes (grid rows).
	FieldLapIndex = "lap_index"
	// FieldEventType tags a log line with a stable machine-readable event name.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step when something went wrong.
	FieldErrorHint = "error_hint"
)
