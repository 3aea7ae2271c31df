package security

// Severity represents the severity level of an audit event.
// It is derived from EventType, never from caller input.
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

// EventSeverityMap defines the hard-coded severity for each event type
var EventSeverityMap = map[EventType]Severity{
	EventContactSubmitted: SeverityINFO,

	// A message was stored but nobody was told about it
	EventNotifyFailed: SeverityMEDIUM,

	EventValidationFailed:   SeverityWARN,
	EventRateLimitTriggered: SeverityWARN,

	// A visitor's message was lost
	EventPersistFailed:      SeverityHIGH,
	EventUnauthorizedAccess: SeverityHIGH,
}

// GetSeverity returns the severity for an event type.
// Unmapped types default to MEDIUM.
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

// IsHighOrAbove reports whether the event needs operator attention
func IsHighOrAbove(eventType EventType) bool {
	return GetSeverity(eventType) == SeverityHIGH
}
