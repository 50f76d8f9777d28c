package pipeline

// RecordStatus is the per-record outcome reported back to the transport.
type RecordStatus string

const (
	RecordAccepted RecordStatus = "accepted"
	RecordFailed   RecordStatus = "failed"
)

// FailureReason tags why a single event inside an accepted record did not
// apply its effects.
type FailureReason string

const (
	// FailureValidation marks events missing required correlation fields
	// or failing structural decoding.
	FailureValidation FailureReason = "validation"
	// FailurePersistence marks events whose storage writes failed partway.
	FailurePersistence FailureReason = "persistence"
)

// Record is one unit of delivery from the ingestion transport: an opaque
// identifier and a text-encoded body holding one event object or an array
// of event objects.
type Record struct {
	ID   string
	Body []byte
}

// EventOutcome is the explicit per-event result collected into the record
// summary. A nil-Reason outcome applied all of its effects.
type EventOutcome struct {
	Index     int
	EventType string
	Reason    FailureReason
	Err       error
}

// OK reports whether the event's effects were fully applied.
func (o EventOutcome) OK() bool {
	return o.Reason == ""
}

// RecordResult pairs the original record identifier and body with its
// outcome. Body is always the unmodified input so failed records can be
// redelivered by the transport as-is.
type RecordResult struct {
	RecordID string
	Status   RecordStatus
	Body     []byte
	Events   []EventOutcome
}

// Accepted reports whether the record was marked accepted.
func (r RecordResult) Accepted() bool {
	return r.Status == RecordAccepted
}

// FailedEvents counts events inside the record whose effects were not
// applied.
func (r RecordResult) FailedEvents() int {
	n := 0
	for _, e := range r.Events {
		if !e.OK() {
			n++
		}
	}
	return n
}
