package processor

// Processor reacts to jump events published by the submission pipeline.
type Processor struct {
	store    Store
	notifier Notifier
}

// Outcome describes what the processor did with an event.
type Outcome string

const (
	OutcomeAnnounced Outcome = "announced"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeAlerted   Outcome = "alerted"
)
