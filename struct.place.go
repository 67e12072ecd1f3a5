package vbdm

// Place is a location where hosts and vectors co-occur for a day. The engine
// owns place lifecycles; the transmission model only reads and mutates the
// per-day and per-strain fields exposed here. Counts are never negative.
type Place interface {
	IsOpen(day int) bool
	ShouldBeOpen(day, did int) bool // operational policy override (scheduled closures)
	ResetPlaceState(did int)        // clears per-day transient state; idempotent
	RecordInfectiousDays(day int)   // extends first/last-infectious tracking

	// the vectors-infected-today flag is shared across strains: infecting
	// the vector pool is a single event per place per day
	VectorsInfectedToday() bool
	MarkVectorsInfectedToday()

	SusceptibleVectors() int
	Size() int // total occupancy, infectious or not
	InfectiousPeople(did int) int
	ExposeVectors(did, n int)
	InfectiousVectors(did int) int
	Enrollees() []Person // stable order across calls within a day
}
