package vbdm

import "math/rand"

// Transmission is the daily vector transmission model. Diseases, vector
// parameters and the random stream are injected; nothing is read from
// package state. One stream per concurrent unit of work keeps runs
// reproducible (see NewRNG).
type Transmission struct {
	Dis Registry
	Vec VectorParams
	Rng *rand.Rand
}

// SpreadInfection applies one day of vector-borne transmission of one strain
// at a place. Vectors are infected by the infectious hosts present (at most
// once per place per day, shared across strains), then susceptible hosts are
// infected by the place's infectious vectors. Every failure mode is a guarded
// no-op; the place's per-day state is reset on every exit path.
func (t *Transmission) SpreadInfection(day, did int, p Place) {
	defer p.ResetPlaceState(did)
	if t.Dis.Get(did).Beta == 0. || !p.IsOpen(day) || !p.ShouldBeOpen(day, did) {
		return
	}

	p.RecordInfectiousDays(day)

	if !p.VectorsInfectedToday() {
		t.infectVectors(day, p)
	}

	t.infectHosts(day, did, p)
}
