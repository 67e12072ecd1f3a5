package vbdm

// infectVectors decides how many of the place's susceptible vectors are
// infected today by the infectious hosts present, and allocates them across
// strains in proportion to each strain's share of infectious hosts. Strain
// independent; run once per place per day. Deterministic: counts are
// truncated toward zero and no randomness is consumed, which biases vector
// infections slightly low.
func (t *Transmission) infectVectors(day int, p Place) {
	nsus := p.SusceptibleVectors()
	if nsus == 0 {
		return
	}

	nhosts := p.Size() // all occupants: infectious, susceptible, or neither

	var ninf [NStrains]int
	tinf := 0
	for did := range t.Dis {
		ninf[did] = p.InfectiousPeople(did)
		tinf += ninf[did]
	}
	if tinf == 0 {
		return
	}

	// each vector receives biterate*tinf/nhosts infectious bites in expectation
	pr := probInfection(t.Vec.InfEff, t.Vec.BiteRate*float64(tinf)/float64(nhosts))
	ntot := int(pr * float64(nsus))

	for did := range t.Dis {
		if n := int(float64(ntot) * float64(ninf[did]) / float64(tinf)); n > 0 {
			p.ExposeVectors(did, n)
		}
	}
	p.MarkVectorsInfectedToday()
}
