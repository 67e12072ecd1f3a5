package vbdm

// infectHosts decides how many of the place's enrollees are infected today by
// the strain's infectious vectors and applies the exposures. The expected
// count is made integral by stochastic rounding (one uniform draw), then the
// first n entries of a shuffled enrollee ordering are attempted; an enrollee
// found absent after its schedule update burns its slot without producing an
// infection. A newly exposed host loses susceptibility to every other tracked
// strain: the model allows one concurrent infection per host.
func (t *Transmission) infectHosts(day, did int, p Place) {
	enr := p.Enrollees()
	nhosts := len(enr)
	if nhosts == 0 {
		return
	}
	nvec := p.InfectiousVectors(did)
	if nvec == 0 {
		return
	}
	if t.Vec.TrnEff == 0. {
		return
	}

	pr := probInfection(t.Vec.TrnEff, t.Vec.BiteRate*float64(nvec)/float64(nhosts))
	nexp := stochRound(t.Rng, float64(nhosts)*pr)

	ord := make([]int, nhosts)
	for i := range ord {
		ord[i] = i
	}
	fyShuffle(t.Rng, ord)

	for j := 0; j < nexp && j < nhosts; j++ {
		h := enr[ord[j]]
		h.UpdateSchedule(day)
		if !h.IsPresent(day, p) {
			continue
		}
		if !h.IsSusceptible(did) {
			continue
		}
		h.BecomeExposed(did, Vectors, p, day) // no originating host: the source is the vector pool
		for d := range t.Dis {
			if d != did {
				h.BecomeUnsusceptible(d)
			}
		}
	}
}
