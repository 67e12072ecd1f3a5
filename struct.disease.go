package vbdm

import "log"

// Disease is one tracked pathogen strain. Beta scales model-level
// transmissibility; it is a scaling factor, not a probability.
type Disease struct {
	ID   int
	Name string
	Beta float64
}

// Registry is the fixed, process-wide set of tracked strains; a disease's
// ID is its index.
type Registry []*Disease

func NewRegistry(dd ...*Disease) Registry {
	if len(dd) > NStrains {
		log.Fatalf(" vbdm.NewRegistry: %d strains exceeds bound of %d", len(dd), NStrains)
	}
	for i, d := range dd {
		if d.ID != i {
			log.Fatalf(" vbdm.NewRegistry: disease %s ID %d out of order", d.Name, d.ID)
		}
	}
	return Registry(dd)
}

func (r Registry) Get(did int) *Disease { return r[did] }
