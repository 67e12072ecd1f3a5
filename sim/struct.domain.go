package sim

import (
	"fmt"

	"github.com/maseology/mmaths"
	"github.com/maseology/vbdm"
	"github.com/paulmach/orb"
)

// Domain holds the full set of towns and the shared disease/vector
// parameterization from which runs are made.
type Domain struct {
	Towns []*Town
	Dis   vbdm.Registry
	Vec   vbdm.VectorParams
	Seed  int64
}

// NewDomain builds ntowns towns of pop hosts and nvec susceptible vectors
// each. ftrav is the fraction of days a host spends out of town. All
// construction draws come from one stream seeded with seed, so a domain can
// be rebuilt bit-identically.
func NewDomain(ntowns, pop, nvec int, ftrav float64, dis vbdm.Registry, vp vbdm.VectorParams, seed int64) *Domain {
	rng := vbdm.NewRNG(seed)
	trvl := 0
	if ftrav > 0. {
		trvl = int(1. / ftrav)
	}
	tns := make([]*Town, ntowns)
	for k := range tns {
		tn := newTown(fmt.Sprintf("town%03d", k),
			orb.Point{-79.5 + rng.Float64(), 43.5 + rng.Float64()}, nvec, len(dis))
		for i := 0; i < pop; i++ {
			tn.enroll(&Host{
				id:   k*pop + i,
				age:  int(rng.Float64() * 90.),
				trvl: trvl,
			})
		}
		tns[k] = tn
	}
	return &Domain{Towns: tns, Dis: dis, Vec: vp, Seed: seed}
}

// SeedCases makes the first n hosts of town k infectious with the strain.
func (dom *Domain) SeedCases(k, did, n int) {
	for _, h := range dom.Towns[k].hosts[:n] {
		h.stat[did] = infectious
		h.tnext[did] = infectiousPeriod
	}
}

// SeedVectors moves n of town k's susceptible vectors directly to the
// infectious pool.
func (dom *Domain) SeedVectors(k, did, n int) {
	tn := dom.Towns[k]
	if n > tn.nsus {
		n = tn.nsus
	}
	tn.nsus -= n
	tn.infVec[did] += n
}

func (dom *Domain) copy() *Domain {
	c := *dom
	c.Towns = make([]*Town, len(dom.Towns))
	for k, tn := range dom.Towns {
		c.Towns[k] = tn.copy()
	}
	return &c
}

const nSmplDim = 3

// toSampleU returns a reparameterized copy of the domain: u[0] scales the
// bite rate over [0,2], u[1] and u[2] the two bite efficiencies over [0,1].
func (dom *Domain) toSampleU(u ...float64) *Domain {
	c := dom.copy()
	c.Vec.BiteRate = mmaths.LinearTransform(0., 2., u[0])
	c.Vec.InfEff = mmaths.LinearTransform(0., 1., u[1])
	c.Vec.TrnEff = mmaths.LinearTransform(0., 1., u[2])
	return c
}
