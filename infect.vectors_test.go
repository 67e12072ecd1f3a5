package vbdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfectVectorsNoops(t *testing.T) {
	trn := &Transmission{Dis: testRegistry(.5, .5), Vec: VectorParams{InfEff: .2, BiteRate: .5}, Rng: NewRNG(1)}

	p := newTplace() // no susceptible vectors
	p.size = 100
	p.ninf[0] = 5
	trn.infectVectors(0, p)
	assert.Zero(t, p.nmarks)
	assert.Zero(t, p.exposed[0])

	p = newTplace() // no infectious hosts
	p.nsus = 100
	p.size = 100
	trn.infectVectors(0, p)
	assert.Zero(t, p.nmarks)
	assert.Zero(t, p.exposed[0])
}

// 100 susceptible vectors, 100 occupants, 2 infectious hosts of strain A:
// p = 1-0.8^(0.5*2/100) ~ 0.00223, expected ~0.223 new vectors, truncated to
// none; the daily flag is still set.
func TestInfectVectorsTruncatesLow(t *testing.T) {
	trn := &Transmission{Dis: testRegistry(.5, .5), Vec: VectorParams{InfEff: .2, BiteRate: .5}, Rng: NewRNG(1)}
	p := newTplace()
	p.nsus = 100
	p.size = 100
	p.ninf[0] = 2

	trn.infectVectors(0, p)

	assert.Zero(t, p.exposed[0])
	assert.Zero(t, p.exposed[1])
	assert.Equal(t, 1, p.nmarks)
}

// 1000 susceptible vectors, 100 occupants, 30+10 infectious hosts:
// p = 1-0.5^(1*40/100) ~ 0.242142, total = 242, split 181/60 by host share.
func TestInfectVectorsAllocation(t *testing.T) {
	trn := &Transmission{Dis: testRegistry(.5, .5, .5), Vec: VectorParams{InfEff: .5, BiteRate: 1.}, Rng: NewRNG(1)}
	p := newTplace()
	p.nsus = 1000
	p.size = 100
	p.ninf[0] = 30
	p.ninf[1] = 10

	trn.infectVectors(0, p)

	assert.Equal(t, 181, p.exposed[0]) // floor(242*30/40)
	assert.Equal(t, 60, p.exposed[1])  // floor(242*10/40)
	assert.Zero(t, p.exposed[2])
	assert.Equal(t, 1, p.nmarks)
}

func TestInfectVectorsAllocationBounds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := NewRNG(seed)
		trn := &Transmission{Dis: testRegistry(.5, .5, .5, .5), Vec: VectorParams{InfEff: rng.Float64(), BiteRate: 2. * rng.Float64()}, Rng: rng}
		p := newTplace()
		p.nsus = 1 + int(rng.Float64()*1000.)
		p.size = 500
		tinf := 0
		for did := 0; did < NStrains; did++ {
			p.ninf[did] = int(rng.Float64() * 50.)
			tinf += p.ninf[did]
		}

		trn.infectVectors(0, p)

		sum := 0
		for did := 0; did < NStrains; did++ {
			sum += p.exposed[did]
		}
		if tinf > 0 {
			pr := probInfection(trn.Vec.InfEff, trn.Vec.BiteRate*float64(tinf)/float64(p.size))
			ntot := int(pr * float64(p.nsus))
			assert.LessOrEqual(t, sum, ntot)
			assert.LessOrEqual(t, ntot, p.nsus)
		} else {
			assert.Zero(t, sum)
		}
	}
}
