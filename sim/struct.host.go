package sim

import (
	"github.com/maseology/vbdm"
)

// host natural history [days]
const (
	latentPeriod     = 5  // intrinsic incubation: exposed to infectious
	infectiousPeriod = 4  // infectious to removed
	vectorEIP        = 10 // extrinsic incubation: exposed vector to infectious
)

type status int8

const (
	susceptible status = iota
	exposed
	infectious
	removed // recovered or cross-immune
)

// Host is a person enrolled at a town.
type Host struct {
	id, age int
	trvl    int // out of town every trvl-th day; 0 = never travels
	present bool
	stat    [vbdm.NStrains]status
	tnext   [vbdm.NStrains]int // day of next state change
}

func (h *Host) ID() int  { return h.id }
func (h *Host) Age() int { return h.age }

func (h *Host) UpdateSchedule(day int) {
	h.present = h.trvl == 0 || (day+h.id)%h.trvl != 0
}

func (h *Host) IsPresent(day int, p vbdm.Place) bool { return h.present }

func (h *Host) IsSusceptible(did int) bool { return h.stat[did] == susceptible }

func (h *Host) BecomeExposed(did int, src vbdm.Source, p vbdm.Place, day int) {
	h.stat[did] = exposed
	h.tnext[did] = day + latentPeriod
	if tn, ok := p.(*Town); ok {
		tn.cases[did]++
		tn.newToday[did]++
	}
}

func (h *Host) BecomeUnsusceptible(did int) {
	if h.stat[did] == susceptible {
		h.stat[did] = removed
	}
}

// advance steps the host's per-strain state machine to day.
func (h *Host) advance(day int) {
	for did := range h.stat {
		switch h.stat[did] {
		case exposed:
			if day >= h.tnext[did] {
				h.stat[did] = infectious
				h.tnext[did] = day + infectiousPeriod
			}
		case infectious:
			if day >= h.tnext[did] {
				h.stat[did] = removed
			}
		}
	}
}

func (h *Host) copy() *Host {
	c := *h
	return &c
}
