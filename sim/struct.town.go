package sim

import (
	"github.com/maseology/vbdm"
	"github.com/paulmach/orb"
)

// Town is a place where hosts and a resident vector population co-occur.
// It implements vbdm.Place.
type Town struct {
	Name              string
	Pt                orb.Point
	hosts             []*Host
	enr               []vbdm.Person // hosts, fixed enrollment order
	ndis, day         int
	nsus              int      // susceptible vectors
	latVec            []cohort // exposed vectors in extrinsic incubation
	infVec            [vbdm.NStrains]int
	cases             [vbdm.NStrains]int // cumulative host exposures
	newToday          [vbdm.NStrains]int // per-day incidence scratch, cleared on reset
	vecInfToday       bool
	reset             uint8 // strains reset so far today
	firstInf, lastInf int
	closed            map[int]bool
	Policy            func(day, did int) bool // nil = always open
}

type cohort struct{ did, day, n int } // n vectors infectious on day

func newTown(name string, pt orb.Point, nvec, ndis int) *Town {
	return &Town{
		Name:     name,
		Pt:       pt,
		ndis:     ndis,
		nsus:     nvec,
		firstInf: -1,
		lastInf:  -1,
		closed:   map[int]bool{},
	}
}

func (tn *Town) enroll(h *Host) {
	tn.hosts = append(tn.hosts, h)
	tn.enr = append(tn.enr, h)
}

// update begins a new day: exposed vectors that have cleared their extrinsic
// incubation become infectious, and every host's state machine is stepped.
func (tn *Town) update(day int) {
	tn.day = day
	keep := tn.latVec[:0]
	for _, c := range tn.latVec {
		if day >= c.day {
			tn.infVec[c.did] += c.n
		} else {
			keep = append(keep, c)
		}
	}
	tn.latVec = keep
	for _, h := range tn.hosts {
		h.advance(day)
	}
}

func (tn *Town) IsOpen(day int) bool { return !tn.closed[day] }

func (tn *Town) ShouldBeOpen(day, did int) bool {
	if tn.Policy == nil {
		return true
	}
	return tn.Policy(day, did)
}

// ResetPlaceState clears the strain's per-day scratch; once every tracked
// strain has been reset the shared vectors-infected-today flag is released
// for the next day.
func (tn *Town) ResetPlaceState(did int) {
	tn.newToday[did] = 0
	tn.reset |= 1 << uint(did)
	if tn.reset == 1<<uint(tn.ndis)-1 {
		tn.vecInfToday = false
		tn.reset = 0
	}
}

func (tn *Town) RecordInfectiousDays(day int) {
	if tn.firstInf < 0 {
		tn.firstInf = day
	}
	tn.lastInf = day
}

func (tn *Town) VectorsInfectedToday() bool { return tn.vecInfToday }
func (tn *Town) MarkVectorsInfectedToday()  { tn.vecInfToday = true }

func (tn *Town) SusceptibleVectors() int       { return tn.nsus }
func (tn *Town) Size() int                     { return len(tn.hosts) }
func (tn *Town) InfectiousVectors(did int) int { return tn.infVec[did] }
func (tn *Town) Enrollees() []vbdm.Person      { return tn.enr }

func (tn *Town) InfectiousPeople(did int) int {
	n := 0
	for _, h := range tn.hosts {
		if h.stat[did] == infectious {
			n++
		}
	}
	return n
}

// ExposeVectors moves n vectors from the susceptible pool into extrinsic
// incubation for the strain.
func (tn *Town) ExposeVectors(did, n int) {
	if n > tn.nsus {
		n = tn.nsus
	}
	if n == 0 {
		return
	}
	tn.nsus -= n
	tn.latVec = append(tn.latVec, cohort{did: did, day: tn.day + vectorEIP, n: n})
}

func (tn *Town) copy() *Town {
	c := *tn
	c.hosts = make([]*Host, len(tn.hosts))
	c.enr = make([]vbdm.Person, len(tn.hosts))
	for i, h := range tn.hosts {
		hc := h.copy()
		c.hosts[i] = hc
		c.enr[i] = hc
	}
	c.latVec = append([]cohort{}, tn.latVec...)
	c.closed = tn.closed // schedules are read-only during a run
	return &c
}
