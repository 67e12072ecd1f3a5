package vbdm

// Person is a host enrolled at a place.
type Person interface {
	ID() int
	Age() int
	UpdateSchedule(day int)
	IsPresent(day int, p Place) bool
	IsSusceptible(did int) bool
	BecomeExposed(did int, src Source, p Place, day int)
	BecomeUnsusceptible(did int)
}

// Source identifies the origin of an exposure: either a prior infectious
// host or, for vector-transmitted infections, the place's vector pool as a
// whole. The zero value is the no-host origin.
type Source struct{ host Person }

// FromHost wraps a known infector.
func FromHost(p Person) Source { return Source{p} }

// Vectors is the no-host origin of a vector-transmitted exposure.
var Vectors = Source{}

// Host returns the originating person, if there is one.
func (s Source) Host() (Person, bool) { return s.host, s.host != nil }
