// Package vbdm simulates the daily transmission of vector-borne pathogens
// (dengue, malaria) between the hosts and arthropod vectors co-occurring at a
// place, following the two-population bite-rate model of Chao and Longini.
package vbdm

import "math"

// NStrains is the fixed bound on concurrently tracked pathogen strains
// (e.g. the four dengue serotypes).
const NStrains = 4

// probInfection returns the chance an individual acquires infection when
// receiving nbites infectious bites in expectation over a day, each bite
// independently infecting with probability eff.
func probInfection(eff, nbites float64) float64 {
	return 1. - math.Pow(1.-eff, nbites)
}
