package vbdm

// VectorParams is the process-wide, strain-independent parameterization of
// the vector population.
type VectorParams struct {
	InfEff   float64 // probability a bite from an infectious host infects the vector
	TrnEff   float64 // probability a bite from an infectious vector infects the host
	BiteRate float64 // expected bites per vector per day
}
