package sim

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// Optimize fits the vector parameters (bite rate and bite efficiencies) to
// an observed daily case series of one strain by shuffled complex evolution,
// minimizing RMSE past the warmup period. Returns the fitted parameters in
// sample space and the final objective value.
func Optimize(dom *Domain, obs []float64, did, warmup int) ([]float64, float64) {
	ndays := len(obs)

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	gen := func(u []float64) float64 {
		d := dom.toSampleU(u...)
		return d.Run(ndays).Skill(obs, did, warmup, false)
	}

	fmt.Println(" optimizing..")
	uFinal, ofFinal := glbopt.SCE(runtime.GOMAXPROCS(0), nSmplDim, rng, gen, true)

	fmt.Printf("\nfinal parameters: %v\n", uFinal)
	final := dom.toSampleU(uFinal...)
	final.Run(ndays).Skill(obs, did, warmup, true)
	return uFinal, ofFinal
}
