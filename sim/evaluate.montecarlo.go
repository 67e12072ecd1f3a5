package sim

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// GenerateSamples draws an n-point latin hypercube over the transmission
// parameter space (bite rate and the two bite efficiencies), evaluates every
// realization over ndays, and writes each epidemic curve out with the sample
// space. Realizations share the domain seed so runs differ only by their
// parameters.
func GenerateSamples(dom *Domain, n, ndays, nwrkrs int, outdir string) {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, nSmplDim, false)

	outdirbatch := outdir + time.Now().Format("060102150405") // batch number = date
	func() {                                                  // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < nSmplDim; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outdirbatch+".samplespace.csv", lns)
	}()

	var wg sync.WaitGroup
	slots := make(chan int, nwrkrs)
	for k := 0; k < n; k++ {
		fmt.Printf(" >> releasing sample %d\n", k+1)
		wg.Add(1)
		slots <- k
		go func(k int) {
			defer wg.Done()
			ut := make([]float64, nSmplDim)
			for j := 0; j < nSmplDim; j++ {
				ut[j] = sp.U[j][k]
			}

			d := dom.toSampleU(ut...) // generate realization
			d.Run(ndays).WriteCsv(fmt.Sprintf("%s.%d.csv", outdirbatch, k))
			<-slots
		}(k)
	}
	wg.Wait()
}
