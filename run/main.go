package main

import (
	"fmt"
	"runtime"

	"github.com/maseology/mmio"
	"github.com/maseology/vbdm/sim"
)

func main() {

	const vbdmFP = "dengue.vbdm"

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// build domain
	dom, ndays, outp := sim.BuildDomain(vbdmFP)
	tt.Print("domain build complete\n")

	// run model
	res := dom.RunSerial(ndays)
	res.WriteCsv(outp + "cases.csv")

	// // sample models
	// sim.GenerateSamples(dom, 1000, ndays, runtime.GOMAXPROCS(0), outp+"MC/")

	// // find optimal model
	// sim.Optimize(dom, loadObs(outp+"obs.csv"), 0, 30)
}
