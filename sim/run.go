package sim

import (
	"fmt"
	"sync"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/vbdm"
)

// Run advances the domain ndays, processing towns concurrently. Each town
// owns an independently seeded stream, so a fixed domain seed reproduces the
// run regardless of scheduling.
func (dom *Domain) Run(ndays int) *Results {
	trn := dom.buildTransmissions()
	res := newResults(ndays, len(dom.Dis))
	var wg sync.WaitGroup
	for day := 0; day < ndays; day++ {
		wg.Add(len(dom.Towns))
		for k, tn := range dom.Towns {
			go func(k int, tn *Town) {
				defer wg.Done()
				tn.update(day)
				for did := range dom.Dis {
					trn[k].SpreadInfection(day, did, tn)
				}
			}(k, tn)
		}
		wg.Wait()
		res.collect(day, dom)
	}
	return res
}

// RunSerial is Run without concurrency, reporting progress.
func (dom *Domain) RunSerial(ndays int) *Results {
	pop := 0
	for _, tn := range dom.Towns {
		pop += len(tn.hosts)
	}
	fmt.Printf(" %d towns, %d hosts, %d strains\n", len(dom.Towns), pop, len(dom.Dis))

	trn := dom.buildTransmissions()
	res := newResults(ndays, len(dom.Dis))

	uiprogress.Start()
	timestep := make(chan string)
	bar := uiprogress.AddBar(ndays).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-timestep
	})

	for day := 0; day < ndays; day++ {
		timestep <- fmt.Sprintf("day %d", day)
		for k, tn := range dom.Towns {
			tn.update(day)
			for did := range dom.Dis {
				trn[k].SpreadInfection(day, did, tn)
			}
		}
		res.collect(day, dom)
		bar.Incr()
	}
	close(timestep)
	uiprogress.Stop()

	return res
}

func (dom *Domain) buildTransmissions() []*vbdm.Transmission {
	trn := make([]*vbdm.Transmission, len(dom.Towns))
	for k := range dom.Towns {
		trn[k] = &vbdm.Transmission{
			Dis: dom.Dis,
			Vec: dom.Vec,
			Rng: vbdm.NewRNG(dom.Seed + int64(k)),
		}
	}
	return trn
}
