package sim

import (
	"fmt"

	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

// Results accumulates domain-wide epidemic curves, one row per strain.
type Results struct {
	Cases [][]float64 // new host exposures per day
	Inf   [][]float64 // infectious hosts per day
	last  []int       // cumulative cases at previous collection
}

func newResults(ndays, ndis int) *Results {
	r := &Results{
		Cases: make([][]float64, ndis),
		Inf:   make([][]float64, ndis),
		last:  make([]int, ndis),
	}
	for did := 0; did < ndis; did++ {
		r.Cases[did] = make([]float64, ndays)
		r.Inf[did] = make([]float64, ndays)
	}
	return r
}

func (r *Results) collect(day int, dom *Domain) {
	for did := range dom.Dis {
		ncum, ninf := 0, 0
		for _, tn := range dom.Towns {
			ncum += tn.cases[did]
			ninf += tn.InfectiousPeople(did)
		}
		r.Cases[did][day] = float64(ncum - r.last[did])
		r.Inf[did][day] = float64(ninf)
		r.last[did] = ncum
	}
}

// WriteCsv prints the per-strain case and infectious series.
func (r *Results) WriteCsv(fp string) {
	ndis, ndays := len(r.Cases), len(r.Cases[0])
	lns := make([]string, ndays+1)
	lns[0] = "day"
	for did := 0; did < ndis; did++ {
		lns[0] += fmt.Sprintf(",cases%d,infectious%d", did, did)
	}
	for day := 0; day < ndays; day++ {
		lns[day+1] = fmt.Sprint(day)
		for did := 0; did < ndis; did++ {
			lns[day+1] += fmt.Sprintf(",%.0f,%.0f", r.Cases[did][day], r.Inf[did][day])
		}
	}
	mmio.WriteLines(fp, lns)
}

// Skill scores a strain's simulated daily case series against an observed
// one, returning the root mean squared error.
func (r *Results) Skill(obs []float64, did, warmup int, print bool) float64 {
	sim := r.Cases[did]
	rmse := objfunc.RMSE(obs[warmup:], sim[warmup:])
	if print {
		kge := objfunc.KGE(obs, sim)
		nse := objfunc.NSE(obs, sim)
		bias := objfunc.Bias(obs, sim)
		fmt.Printf("  KGE: %.3f  NSE: %.3f  RMSE: %.3f  Bias: %.3f\n", kge, nse, rmse, bias)
	}
	return rmse
}
