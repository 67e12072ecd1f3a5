package sim

import (
	"fmt"
	"strconv"

	"github.com/maseology/mmio"
	"github.com/maseology/vbdm"
)

// BuildDomain constructs a domain from a .vbdm control file. Expected keys:
// ntowns, pop, vectors, ftrav, biterate, infeff, trneff, beta (one value per
// strain), seedcases, seed, ndays, outp.
func BuildDomain(vbdmFP string) (*Domain, int, string) {
	println("load .vbdm file")
	ins := mmio.NewInstruct(vbdmFP)
	atoi := func(k string) int {
		i, err := strconv.Atoi(ins.Param[k][0])
		if err != nil {
			panic(err)
		}
		return i
	}
	atof := func(k string) float64 {
		f, err := strconv.ParseFloat(ins.Param[k][0], 64)
		if err != nil {
			panic(err)
		}
		return f
	}

	vp := vbdm.VectorParams{
		BiteRate: atof("biterate"),
		InfEff:   atof("infeff"),
		TrnEff:   atof("trneff"),
	}

	dd := make([]*vbdm.Disease, len(ins.Param["beta"]))
	for i, s := range ins.Param["beta"] {
		b, err := strconv.ParseFloat(s, 64)
		if err != nil {
			panic(err)
		}
		dd[i] = &vbdm.Disease{ID: i, Name: fmt.Sprintf("serotype-%d", i+1), Beta: b}
	}

	dom := NewDomain(atoi("ntowns"), atoi("pop"), atoi("vectors"), atof("ftrav"),
		vbdm.NewRegistry(dd...), vp, int64(atoi("seed")))
	dom.SeedCases(0, 0, atoi("seedcases"))
	return dom, atoi("ndays"), ins.Param["outp"][0]
}
