// Command analysis measures bloom filter false positive rates.
//
// Exactly one experiment must be selected:
//
//	analysis -hashes   # vary the number of hash functions at 10,000 bits
//	analysis -sizes    # vary the filter size with one hash function
//
// One ratio is written to stdout per sweep point. Pass -seed to make a run
// reproducible and -v=1 to log expected vs measured rates to stderr.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"io"
	"math/rand/v2"
	"os"

	"github.com/jcalabro/bloomlab"
	"k8s.io/klog/v2"
)

type experiment int

const (
	hashCount experiment = iota
	filterSize
)

var errSelection = errors.New("specify exactly one of -hashes or -sizes")

type options struct {
	hashes bool
	sizes  bool
	seed   uint64
}

func (o options) experiment() (experiment, error) {
	switch {
	case o.hashes && !o.sizes:
		return hashCount, nil
	case o.sizes && !o.hashes:
		return filterSize, nil
	default:
		return 0, errSelection
	}
}

// generators returns nondeterministic sources when seed is zero.
func (o options) generators() (*bloomlab.SeedGenerator, *bloomlab.DatasetGenerator) {
	if o.seed == 0 {
		return bloomlab.NewSeedGenerator(nil), bloomlab.NewDatasetGenerator(nil)
	}

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], o.seed)
	return bloomlab.NewSeedGenerator(rand.New(rand.NewPCG(o.seed, o.seed))),
		bloomlab.NewDatasetGenerator(rand.NewChaCha8(key))
}

func run(w io.Writer, o options) error {
	exp, err := o.experiment()
	if err != nil {
		return err
	}

	seeds, data := o.generators()

	var points []bloomlab.Point
	switch exp {
	case hashCount:
		points, err = bloomlab.DefaultHashCountSweep().Run(seeds, data)
	case filterSize:
		points, err = bloomlab.DefaultFilterSizeSweep().Run(seeds, data)
	}
	if err != nil {
		return err
	}

	return bloomlab.Report(w, points)
}

func main() {
	var o options
	flag.BoolVar(&o.hashes, "hashes", false, "sweep the number of hash functions")
	flag.BoolVar(&o.hashes, "a", false, "shorthand for -hashes")
	flag.BoolVar(&o.sizes, "sizes", false, "sweep the filter size")
	flag.BoolVar(&o.sizes, "s", false, "shorthand for -sizes")
	flag.Uint64Var(&o.seed, "seed", 0, "seed for hash seeds and keys (0 = random)")
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if err := run(os.Stdout, o); err != nil {
		klog.Exitf("analysis: %v", err)
	}
}
