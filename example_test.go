package bloomlab_test

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/jcalabro/bloomlab"
)

// This example demonstrates basic bloom filter usage for membership testing.
func Example() {
	seeds := bloomlab.NewSeedConfig(4021, 17733, 902)

	// A 10,000-bit filter probed with all three seeds
	f := bloomlab.New(10_000)
	f.AddString("apple", 3, seeds)
	f.AddString("banana", 3, seeds)

	fmt.Println("apple:", f.ExistsString("apple", 3, seeds).IsPresent())   // true (added)
	fmt.Println("banana:", f.ExistsString("banana", 3, seeds).IsPresent()) // true (added)
	fmt.Println("grape:", f.ExistsString("grape", 3, seeds).IsPresent())   // false (not added)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example shows that probing with fewer hash functions than were used
// to populate the filter never produces a false negative.
func Example_fewerHashFunctions() {
	seeds := bloomlab.NewSeedConfig(4021, 17733, 902, 61007, 33331)

	f := bloomlab.New(10_000)
	f.AddString("user:12345", 5, seeds)

	for k := 1; k <= 5; k++ {
		fmt.Printf("k=%d: %v\n", k, f.ExistsString("user:12345", k, seeds))
	}

	// Output:
	// k=1: present
	// k=2: present
	// k=3: present
	// k=4: present
	// k=5: present
}

// This example runs a reproducible filter size sweep.
func Example_sizeSweep() {
	seeds := bloomlab.NewSeedGenerator(rand.New(rand.NewPCG(1, 2)))
	data := bloomlab.NewDatasetGenerator(rand.NewChaCha8([32]byte{1}))

	sweep := bloomlab.DefaultFilterSizeSweep()
	points, err := sweep.Run(seeds, data)
	if err != nil {
		panic(err)
	}

	fmt.Println("points:", len(points))
	fmt.Println("first size:", points[0].Size)
	fmt.Println("last size:", points[len(points)-1].Size)

	// Output:
	// points: 45
	// first size: 1000
	// last size: 9800
}

func ExampleReport() {
	points := []bloomlab.Point{
		{Size: 1_000, K: 1, FalsePositives: 197, Total: 1_000, Ratio: 0.197},
		{Size: 1_200, K: 1, FalsePositives: 171, Total: 1_000, Ratio: 0.171},
	}
	if err := bloomlab.Report(os.Stdout, points); err != nil {
		panic(err)
	}

	// Output:
	// 0.197
	// 0.171
}

func ExampleAbsentAt() {
	m := bloomlab.AbsentAt(2)
	idx, ok := m.FailedHash()
	fmt.Println(m.IsPresent(), idx, ok)
	fmt.Println(m)

	// Output:
	// false 2 true
	// absent at hash 2
}

func ExampleEstimateFalsePositiveRate() {
	// 500 items in 10,000 bits with 3 hash functions
	fmt.Printf("%.4f\n", bloomlab.EstimateFalsePositiveRate(10_000, 3, 500))

	// Output:
	// 0.0027
}

func ExampleOptimalK() {
	fmt.Println(bloomlab.OptimalK(10_000, 500))

	// Output:
	// 14
}
