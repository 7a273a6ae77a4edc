package bloomlab

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// Dataset is a labelled set of synthetic keys. Inserted keys are the
// ground-truth members; NotInserted keys are the ground-truth non-members.
type Dataset struct {
	Inserted    []string
	NotInserted []string
	// All is Inserted followed by NotInserted, the evaluation order.
	All []string

	negatives map[uint64][]int // xxh3(key) -> indexes into NotInserted
}

// IsNegative reports whether key is one of the dataset's non-members.
func (d *Dataset) IsNegative(key string) bool {
	for _, i := range d.negatives[xxh3.HashString(key)] {
		if d.NotInserted[i] == key {
			return true
		}
	}
	return false
}

// Len returns the number of keys in the dataset.
func (d *Dataset) Len() int {
	return len(d.All)
}

// DatasetGenerator produces datasets of random UUID keys.
type DatasetGenerator struct {
	rand io.Reader
}

// NewDatasetGenerator returns a generator reading UUID entropy from r.
// A nil r uses crypto/rand.
func NewDatasetGenerator(r io.Reader) *DatasetGenerator {
	return &DatasetGenerator{rand: r}
}

// Generate creates a dataset with the given number of members and
// non-members. The two label sets are disjoint with overwhelming
// probability, but that is not checked.
func (g *DatasetGenerator) Generate(positives, negatives int) (*Dataset, error) {
	if positives < 0 || negatives < 0 {
		return nil, fmt.Errorf("%w: negative key count (positives=%d, negatives=%d)", ErrDataset, positives, negatives)
	}

	all := make([]string, 0, positives+negatives)
	for range positives + negatives {
		key, err := g.key()
		if err != nil {
			return nil, err
		}
		all = append(all, key)
	}

	d := &Dataset{
		Inserted:    all[:positives:positives],
		NotInserted: all[positives:],
		All:         all,
		negatives:   make(map[uint64][]int, negatives),
	}
	for i, key := range d.NotInserted {
		h := xxh3.HashString(key)
		d.negatives[h] = append(d.negatives[h], i)
	}

	return d, nil
}

func (g *DatasetGenerator) key() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g == nil || g.rand == nil {
		id, err = uuid.NewRandom()
	} else {
		id, err = uuid.NewRandomFromReader(g.rand)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDataset, err)
	}
	return id.String(), nil
}
