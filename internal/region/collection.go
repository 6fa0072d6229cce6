package region

import (
	"math"
	"sort"

	"github.com/JonMunkholm/citystats/internal/csv"
)

// Collection is an ordered, mutable sequence of regions owned by a single
// caller. Aggregates are recomputed from the current contents on every
// call, so they never go stale across mutations.
type Collection struct {
	regions []Region
}

// NewCollection builds a collection holding the given regions in order.
func NewCollection(regions ...Region) *Collection {
	c := &Collection{regions: make([]Region, len(regions))}
	copy(c.regions, regions)
	return c
}

// Collect maps parsed records into a collection, failing on the first
// record that cannot produce a Region.
func Collect(records []csv.Record) (*Collection, error) {
	c := &Collection{regions: make([]Region, 0, len(records))}
	for _, rec := range records {
		r, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		c.regions = append(c.regions, r)
	}
	return c, nil
}

// Len returns the current element count.
func (c *Collection) Len() int {
	return len(c.regions)
}

// At returns the region at index i. Negative indices count from the end,
// -1 being the last element. Out-of-range indices, including any index on
// an empty collection, report ok == false.
func (c *Collection) At(i int) (Region, bool) {
	if i < 0 {
		i += len(c.regions)
	}
	if i < 0 || i >= len(c.regions) {
		return Region{}, false
	}
	return c.regions[i], true
}

// PopLast removes and discards the last region. Popping an empty
// collection removes nothing and leaves it empty.
func (c *Collection) PopLast() {
	if n := len(c.regions); n > 0 {
		c.regions = c.regions[:n-1]
	}
}

// MaxDensity returns the maximum density across the current contents,
// scanning from scratch on every call. An empty collection yields -Inf.
// NaN densities are skipped.
func (c *Collection) MaxDensity() float64 {
	max := math.Inf(-1)
	for _, r := range c.regions {
		if r.Density > max {
			max = r.Density
		}
	}
	return max
}

// SortByRelativeDensity orders the regions by descending relative density,
// computing the reference maximum once up front. The sort is stable: rows
// whose rounded percentages tie keep their input order. Sorting an
// already-sorted collection leaves it unchanged.
func (c *Collection) SortByRelativeDensity() {
	max := c.MaxDensity()
	sort.SliceStable(c.regions, func(i, j int) bool {
		return RelativeDensity(c.regions[i].Density, max) > RelativeDensity(c.regions[j].Density, max)
	})
}

// Regions returns a copy of the regions in their current order, so callers
// can iterate without aliasing the collection's own storage.
func (c *Collection) Regions() []Region {
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}
