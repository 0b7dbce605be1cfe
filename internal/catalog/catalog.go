// Package catalog holds the static destination-country dataset. The catalog is
// built once at startup, validated, and shared read-only by every request.
package catalog

import (
	"fmt"
	"math"

	"pathwise/pkg/platform/sentinel"
)

// costTolerance absorbs rounding noise when comparing a declared total cost
// against the breakdown sum.
const costTolerance = 0.01

// Catalog is an immutable, ordered collection of country records. Declaration
// order is stable and significant: it is the baseline order the ranker's
// stable sort preserves between equal entries.
type Catalog struct {
	countries []Country
	byName    map[string]int
}

// New validates the given records and builds a catalog. A record whose
// declared total cost disagrees with its cost breakdown beyond tolerance is a
// configuration error and rejects the whole catalog.
func New(countries []Country) (*Catalog, error) {
	byName := make(map[string]int, len(countries))
	for i, c := range countries {
		if c.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if _, dup := byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", c.Name)
		}
		if diff := math.Abs(c.TotalCost - c.Costs.Sum()); diff > costTolerance {
			return nil, fmt.Errorf("catalog entry %q: total_cost %.2f disagrees with cost breakdown sum %.2f",
				c.Name, c.TotalCost, c.Costs.Sum())
		}
		byName[c.Name] = i
	}
	return &Catalog{countries: countries, byName: byName}, nil
}

// Load builds the built-in catalog. Failure here is fatal at startup; the
// dataset ships with the binary and an inconsistent one must never serve.
func Load() (*Catalog, error) {
	return New(countries)
}

// Lookup returns the record for name, or sentinel.ErrNotFound.
func (c *Catalog) Lookup(name string) (Country, error) {
	i, ok := c.byName[name]
	if !ok {
		return Country{}, fmt.Errorf("country %q: %w", name, sentinel.ErrNotFound)
	}
	return c.countries[i], nil
}

// All returns the records in declaration order. The returned slice is a copy;
// the records themselves are shared and must be treated as read-only.
func (c *Catalog) All() []Country {
	out := make([]Country, len(c.countries))
	copy(out, c.countries)
	return out
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.countries)
}
