package discovery

import "pathwise/internal/catalog"

// Eligible is the single hard gate: the applicant's GPA must meet the
// country's minimum. Every other condition is a scoring adjustment, never an
// exclusion. Countries failing this gate are omitted from all buckets
// entirely; they do not appear with a score of zero.
func Eligible(p Profile, c catalog.Country) bool {
	return p.GPA >= c.MinGPA
}
