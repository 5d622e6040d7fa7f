package entities

// Catalog is the static content catalog: prediction text pools and the
// base compatibility matrix. It is loaded once per process and never
// mutated afterwards; the selector and scorer only read from it.
//
// The catalog package has no dependency on the services that consume it.
type Catalog struct {
	// Personal holds per-(sign, category) ordered candidate texts.
	Personal map[Sign]map[Category][]string
	// Universal holds sign-agnostic candidate texts per category.
	Universal map[Category][]string
	// BaseScores is the symmetric sign×sign base compatibility matrix.
	// May be nil, in which case the scorer generates a default matrix.
	BaseScores map[Sign]map[Sign]int
}

// Empty reports whether the catalog carries no prediction content at all.
func (c *Catalog) Empty() bool {
	if c == nil {
		return true
	}
	for _, pools := range c.Personal {
		for _, pool := range pools {
			if len(pool) > 0 {
				return false
			}
		}
	}
	for _, pool := range c.Universal {
		if len(pool) > 0 {
			return false
		}
	}
	return true
}

// PersonalPool returns the candidate texts for a (sign, category) pair.
// The returned slice is the catalog's own storage and must not be mutated.
func (c *Catalog) PersonalPool(sign Sign, category Category) []string {
	if c == nil {
		return nil
	}
	return c.Personal[sign][category]
}

// UniversalPool returns the sign-agnostic candidate texts for a category.
// The returned slice is the catalog's own storage and must not be mutated.
func (c *Catalog) UniversalPool(category Category) []string {
	if c == nil {
		return nil
	}
	return c.Universal[category]
}

// BaseScore looks up the base compatibility score for a sign pair.
func (c *Catalog) BaseScore(a, b Sign) (int, bool) {
	if c == nil || c.BaseScores == nil {
		return 0, false
	}
	score, ok := c.BaseScores[a][b]
	return score, ok
}
