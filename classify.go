package chandas

// Test is one meter test of the classifier battery. Attempt must not
// modify v; it returns its candidates in priority order, or nil.
type Test interface {
	Name() string
	Attempt(v Verse) []Result
}

// Classifier runs an ordered battery of tests over one fixed segmentation.
// It holds no per-call state and is safe for concurrent use.
type Classifier struct {
	tests []Test
}

// NewClassifier returns the standard battery over catalog: anuṣṭubh,
// then the samavṛtta family, then jāti.
func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{tests: []Test{
		anustubhTest{catalog: catalog},
		samavrttaTest{catalog: catalog},
		jatiTest{catalog: catalog},
	}}
}

// Tests returns the battery in run order.
func (c *Classifier) Tests() []Test {
	out := make([]Test, len(c.tests))
	copy(out, c.tests)
	return out
}

// Classify folds every test's candidates into v through Verse.Combine and
// returns the resulting score. Once v holds MaxScore the remaining tests
// are skipped. A verse without four pādas is left untouched.
func (c *Classifier) Classify(v *Verse) int {
	if _, ok := v.Quarters(); !ok {
		return v.IdentificationScore
	}
	for _, t := range c.tests {
		if v.IdentificationScore >= MaxScore {
			break
		}
		for _, r := range t.Attempt(*v) {
			v.Combine(r)
		}
	}
	return v.IdentificationScore
}
