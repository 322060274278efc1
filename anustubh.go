package chandas

import "fmt"

// irregularHalf labels the half of a śloka that fits no pattern.
const irregularHalf = "asamīcīna"

// anustubhTest recognises the śloka, half by half.
type anustubhTest struct {
	catalog *Catalog
}

func (anustubhTest) Name() string { return "anuṣṭubh" }

func (t anustubhTest) Attempt(v Verse) []Result {
	q, ok := v.Quarters()
	if !ok {
		return nil
	}

	ab, abOK := t.catalog.LookupAnustubh(q[0], q[1])
	cd, cdOK := t.catalog.LookupAnustubh(q[2], q[3])
	switch {
	case abOK && cdOK:
		return []Result{{Label: fmt.Sprintf("anuṣṭubh (ab: %s, cd: %s)", ab, cd), Score: MaxScore}}
	case cdOK:
		return []Result{{Label: fmt.Sprintf("anuṣṭubh (ab: %s, cd: %s)", irregularHalf, cd), Score: 8}}
	case abOK:
		return []Result{{Label: fmt.Sprintf("anuṣṭubh (ab: %s, cd: %s)", ab, irregularHalf), Score: 8}}
	}

	// a half-verse written over four lines
	if half, ok := t.catalog.LookupAnustubh(q[0]+q[1], q[2]+q[3]); ok {
		return []Result{{Label: fmt.Sprintf("anuṣṭubh (ardham eva: %s)", half), Score: MaxScore}}
	}
	return nil
}
