package chandas

import (
	"fmt"
	"strconv"
	"strings"
)

// jatiTest recognises mora-counted meters.
type jatiTest struct {
	catalog *Catalog
}

func (jatiTest) Name() string { return "jāti" }

func (t jatiTest) Attempt(v Verse) []Result {
	q, ok := v.Quarters()
	if !ok || len(v.MoraePerLine) < 4 {
		return nil
	}
	morae := v.MoraePerLine[:4]
	j, ok := t.catalog.LookupJati(morae, q)
	if !ok {
		return nil
	}
	parts := make([]string, len(morae))
	for i, m := range morae {
		parts[i] = strconv.Itoa(m)
	}
	return []Result{{
		Label: fmt.Sprintf("%s (jāti) (%s)", j.Name, strings.Join(parts, ", ")),
		Score: 8,
	}}
}
