package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/chandas"
)

// parseFamilies parses a list such as "8,11-14" into syllable counts.
func parseFamilies(s string) ([]int, error) {
	var result []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err1 := strconv.Atoi(strings.TrimSpace(lo))
			end, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil || start <= 0 || end < start {
				return nil, fmt.Errorf("invalid family range %q", part)
			}
			for i := start; i <= end; i++ {
				result = append(result, i)
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid family %q", part)
		}
		result = append(result, n)
	}
	return result, nil
}

type samaOutput struct {
	Family    int    `json:"family" yaml:"family"`
	Name      string `json:"name" yaml:"name"`
	Pattern   string `json:"pattern" yaml:"pattern"`
	Canonical string `json:"canonical" yaml:"canonical"`
	Upajati   bool   `json:"upajati,omitempty" yaml:"upajati,omitempty"`
}

type ardhasamaOutput struct {
	Name string `json:"name" yaml:"name"`
	Odd  string `json:"odd" yaml:"odd"`
	Even string `json:"even" yaml:"even"`
}

type jatiOutput struct {
	Name     string `json:"name" yaml:"name"`
	Standard [4]int `json:"standard" yaml:"standard"`
}

type metersOutput struct {
	Anustubh  []string          `json:"anustubh,omitempty" yaml:"anustubh,omitempty"`
	Sama      []samaOutput      `json:"sama" yaml:"sama"`
	Ardhasama []ardhasamaOutput `json:"ardhasama,omitempty" yaml:"ardhasama,omitempty"`
	Jati      []jatiOutput      `json:"jati,omitempty" yaml:"jati,omitempty"`
}

func newMetersCmd(opts *options) *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "meters",
		Short: "List the meters of the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _, err := opts.newIdentifier(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out, err := listMeters(id.Catalog(), family)
			if err != nil {
				return err
			}
			if opts.format == formatPretty {
				return writeMeters(cmd.OutOrStdout(), out)
			}
			return encode(cmd.OutOrStdout(), opts.format, out)
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "only sama meters of these syllable counts, e.g. 8,11-14")
	return cmd
}

// listMeters collects the catalogue. With a family filter only the
// matching sama meters are listed.
func listMeters(c *chandas.Catalog, family string) (metersOutput, error) {
	families := c.Families()
	all := family == ""
	if !all {
		var err error
		if families, err = parseFamilies(family); err != nil {
			return metersOutput{}, err
		}
	}

	out := metersOutput{Sama: []samaOutput{}}
	for _, f := range families {
		for _, s := range c.SamaByFamily(f) {
			out.Sama = append(out.Sama, samaOutput{
				Family: s.Family, Name: s.Name, Pattern: s.Pattern,
				Canonical: s.Canonical, Upajati: s.Upajati,
			})
		}
	}
	if all {
		out.Anustubh = c.AnustubhTypes()
		for _, m := range c.Ardhasama() {
			out.Ardhasama = append(out.Ardhasama, ardhasamaOutput{Name: m.Name, Odd: m.Odd, Even: m.Even})
		}
		for _, j := range c.Jati() {
			out.Jati = append(out.Jati, jatiOutput{Name: j.Name, Standard: j.Standard})
		}
	}
	return out, nil
}

func writeMeters(w io.Writer, out metersOutput) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(out.Anustubh) > 0 {
		fmt.Fprintf(tw, "%s\t%s\n", fileColor.Sprint("anuṣṭubh"), strings.Join(out.Anustubh, ", "))
	}
	for _, s := range out.Sama {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Family, s.Name, s.Canonical)
	}
	for _, m := range out.Ardhasama {
		fmt.Fprintf(tw, "ardhasama\t%s\t%s / %s\n", m.Name, m.Odd, m.Even)
	}
	for _, j := range out.Jati {
		fmt.Fprintf(tw, "jāti\t%s\t%d %d %d %d\n", j.Name, j.Standard[0], j.Standard[1], j.Standard[2], j.Standard[3])
	}
	return tw.Flush()
}
