package chandas

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadCatalog builds a catalogue from the built-in tables extended by the
// TOML file at path. The file holds [[sama]], [[ardhasama]] and [[jati]]
// tables with the keys of SamaSpec, ArdhasamaSpec and JatiSpec. Its
// entries are tried after the built-in ones of the same kind.
func LoadCatalog(path string) (*Catalog, error) {
	var ext CatalogSpec
	meta, err := toml.DecodeFile(path, &ext)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	spec := BuiltinCatalogSpec()
	spec.Sama = append(spec.Sama, ext.Sama...)
	spec.Ardhasama = append(spec.Ardhasama, ext.Ardhasama...)
	spec.Jati = append(spec.Jati, ext.Jati...)

	c, err := NewCatalog(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
