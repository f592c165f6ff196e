package material

import (
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"sndeck/pkg/deck"
)

// XSNames maps nuclide ids to cross-section library names,
// e.g. 250550000 -> "mn55".
type XSNames map[int]string

// LoadXSNames reads the nuclide name table from a YAML file of
// "nucid: name" pairs.
func LoadXSNames(path string) (XSNames, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, deck.GeneralMatError("cannot read name table %s: %s", path, err)
	}
	names := XSNames{}
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, deck.GeneralMatError("cannot parse name table %s: %s", path, err)
	}
	return names, nil
}

// Names returns the cross-section names ordered by ascending nuclide id,
// the order the NAMES block lists them in.
func (n XSNames) Names() []string {
	ids := make([]int, 0, len(n))
	for id := range n {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, n[id])
	}
	return names
}

// Translate replaces the nuclide ids of a library with cross-section names.
// A nuclide missing from the table does not abort the run: it keeps its
// decimal id as the name and a warning is surfaced to the caller. Materials
// and nuclides are visited in sorted order so warnings come out in a stable
// order run to run.
func Translate(library Library, names XSNames) (map[string]map[string]float64, []deck.Warning) {
	translated := map[string]map[string]float64{}
	warnings := []deck.Warning{}

	materialNames := make([]string, 0, len(library))
	for materialName := range library {
		materialNames = append(materialNames, materialName)
	}
	sort.Strings(materialNames)

	for _, materialName := range materialNames {
		composition := library[materialName]
		nucids := make([]int, 0, len(composition))
		for nucid := range composition {
			nucids = append(nucids, nucid)
		}
		sort.Ints(nucids)

		byName := map[string]float64{}
		for _, nucid := range nucids {
			name, found := names[nucid]
			if !found {
				name = strconv.Itoa(nucid)
				warnings = append(warnings, deck.Warningf(
					"materials",
					"nuclide %d of material %s has no cross-section name, using %q",
					nucid, materialName, name,
				))
			}
			byName[name] = composition[nucid]
		}
		translated[materialName] = byName
	}

	return translated, warnings
}
