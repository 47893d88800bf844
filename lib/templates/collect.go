package templates

import (
	"sort"

	"github.com/hashicorp/go-set/v2"

	"github.com/pescuma/eclipse-settings/lib/filters"
)

// Collect lists all sources in order. A template in a later source replaces the one with the
// same name from an earlier source.
func Collect(filter filters.FileFilter, sources ...*Source) (*Listing, error) {
	result := &Listing{}
	byName := map[string]*Template{}
	seen := set.New[string](10)

	for _, source := range sources {
		listing, err := source.List()
		if err != nil {
			return nil, err
		}

		result.Sources = append(result.Sources, source)
		result.Skipped = append(result.Skipped, listing.Skipped...)

		for _, t := range listing.Templates {
			if filter != nil && !filter(t.Name) {
				result.Skipped = append(result.Skipped, &Skipped{Name: t.Name, Source: source, Reason: SkippedFiltered})
				continue
			}

			if seen.Contains(t.Name) {
				previous := byName[t.Name]
				result.Skipped = append(result.Skipped, &Skipped{Name: previous.Name, Source: previous.Source, Reason: SkippedOverridden})
			}

			seen.Insert(t.Name)
			byName[t.Name] = t
		}
	}

	for _, name := range seen.Slice() {
		result.Templates = append(result.Templates, byName[name])
	}

	sort.Slice(result.Templates, func(i, j int) bool {
		return result.Templates[i].Name < result.Templates[j].Name
	})

	return result, nil
}
