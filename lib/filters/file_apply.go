package filters

func LiftFileFilter(filter FileFilter, usage UsageType) FileFilterWithUsage {
	return &simpleFileFilterWithUsage{filter, usage}
}

func UnliftFileFilter(filter FileFilterWithUsage) FileFilter {
	return func(name string) bool {
		return filter.Decide(filter.Filter(name))
	}
}

func GroupFileFilters(filters ...FileFilterWithUsage) FileFilterWithUsage {
	return &fileFilterWithUsageGroup{filters}
}

// NewTemplateFilter accepts a name that matches any include (or all names, when there are no
// includes) and no exclude.
func NewTemplateFilter(includes, excludes []string) (FileFilter, error) {
	var group []FileFilterWithUsage

	for _, rule := range includes {
		f, err := ParseFileFilterWithUsage(rule, Include)
		if err != nil {
			return nil, err
		}

		group = append(group, f)
	}

	for _, rule := range excludes {
		f, err := ParseFileFilterWithUsage(rule, Exclude)
		if err != nil {
			return nil, err
		}

		group = append(group, f)
	}

	if len(group) == 0 {
		return func(string) bool { return true }, nil
	}

	return UnliftFileFilter(GroupFileFilters(group...)), nil
}
