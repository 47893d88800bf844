package filters

type simpleFileFilterWithUsage struct {
	filter FileFilter
	usage  UsageType
}

func (s *simpleFileFilterWithUsage) Filter(name string) UsageType {
	if s.filter(name) {
		return s.usage
	}
	return DontCare
}

func (s *simpleFileFilterWithUsage) Decide(u UsageType) bool {
	return u.DecideFor(s.usage)
}

type fileFilterWithUsageGroup struct {
	filters []FileFilterWithUsage
}

func (g *fileFilterWithUsageGroup) Filter(name string) UsageType {
	result := DontCare
	for _, f := range g.filters {
		result = result.Merge(f.Filter(name))
	}
	return result
}

func (g *fileFilterWithUsageGroup) Decide(u UsageType) bool {
	switch u {
	case Include:
		return true
	case Exclude:
		return false
	default:
		result := true
		for _, f := range g.filters {
			result = result && f.Decide(u)
		}
		return result
	}
}
