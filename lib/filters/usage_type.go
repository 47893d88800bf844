package filters

type UsageType int

const (
	DontCare UsageType = iota
	Include
	Exclude // Exclude wins over Include
)

func (u UsageType) Merge(other UsageType) UsageType {
	switch {
	case u == other:
		return u
	case u == Exclude || other == Exclude:
		return Exclude
	default:
		return Include
	}
}

// DecideFor resolves DontCare: when the rules are includes, anything not included is out.
func (u UsageType) DecideFor(rules UsageType) bool {
	switch u {
	case Include:
		return true
	case Exclude:
		return false
	default:
		return rules != Include
	}
}

func (u UsageType) String() string {
	switch u {
	case Include:
		return "include"
	case Exclude:
		return "exclude"
	default:
		return "dont care"
	}
}
