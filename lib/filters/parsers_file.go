package filters

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

func ParseFileFilterWithUsage(rule string, filterType UsageType) (FileFilterWithUsage, error) {
	filter, err := ParseFileFilter(rule)
	if err != nil {
		return nil, err
	}

	return LiftFileFilter(filter, filterType), nil
}

func ParseFileFilter(rule string) (FileFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(name string) bool {
			return true
		}, nil

	case strings.Contains(rule, "|"):
		clauses, err := ParseFileFilterList(strings.Split(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(name string) bool {
			result := false
			for _, f := range clauses {
				result = result || f(name)
			}
			return result
		}, nil

	case strings.Contains(rule, "&"):
		clauses, err := ParseFileFilterList(strings.Split(rule, "&"))
		if err != nil {
			return nil, err
		}

		return func(name string) bool {
			result := true
			for _, f := range clauses {
				result = result && f(name)
			}
			return result
		}, nil

	case strings.HasPrefix(rule, "!"):
		f, err := ParseFileFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(name string) bool {
			return !f(name)
		}, nil

	case strings.HasPrefix(rule, "name:"):
		g, err := glob.Compile(rule[5:])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid name glob: %v", rule[5:])
		}

		return func(name string) bool {
			return g.Match(path.Base(name))
		}, nil

	default:
		if !doublestar.ValidatePattern(rule) {
			return nil, errors.Errorf("invalid file glob: %v", rule)
		}

		return func(name string) bool {
			m, err := doublestar.Match(rule, name)
			return err == nil && m
		}, nil
	}
}

func ParseFileFilterList(rules []string) ([]FileFilter, error) {
	result := make([]FileFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParseFileFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}
