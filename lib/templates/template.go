package templates

import (
	"io/fs"
)

type Template struct {
	// Name is the slash separated path relative to the source root
	Name   string
	Size   int64
	Mode   fs.FileMode
	Source *Source
}

type SkipReason int

const (
	SkippedHidden SkipReason = iota
	SkippedDirectory
	SkippedIgnored
	SkippedFiltered
	SkippedOverridden
)

func (r SkipReason) String() string {
	switch r {
	case SkippedHidden:
		return "hidden"
	case SkippedDirectory:
		return "directory"
	case SkippedIgnored:
		return "ignored by " + IgnoreFile
	case SkippedFiltered:
		return "filtered"
	case SkippedOverridden:
		return "overridden"
	default:
		return "unknown"
	}
}

type Skipped struct {
	Name   string
	Source *Source
	Reason SkipReason
}

type Listing struct {
	Templates []*Template
	Skipped   []*Skipped
	Sources   []*Source
}

func (l *Listing) Get(name string) *Template {
	for _, t := range l.Templates {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (l *Listing) TotalSize() int64 {
	var result int64
	for _, t := range l.Templates {
		result += t.Size
	}
	return result
}
