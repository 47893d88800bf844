package linediff

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Diff struct {
	Type  Operation
	Lines []string
}

type Operation int8

const (
	DiffDelete Operation = Operation(diffmatchpatch.DiffDelete)
	DiffInsert Operation = Operation(diffmatchpatch.DiffInsert)
	DiffEqual  Operation = Operation(diffmatchpatch.DiffEqual)
)

type Stats struct {
	Inserted int
	Deleted  int
}

func (s Stats) Changed() bool {
	return s.Inserted > 0 || s.Deleted > 0
}

func Do(src, dst string) []Diff {
	return DoWithTimeout(src, dst, time.Second)
}

func DoWithTimeout(src, dst string, timeout time.Duration) []Diff {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = timeout
	lines, wSrc, wDst := textsToLineIndexes(src, dst)
	dmpd := dmp.DiffMainRunes(wSrc, wDst, false)
	return lineIndexesToDiff(dmpd, lines)
}

func Summarize(diffs []Diff) Stats {
	var result Stats
	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			result.Inserted += len(d.Lines)
		case DiffDelete:
			result.Deleted += len(d.Lines)
		}
	}
	return result
}

// Write prints the changed lines prefixed by + or -. Equal lines are omitted.
func Write(w io.Writer, diffs []Diff) error {
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case DiffInsert:
			mark = "+ "
		case DiffDelete:
			mark = "- "
		default:
			continue
		}

		for _, line := range d.Lines {
			_, err := fmt.Fprintf(w, "%v%v\n", mark, strings.TrimRight(line, "\r\n"))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func lineIndexesToDiff(diffs []diffmatchpatch.Diff, lines []string) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, aDiff := range diffs {
		text := []rune(aDiff.Text)

		d := Diff{
			Type:  Operation(aDiff.Type),
			Lines: make([]string, len(text)),
		}
		for i, r := range text {
			d.Lines[i] = lines[r]
		}

		hydrated = append(hydrated, d)
	}
	return hydrated
}

func textsToLineIndexes(text1, text2 string) ([]string, []rune, []rune) {
	lineToIndex := make(map[string]int)
	var lines []string
	indexes1 := textToLineIndexes(text1, lineToIndex, &lines)
	indexes2 := textToLineIndexes(text2, lineToIndex, &lines)
	return lines, indexes1, indexes2
}

func textToLineIndexes(text string, lineToIndex map[string]int, lines *[]string) []rune {
	if text == "" {
		return nil
	}

	split := strings.SplitAfter(text, "\n")
	if split[len(split)-1] == "" {
		split = split[:len(split)-1]
	}

	result := make([]rune, len(split))
	for i, line := range split {
		lineValue, ok := lineToIndex[line]

		if !ok {
			lineValue = len(*lines)
			lineToIndex[line] = lineValue
			*lines = append(*lines, line)
		}

		result[i] = rune(lineValue)
	}
	return result
}
