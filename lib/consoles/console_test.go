package consoles

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrintfWithoutColors(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	console := NewWriterConsole(out, Options{})

	console.Printf("[green]Generating for [bold]%v[reset]\n", "kfusion")

	assert.Equal(t, "Generating for kfusion\n", out.String())
}

func TestPrintfWithColors(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	console := NewWriterConsole(out, Options{Colors: true})

	console.Printf("[green]ok")

	assert.Equal(t, "\033[32mok\033[0m", out.String())
}

func TestPrefixes(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	console := NewWriterConsole(out, Options{})

	console.PushPrefix("%v: ", "a")
	console.PushPrefix("b: ")
	console.Printf("x\n")
	console.PopPrefix()
	console.Printf("y\n")
	console.PopPrefix()
	console.PopPrefix()
	console.Printf("z\n")

	assert.Equal(t, "a: b: x\na: y\nz\n", out.String())
}

func TestTimestamps(t *testing.T) {
	t.Parallel()

	console := NewWriterConsole(&bytes.Buffer{}, Options{Timestamps: true}).(*writerConsole)
	console.now = func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}

	assert.Equal(t, "[03:04:05] msg", console.Prepare("msg"))
}

func TestArgumentsAreNotColorMarkup(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	console := NewWriterConsole(out, Options{})

	console.Printf("[green]copying %v[reset]\n", "notes[red].prefs")

	assert.Equal(t, "copying notes[red].prefs\n", out.String())
}

func TestArgumentsAreNotColorMarkupWithColors(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	console := NewWriterConsole(out, Options{Colors: true})

	console.Printf("[green]%v", "[bold]x")

	assert.Equal(t, "\033[32m[bold]x\033[0m", out.String())
}
