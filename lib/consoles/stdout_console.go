package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/colorstring"
)

type Options struct {
	Colors     bool
	Timestamps bool
}

type writerConsole struct {
	out      io.Writer
	colorize colorstring.Colorize
	opts     Options
	now      func() time.Time
	prefixes []string
}

func NewStdOutConsole(opts Options) Console {
	return NewWriterConsole(os.Stdout, opts)
}

func NewWriterConsole(out io.Writer, opts Options) Console {
	return &writerConsole{
		out: out,
		colorize: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !opts.Colors,
			Reset:   true,
		},
		opts: opts,
		now:  time.Now,
	}
}

// IsTerminal reports if stdout is attached to a terminal, so colors make sense.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (o *writerConsole) Printf(format string, a ...any) {
	_, _ = io.WriteString(o.out, o.Prepare(format, a...))
}

func (o *writerConsole) Prepare(format string, a ...any) string {
	builder := strings.Builder{}
	if o.opts.Timestamps {
		builder.WriteString("[")
		builder.WriteString(o.now().Format("15:04:05"))
		builder.WriteString("] ")
	}
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	// Only the format carries color markup, arguments are printed as they are
	builder.WriteString(fmt.Sprintf(o.colorize.Color(format), a...))
	return builder.String()
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	if len(o.prefixes) == 0 {
		return
	}

	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}

func (o *writerConsole) Writer() io.Writer {
	return o.out
}
