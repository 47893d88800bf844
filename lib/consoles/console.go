package consoles

import "io"

type Console interface {
	Printf(format string, a ...any)

	// Prepare returns the text that would be printed for the message, including prefixes.
	Prepare(format string, a ...any) string

	PushPrefix(format string, a ...any)
	PopPrefix()

	// Writer returns the raw destination of the console, for progress bars and child output.
	Writer() io.Writer
}
