package msg

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

func emit(w io.Writer, label, format string, a ...any) {
	fmt.Fprint(w, label, ": ")
	fmt.Fprintf(w, format, a...)
	fmt.Fprint(w, "\n")
}

func Error(format string, a ...any) {
	emit(os.Stderr, color.HiRedString("error"), format, a...)
}

func Warn(format string, a ...any) {
	emit(os.Stderr, color.YellowString("warn"), format, a...)
}

func Info(format string, a ...any) {
	emit(os.Stdout, color.HiGreenString("info"), format, a...)
}

func Fatal(format string, a ...any) {
	emit(os.Stderr, color.RedString("fatal"), format, a...)
	os.Exit(1)
}

// IndentWriter prefixes every line written through it with Indent. Used to
// nest subprocess output under a heading.
type IndentWriter struct {
	Indent    string
	W         io.Writer
	didIndent bool
}

func (w *IndentWriter) Write(p []byte) (n int, err error) {
	for _, c := range p {
		if !w.didIndent {
			w.W.Write([]byte(w.Indent))
			w.didIndent = true
		}
		w.W.Write([]byte{c})
		if c == '\n' || c == '\r' {
			w.didIndent = false
		}
	}
	return len(p), nil
}
