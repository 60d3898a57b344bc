// Package notify prints short, symbol-prefixed status lines for the CLI.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// MessageType selects the symbol and color of a message.
type MessageType int

const (
	ErrorType MessageType = iota
	WarningType
	SuccessType
	InfoType
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgBlue)
)

// Quiet suppresses everything except errors.
var Quiet bool

func (t MessageType) prefix() (string, *color.Color) {
	switch t {
	case ErrorType:
		return "✗", errorColor
	case WarningType:
		return "⚠", warningColor
	case SuccessType:
		return "✔", successColor
	default:
		return "ℹ", infoColor
	}
}

// Write prints one formatted message of type t to w (os.Stderr if nil).
func Write(w io.Writer, t MessageType, format string, args ...any) {
	if Quiet && t != ErrorType {
		return
	}
	if w == nil {
		w = os.Stderr
	}
	symbol, c := t.prefix()
	_, _ = fmt.Fprintf(w, "  %s %s\n", c.Sprint(symbol), fmt.Sprintf(format, args...))
}

// Errorf writes an error message.
func Errorf(w io.Writer, format string, args ...any) { Write(w, ErrorType, format, args...) }

// Warningf writes a warning message.
func Warningf(w io.Writer, format string, args ...any) { Write(w, WarningType, format, args...) }

// Successf writes a success message.
func Successf(w io.Writer, format string, args ...any) { Write(w, SuccessType, format, args...) }

// Infof writes an informational message.
func Infof(w io.Writer, format string, args ...any) { Write(w, InfoType, format, args...) }
