package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Success prints a green confirmation line.
func Success(w io.Writer, format string, args ...any) {
	c := color.New(color.FgGreen)
	if color.NoColor {
		c.DisableColor()
	}
	c.Fprintf(w, format+"\n", args...)
}

// Errorf prints a red error line.
func Errorf(w io.Writer, format string, args ...any) {
	c := color.New(color.FgRed)
	if color.NoColor {
		c.DisableColor()
	}
	c.Fprintf(w, format+"\n", args...)
}

// FieldError prints an inline validation message under a form field.
func FieldError(w io.Writer, msg string) {
	c := color.New(color.FgRed)
	if color.NoColor {
		c.DisableColor()
	}
	c.Fprintf(w, "  ! %s\n", msg)
}

// Info prints a neutral informational line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
