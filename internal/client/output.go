package client

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	labelColor   = color.New(color.Bold)
)

func printSuccess(w io.Writer, format string, a ...any) {
	successColor.Fprintf(w, "✓ "+format+"\n", a...)
}

func printWarning(w io.Writer, format string, a ...any) {
	warningColor.Fprintf(w, "! "+format+"\n", a...)
}

// PrintError writes the user-facing message for err to w.
func PrintError(w io.Writer, err error) {
	errorColor.Fprintf(w, "✗ %s\n", ErrorMessage(err))
}

// ErrorMessage returns the wording for err shown to the user. Errors without
// a dedicated message (cobra usage errors among them) are shown as is.
func ErrorMessage(err error) string {
	msg := app.MessageFor(err)
	if msg == app.MsgInternalError {
		return err.Error()
	}
	return msg
}

func printField(w io.Writer, label, value string) {
	labelColor.Fprintf(w, "%-9s", label+":")
	fmt.Fprintf(w, " %s\n", value)
}
