package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// LabelWidth is the column the value of every labeled line starts after.
const LabelWidth = 20

// Heading writes a blank line followed by a "--- title ---" banner.
func Heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", heading("--- "+title+" ---"))
}

// Field writes "label<pad> : value".
func Field(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "%-*s : %v\n", LabelWidth, label, value)
}

// Warn writes an advisory line. Advisories never change the exit status.
func Warn(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, Yellow("Warning: "+fmt.Sprintf(format, args...)))
}

// Status renders a success/failure badge.
func Status(ok bool) string {
	if ok {
		return success("SUCCESS")
	}
	return failure("FAILED")
}

// YesNo renders a boolean flag.
func YesNo(b bool) string {
	if b {
		return Green("Yes")
	}
	return Yellow("No")
}

// Indexed formats a zero-padded positional index: "[07]".
func Indexed(i int) string {
	return fmt.Sprintf("[%02d]", i)
}

// PrintRaw writes the indented JSON payload, or the payload as-is when it
// is not valid JSON.
func PrintRaw(w io.Writer, raw json.RawMessage) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err == nil {
		fmt.Fprintln(w, pretty.String())
		return
	}
	fmt.Fprintln(w, string(raw))
}

// Compact returns raw JSON on a single line, for error details.
func Compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
