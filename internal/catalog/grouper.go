package catalog

import "strings"

// recordSeparator joins the three raw lines of one record into a single
// composite line before tokenizing.
const recordSeparator = " | "

// linesPerRecord is the number of raw input lines per beer record.
const linesPerRecord = 3

// groupLines merges raw lines three at a time into composite lines.
// A trailing group of one or two lines is dropped silently; incomplete
// records are a tolerance of the format, not an error.
func groupLines(lines []string) []string {
	composite := make([]string, 0, len(lines)/linesPerRecord)

	for i := 0; i+linesPerRecord <= len(lines); i += linesPerRecord {
		composite = append(composite, strings.Join(lines[i:i+linesPerRecord], recordSeparator))
	}

	return composite
}
