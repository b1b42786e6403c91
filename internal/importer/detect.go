package importer

import (
	"slices"
	"strings"
)

// LineSeparator is the only line ending recognized in input files.
const LineSeparator = "\r\n"

// SplitLines splits raw file contents on CRLF. Bare LF is not a separator.
func SplitLines(data []byte) []string {
	return strings.Split(string(data), LineSeparator)
}

// Detection is the result of matching input lines against a registry.
type Detection struct {
	Descriptor  Descriptor
	HeaderIndex int // 0-based index of the header line
}

// Detect returns the first descriptor, in registry order, whose header
// appears as an exact line anywhere in lines.
func Detect(reg *Registry, lines []string) (Detection, error) {
	for _, d := range reg.descriptors {
		if i := slices.Index(lines, d.Header); i >= 0 {
			return Detection{Descriptor: d, HeaderIndex: i}, nil
		}
	}
	return Detection{}, ErrNoMatchingFormat
}
