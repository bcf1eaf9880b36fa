package dtree

import "strings"

// Separator delimits path segments in formatted paths.
const Separator = "/"

// FormatPath returns segments in the leaf path format, i.e. every segment is
// preceded by a separator and the result always ends with one.
// No segments yield the root path "/".
func FormatPath(segments []string) string {
	var sb strings.Builder
	sb.WriteString(Separator)
	for _, segment := range segments {
		sb.WriteString(segment)
		sb.WriteString(Separator)
	}

	return sb.String()
}

// SplitPath is the inverse of FormatPath.  Empty tokens, e.g. from the leading
// and trailing separator, are dropped.
func SplitPath(p string) []string {
	segments := []string{}
	for _, segment := range strings.Split(p, Separator) {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	return segments
}

func validateName(name string) error {
	if name == "" {
		return newError(name, ErrEmptyName)
	}
	if strings.Contains(name, Separator) {
		return newError(name, ErrSlashInName)
	}

	return nil
}
