package search

import "strings"

// Lines splits contents into lines.
//
// Lines end at "\n" or "\r\n" and the terminator is not part of the line.
// The final terminator is optional, so "a\nb" and "a\nb\n" both yield
// ["a" "b"]. A "\r" not followed by "\n" is ordinary content. Empty contents
// yield no lines.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(contents, "\n")+1)

	for len(contents) > 0 {
		i := strings.IndexByte(contents, '\n')
		if i < 0 {
			lines = append(lines, contents)
			break
		}

		line := contents[:i]
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)

		contents = contents[i+1:]
	}

	return lines
}
