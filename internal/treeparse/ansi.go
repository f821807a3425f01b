package treeparse

import "strings"

// StripANSI removes ANSI escape sequences from s. Colorized tree output
// (tree -C, or CLICOLOR_FORCE in the environment) wraps entry names in SGR
// codes that would otherwise end up inside the parsed names. Applying it to
// already-clean text is a no-op.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\x1b' {
			b.WriteRune(runes[i])
			continue
		}
		// Bracket-introduced sequence: consume through the first alphabetic
		// terminator or tilde. A bare escape is dropped on its own.
		if i+1 < len(runes) && runes[i+1] == '[' {
			i++
			for i+1 < len(runes) {
				i++
				c := runes[i]
				if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '~' {
					break
				}
			}
		}
	}
	return b.String()
}
