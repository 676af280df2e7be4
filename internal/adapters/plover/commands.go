package plover

import "strings"

// commandPrefixes open brace groups that control output rather than
// produce text.
var commandPrefixes = []string{"#", "PLOVER:", "MODE:", "*"}

// bareCommands are whole brace groups with no text of their own.
var bareCommands = map[string]bool{
	"":    true,
	"^":   true,
	"^^":  true,
	"-|":  true,
	">":   true,
	"<":   true,
	"*-|": true,
	"*>":  true,
	"*<":  true,
}

// IsCommand reports whether a translation only formats or controls output,
// like "{^}", "{#Return}", "{PLOVER:TOGGLE}" or the "=undo" macro. Affixes
// such as "{^ing}" carry text and are not commands.
func IsCommand(translation string) bool {
	t := strings.TrimSpace(translation)
	if t == "" || strings.HasPrefix(t, "=") {
		return true
	}
	if !strings.HasPrefix(t, "{") || !strings.HasSuffix(t, "}") {
		return false
	}
	inner := t[1 : len(t)-1]
	if strings.ContainsAny(inner, "{}") {
		return false
	}
	if bareCommands[inner] {
		return true
	}
	upper := strings.ToUpper(inner)
	for _, p := range commandPrefixes {
		if strings.HasPrefix(upper, p) {
			return true
		}
	}
	return false
}
