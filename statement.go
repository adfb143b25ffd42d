package sq3

import "strings"

// statementTerminator ends every statement handed to the engine
const statementTerminator = ";"

// normalizeStatement appends the statement terminator when text does not
// already end with one. Completeness is checked afterwards, so a
// terminator inside an open quote or comment still leaves the statement
// incomplete.
func normalizeStatement(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, statementTerminator) {
		return text
	}
	return text + statementTerminator
}
