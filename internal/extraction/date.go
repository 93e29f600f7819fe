package extraction

import "regexp"

// dateTokenRe matches D-M-Y / D/M/Y tokens with 2-4 digit years. RE2 has no
// backreferences, so both separators are captured and compared afterwards.
var dateTokenRe = regexp.MustCompile(`\d{1,2}([-/])\d{1,2}([-/])\d{2,4}`)

// ExtractDate finds the first numeric date token whose two separators agree
// and returns it verbatim — no normalization of separator or year width.
// Returns "Unknown" when no token is present.
func ExtractDate(text string) string {
	for _, m := range dateTokenRe.FindAllStringSubmatch(text, -1) {
		if m[1] == m[2] {
			return m[0]
		}
	}
	return DefaultDate
}
