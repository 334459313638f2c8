// Package teammatch resolves free-text bet selections and external
// provider team labels against the two teams of a matchup. All results
// are tagged three-way values; ambiguity is reported, never guessed.
package teammatch

import (
	"regexp"
	"strconv"
	"strings"
)

// Side is the resolved side of a matchup
type Side string

const (
	SideHome    Side = "home"
	SideAway    Side = "away"
	SideUnknown Side = "unknown"
)

// OverUnder is the resolved direction of a total selection
type OverUnder string

const (
	PickOver         OverUnder = "over"
	PickUnder        OverUnder = "under"
	OverUnderUnknown OverUnder = "unknown"
)

var (
	nonAlnumRe    = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	trailingNumRe = regexp.MustCompile(`([+-]?\d+\.?\d*)\s*$`)
	embeddedNumRe = regexp.MustCompile(`([+-]?\d+\.?\d*)`)
	overTokenRe   = regexp.MustCompile(`\bo\s*\d`)
	underTokenRe  = regexp.MustCompile(`\bu\s*\d`)
)

// Normalize lowercases, strips punctuation and collapses whitespace
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Matches reports whether free text refers to the given team. Rules are
// tried in order: substring containment either direction (which covers
// exact equality), short-name containment or equality against the first
// token, then per-word containment for team words of length >= 4 so
// that short city tags like "LA" never trigger a false positive.
func Matches(text, teamName, shortName string) bool {
	textNorm := Normalize(text)
	teamNorm := Normalize(teamName)
	if textNorm == "" || teamNorm == "" {
		return false
	}

	if strings.Contains(textNorm, teamNorm) || strings.Contains(teamNorm, textNorm) {
		return true
	}

	if shortName != "" {
		shortNorm := Normalize(shortName)
		if shortNorm != "" {
			firstToken := strings.SplitN(textNorm, " ", 2)[0]
			if strings.Contains(textNorm, shortNorm) || shortNorm == firstToken {
				return true
			}
		}
	}

	for _, word := range strings.Fields(teamNorm) {
		if len(word) >= 4 && strings.Contains(textNorm, word) {
			return true
		}
	}

	return false
}

// MatchSide decides whether text refers to the home or away team.
// If both sides match the text is ambiguous and the result is
// SideUnknown; callers must treat that as "do not bet / cannot grade".
func MatchSide(text, homeTeam, awayTeam, homeShort, awayShort string) Side {
	homeMatch := Matches(text, homeTeam, homeShort)
	awayMatch := Matches(text, awayTeam, awayShort)

	switch {
	case homeMatch && !awayMatch:
		return SideHome
	case awayMatch && !homeMatch:
		return SideAway
	default:
		return SideUnknown
	}
}

// DetectOverUnder classifies a total selection ("Over 220.5", "u 41",
// "O215") by keyword. Over is checked first; text matching neither
// convention is unknown.
func DetectOverUnder(selection string) OverUnder {
	sel := strings.ToLower(selection)
	if strings.Contains(sel, "over") || overTokenRe.MatchString(sel) || strings.HasPrefix(sel, "o ") {
		return PickOver
	}
	if strings.Contains(sel, "under") || underTokenRe.MatchString(sel) || strings.HasPrefix(sel, "u ") {
		return PickUnder
	}
	return OverUnderUnknown
}

// ExtractLine recovers a handicap or total line from selection text:
// a trailing signed number first ("Warriors +3.5"), then the first
// embedded number as a fallback. Returns false when no number exists.
func ExtractLine(selection string) (float64, bool) {
	if m := trailingNumRe.FindStringSubmatch(selection); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}
	if m := embeddedNumRe.FindStringSubmatch(selection); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// TeamsEqual reconciles two team spellings from different providers:
// normalized equality, containment either direction, or a shared word
// of length >= 4.
func TeamsEqual(a, b string) bool {
	an := strings.ReplaceAll(Normalize(a), " ", "")
	bn := strings.ReplaceAll(Normalize(b), " ", "")
	if an == "" || bn == "" {
		return false
	}
	if an == bn || strings.Contains(an, bn) || strings.Contains(bn, an) {
		return true
	}

	for _, wa := range strings.Fields(Normalize(a)) {
		if len(wa) < 4 {
			continue
		}
		for _, wb := range strings.Fields(Normalize(b)) {
			if len(wb) >= 4 && wa == wb {
				return true
			}
		}
	}
	return false
}
