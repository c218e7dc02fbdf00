package ident

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// builtinDeny holds substrings no identifier may contain. Mix of reserved
// technical words (route and asset prefixes the surrounding application
// claims) and profanity/slurs that must never appear in a shareable link.
var builtinDeny = []string{
	// Reserved technical words.
	"admin",
	"api",
	"root",
	"www",
	"css",
	"img",
	"js",
	"static",
	"assets",
	"login",
	"logout",
	"signup",
	// Profanity and slurs.
	"anal",
	"anus",
	"arse",
	"ass",
	"bitch",
	"boob",
	"clit",
	"cock",
	"coon",
	"cunt",
	"dick",
	"dyke",
	"fag",
	"fuck",
	"homo",
	"jizz",
	"kike",
	"kunt",
	"milf",
	"nazi",
	"nigga",
	"nigger",
	"paki",
	"penis",
	"piss",
	"poop",
	"porn",
	"pube",
	"rape",
	"semen",
	"sex",
	"shit",
	"slut",
	"spic",
	"tit",
	"twat",
	"vagina",
	"wank",
	"whore",
	"xxx",
}

// Denylist screens identifier candidates for disallowed substrings.
// Entries are stored in normalized form; see Normalize.
type Denylist struct {
	entries []string
}

// NewDenylist returns a Denylist holding the built-in entries plus any
// extra operator-supplied entries. All entries are normalized; empty
// entries (or entries that normalize to empty) are dropped.
func NewDenylist(extra ...string) *Denylist {
	entries := make([]string, 0, len(builtinDeny)+len(extra))
	for _, e := range builtinDeny {
		entries = append(entries, Normalize(e))
	}
	for _, e := range extra {
		n := Normalize(e)
		if n != "" {
			entries = append(entries, n)
		}
	}
	return &Denylist{entries: entries}
}

// Blocked reports whether the candidate contains any denylisted substring
// after normalization.
func (d *Denylist) Blocked(candidate string) bool {
	n := Normalize(candidate)
	for _, e := range d.entries {
		if strings.Contains(n, e) {
			return true
		}
	}
	return false
}

// separatorStripper removes the separators ignored during comparison, so
// "a-d_m in" still matches "admin".
var separatorStripper = strings.NewReplacer("-", "", "_", "", " ", "")

// Normalize maps a string to the canonical form used for denylist
// comparison: NFC normalization, lowercase, separators stripped.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	return separatorStripper.Replace(s)
}
