// Package seals derives memorable names for saved versions.
//
// A name is built from a version's BLAKE3 fingerprint:
// adjective-noun-verb-adverb-hash8. The same fingerprint always yields the
// same name.
//
// Example: swift-parser-compiles-cleanly-447abe9b
package seals

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
)

var (
	adjectives = []string{
		"swift", "brave", "bold", "clever", "gentle", "wise", "calm", "bright",
		"quiet", "sharp", "smooth", "light", "deep", "tidy", "pure", "lean",
		"eager", "steady", "nimble", "lucid", "plain", "crisp", "fresh", "stable",
		"golden", "silver", "iron", "amber", "rapid", "humble", "keen", "vivid",
	}

	nouns = []string{
		"parser", "loop", "branch", "lambda", "vector", "stack", "queue", "heap",
		"tuple", "record", "module", "thread", "socket", "buffer", "cursor", "token",
		"falcon", "river", "comet", "lantern", "anchor", "beacon", "harbor", "summit",
		"ember", "pebble", "meadow", "cedar", "glacier", "canyon", "orbit", "prism",
	}

	verbs = []string{
		"compiles", "runs", "returns", "yields", "iterates", "recurses", "branches", "folds",
		"maps", "filters", "sorts", "merges", "splits", "parses", "renders", "builds",
		"flows", "climbs", "glides", "settles", "wanders", "shines", "rests", "leaps",
		"hums", "turns", "grows", "drifts", "echoes", "lands", "wakes", "sails",
	}

	adverbs = []string{
		"cleanly", "quickly", "safely", "lazily", "eagerly", "quietly", "boldly", "gently",
		"twice", "once", "again", "early", "late", "far", "near", "high",
		"deep", "wide", "true", "well", "lightly", "freely", "slowly", "smoothly",
		"calmly", "neatly", "briskly", "softly", "plainly", "warmly", "firmly", "evenly",
	}
)

// Generate creates a memorable name from a fingerprint.
func Generate(fingerprint [32]byte) string {
	seed := binary.LittleEndian.Uint64(fingerprint[:8])
	r := rand.New(rand.NewSource(int64(seed)))

	adj := adjectives[r.Intn(len(adjectives))]
	noun := nouns[r.Intn(len(nouns))]
	verb := verbs[r.Intn(len(verbs))]
	adv := adverbs[r.Intn(len(adverbs))]

	return fmt.Sprintf("%s-%s-%s-%s-%s", adj, noun, verb, adv, ShortHash(fingerprint))
}

// ShortHash returns the first four fingerprint bytes as 8 hex characters.
func ShortHash(fingerprint [32]byte) string {
	return hex.EncodeToString(fingerprint[:4])
}

// ShortHashFromName extracts the trailing 8-character hash of a name.
func ShortHashFromName(name string) (string, bool) {
	parts := strings.Split(name, "-")
	if len(parts) < 2 {
		return "", false
	}

	last := parts[len(parts)-1]
	if len(last) != 8 {
		return "", false
	}
	if _, err := hex.DecodeString(last); err != nil {
		return "", false
	}
	return last, true
}

// Matches reports whether query names the version with the given
// fingerprint. A full generated name, its hash suffix or any hex prefix
// of at least four characters matches.
func Matches(query string, fingerprint [32]byte) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return false
	}
	if short, ok := ShortHashFromName(query); ok && strings.Contains(query, "-") {
		return short == ShortHash(fingerprint) && query == Generate(fingerprint)
	}
	if len(query) < 4 {
		return false
	}
	return strings.HasPrefix(hex.EncodeToString(fingerprint[:]), query)
}
