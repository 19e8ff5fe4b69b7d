package main

import (
	"fmt"
	"math"
	"strings"
)

// difficultyPredicate is the compiled form of a float difficulty against
// a concrete previous-block hash. A candidate hash satisfies it when its
// leading RequiredNibbles hex characters equal RequiredSuffix and, when
// AllowedNext restricts fewer than 16 digits, the character at position
// RequiredNibbles is one of AllowedNext.
type difficultyPredicate struct {
	RequiredNibbles int
	RequiredSuffix  string
	AllowedNext     string
}

// derivePredicate compiles difficulty against prevHash. The integer part
// of the difficulty fixes how many trailing characters of prevHash a
// candidate hash must start with; the fractional part shrinks the set of
// digits allowed in the next position: allowed count = ceil(16*(1-frac)),
// taken from the front of "0123456789abcdef". A whole-number difficulty
// leaves the next position unrestricted.
func derivePredicate(prevHash string, difficulty float64) (difficultyPredicate, error) {
	if difficulty < 0 || math.IsNaN(difficulty) || math.IsInf(difficulty, 0) {
		return difficultyPredicate{}, fmt.Errorf("invalid difficulty %v", difficulty)
	}
	whole := math.Floor(difficulty)
	n := int(whole)
	h := strings.ToLower(prevHash)
	if n > len(h) {
		return difficultyPredicate{}, fmt.Errorf("difficulty %v needs %d suffix characters, previous hash has %d", difficulty, n, len(h))
	}
	p := difficultyPredicate{
		RequiredNibbles: n,
		RequiredSuffix:  h[len(h)-n:],
		AllowedNext:     hexDigits,
	}
	if frac := difficulty - whole; frac > 0 {
		count := int(math.Ceil(16 * (1 - frac)))
		if count < 1 {
			count = 1
		}
		p.AllowedNext = hexDigits[:count]
	}
	return p, nil
}

func (p difficultyPredicate) restrictsNext() bool {
	return len(p.AllowedNext) < 16
}

// matches reports whether a lowercase hex hash satisfies the predicate.
func (p difficultyPredicate) matches(hexHash string) bool {
	if len(hexHash) < p.RequiredNibbles {
		return false
	}
	if hexHash[:p.RequiredNibbles] != p.RequiredSuffix {
		return false
	}
	if p.restrictsNext() && p.RequiredNibbles < len(hexHash) {
		if strings.IndexByte(p.AllowedNext, hexHash[p.RequiredNibbles]) < 0 {
			return false
		}
	}
	return true
}

// matchesDigest is the allocation-free form used by the host engine and
// the work-proof sampler.
func (p difficultyPredicate) matchesDigest(digest *[32]byte) bool {
	for i := 0; i < p.RequiredNibbles; i++ {
		if digestHexDigit(digest, i) != p.RequiredSuffix[i] {
			return false
		}
	}
	if p.restrictsNext() && p.RequiredNibbles < 64 {
		if strings.IndexByte(p.AllowedNext, digestHexDigit(digest, p.RequiredNibbles)) < 0 {
			return false
		}
	}
	return true
}
