package main

import (
	"strings"
	"testing"
)

func TestDerivePredicate(t *testing.T) {
	prev := strings.Repeat("0", 61) + "abc"

	tests := []struct {
		name        string
		prevHash    string
		difficulty  float64
		wantNibbles int
		wantSuffix  string
		wantNext    string
	}{
		{"whole", prev, 3.0, 3, "abc", hexDigits},
		{"half", prev, 3.5, 3, "abc", "01234567"},
		{"quarter", prev, 2.25, 2, "bc", "0123456789ab"},
		{"zero", prev, 0, 0, "", hexDigits},
		{"uppercase input", strings.ToUpper(prev), 3.0, 3, "abc", hexDigits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := derivePredicate(tt.prevHash, tt.difficulty)
			if err != nil {
				t.Fatalf("derivePredicate: %v", err)
			}
			if p.RequiredNibbles != tt.wantNibbles {
				t.Errorf("RequiredNibbles = %d, want %d", p.RequiredNibbles, tt.wantNibbles)
			}
			if p.RequiredSuffix != tt.wantSuffix {
				t.Errorf("RequiredSuffix = %q, want %q", p.RequiredSuffix, tt.wantSuffix)
			}
			if p.AllowedNext != tt.wantNext {
				t.Errorf("AllowedNext = %q, want %q", p.AllowedNext, tt.wantNext)
			}
		})
	}
}

func TestDerivePredicateRejectsInvalidDifficulty(t *testing.T) {
	prev := strings.Repeat("0", 64)
	for _, d := range []float64{-1, -0.5} {
		if _, err := derivePredicate(prev, d); err == nil {
			t.Errorf("difficulty %v: expected error", d)
		}
	}
	if _, err := derivePredicate("abc", 10); err == nil {
		t.Error("difficulty larger than hash length: expected error")
	}
}

func TestPredicateMatches(t *testing.T) {
	p := difficultyPredicate{RequiredNibbles: 2, RequiredSuffix: "ab", AllowedNext: "0123"}

	tests := []struct {
		hash string
		want bool
	}{
		{"ab3" + strings.Repeat("0", 61), true},
		{"ab0" + strings.Repeat("f", 61), true},
		{"ab8" + strings.Repeat("0", 61), false}, // next nibble outside charset
		{"ac3" + strings.Repeat("0", 61), false}, // suffix mismatch
		{"a", false}, // shorter than required
	}
	for _, tt := range tests {
		if got := p.matches(tt.hash); got != tt.want {
			t.Errorf("matches(%q) = %v, want %v", tt.hash, got, tt.want)
		}
	}
}

func TestPredicateUnrestrictedNext(t *testing.T) {
	p := difficultyPredicate{RequiredNibbles: 1, RequiredSuffix: "f", AllowedNext: hexDigits}
	for _, c := range hexDigits {
		hash := "f" + string(c) + strings.Repeat("0", 62)
		if !p.matches(hash) {
			t.Errorf("matches(%q) = false with full charset", hash)
		}
	}
}

func TestPredicateMatchesDigestAgreesWithHex(t *testing.T) {
	preds := []difficultyPredicate{
		{RequiredNibbles: 0, RequiredSuffix: "", AllowedNext: hexDigits},
		{RequiredNibbles: 1, RequiredSuffix: "a", AllowedNext: "01234567"},
		{RequiredNibbles: 2, RequiredSuffix: "7f", AllowedNext: hexDigits},
		{RequiredNibbles: 3, RequiredSuffix: "000", AllowedNext: "0"},
	}
	for nonce := uint32(0); nonce < 200; nonce++ {
		block := appendNonce([]byte("digest-agreement-test"), nonce)
		digest := sha256Sum(block)
		hexHash := digestToHex(&digest)
		for _, p := range preds {
			if p.matchesDigest(&digest) != p.matches(hexHash) {
				t.Fatalf("digest/hex mismatch for pred %+v hash %s", p, hexHash)
			}
		}
	}
}
