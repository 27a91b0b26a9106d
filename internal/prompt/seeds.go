package prompt

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/alexanderramin/scenariogen/internal/settings"
)

// SeedPool returns the words seed selection draws from. When both lists are
// disabled the general list is used.
func SeedPool(s settings.Seeds) []string {
	var pool []string
	if s.UseSFWList {
		pool = append(pool, generalSeedWords...)
	}
	if s.UseNSFWList {
		pool = append(pool, matureSeedWords...)
	}
	if len(pool) == 0 {
		pool = append(pool, generalSeedWords...)
	}
	return dedupe(pool)
}

// SelectSeedWords draws count distinct words from pool. count is clamped to
// the settings bounds and to the pool size. rng may be nil.
func SelectSeedWords(pool []string, count int, rng *rand.Rand) []string {
	pool = dedupe(pool)
	count = min(settings.ClampSeedWordCount(count), len(pool))
	if count <= 0 {
		return nil
	}
	// Partial Fisher-Yates over a copy; the caller's slice is left alone.
	words := append([]string(nil), pool...)
	for i := range count {
		j := i + intN(rng, len(words)-i)
		words[i], words[j] = words[j], words[i]
	}
	return words[:count]
}

// FormatSeeds quotes and comma-joins seed words: "a", "b".
func FormatSeeds(seeds []string) string {
	quoted := make([]string, len(seeds))
	for i, s := range seeds {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, ", ")
}

func seedBlock(seeds []string) string {
	if len(seeds) == 0 {
		return ""
	}
	return "# Seed Words\n" +
		"## [" + FormatSeeds(seeds) + "]\n" +
		"## Seed words must strongly shape the output.\n" +
		"## Incorporate seeds conceptually and thematically. Pay attention to implication and meaning.\n" +
		"## Incorporate seed themes immediately, even if that means dramatically shifting the story to accommodate.\n" +
		"## NEVER use seed words directly. If 'apple' is a seed word, set the story in an orchard but do not output the word 'apple'.\n"
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
