// Package prompt builds the hidden instruction block that steers the next
// generation toward the outline's next fields.
package prompt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinWordTarget is the smallest word count a description target asks for.
const MinWordTarget = 10

var modifierPattern = regexp.MustCompile(`^\(D([+-])?(\d+)?\)(.*)`)

// Instruction is an outline field value with its description modifier split off.
type Instruction struct {
	Text string
	// HasModifier is true when the instruction started with a (D), (D+n) or
	// (D-n) marker.
	HasModifier bool
	Modifier    int
}

// ParseInstruction splits a leading description modifier from raw. A marker
// without digits yields a modifier of zero.
func ParseInstruction(raw string) Instruction {
	raw = strings.TrimSpace(raw)
	m := modifierPattern.FindStringSubmatch(raw)
	if m == nil {
		return Instruction{Text: raw}
	}
	in := Instruction{Text: m[3], HasModifier: true}
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err == nil {
			in.Modifier = n
		}
		if m[1] == "-" {
			in.Modifier = -in.Modifier
		}
	}
	return in
}

// WordTarget is the description length to ask for: base plus the modifier,
// minus words already written, never below MinWordTarget.
func (in Instruction) WordTarget(base, written int) int {
	return max(base+in.Modifier-written, MinWordTarget)
}

// targetText renders the word count hint, or nothing when the instruction
// carries no modifier.
func (in Instruction) targetText(base int, entry string) string {
	if !in.HasModifier {
		return ""
	}
	return fmt.Sprintf("(word count target: %d)", in.WordTarget(base, len(strings.Fields(entry))))
}
