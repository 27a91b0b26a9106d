package prompt

import (
	"math/rand/v2"
	"strings"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/alexanderramin/scenariogen/internal/heading"
	"github.com/alexanderramin/scenariogen/internal/outline"
	"github.com/alexanderramin/scenariogen/internal/position"
	"github.com/alexanderramin/scenariogen/internal/settings"
)

const priorityHeader = "# Priority Instructions\n## Do not output \"(word count target:...)\""

// Request is everything Build needs for one turn.
type Request struct {
	// Lines is the transcript as returned by textformat.Lines.
	Lines []string
	// Outline is the repaired, character-expanded outline.
	Outline *domain.Document
	// Transcript is Lines parsed into a Document.
	Transcript *domain.Document
	Settings   settings.Settings
	// Rand drives seed selection; nil uses the global source.
	Rand *rand.Rand
}

// Result is the hidden block plus the turn state it implies.
type Result struct {
	Prompt string
	// Section is the section the cursor ends on; the block is inserted after
	// its heading.
	Section string
	Cursor  position.Cursor
	// Continuation is true when the next output continues an open field.
	Continuation bool
	// PendingHeader names a section whose heading the next output must open
	// with. Empty when none is due.
	PendingHeader string
	Seeds         []string
}

// Build produces the hidden instruction block for the transcript's current
// position in the outline.
func Build(req Request) Result {
	cur := position.Locate(req.Outline, req.Transcript)
	res := Result{Section: cur.Section, Cursor: cur}
	base := req.Settings.General.DescriptionSize

	if req.Settings.Seeds.AddRandomSeedWords {
		res.Seeds = SelectSeedWords(SeedPool(req.Settings.Seeds), req.Settings.Seeds.SeedWordCount, req.Rand)
	}

	priority := priorityHeader
	var cont string
	if last := lastLine(req.Lines); last != "" && cur.HasField() {
		raw, _ := req.Outline.Value(cur.Section, cur.Field)
		in := ParseInstruction(raw)
		name := heading.ToDisplay(cur.Field)
		if strings.HasSuffix(last, ":") {
			priority += "\n## Begin by writing the entry for " + name + "." +
				"\n## Do not include the field name." +
				"\n## Do not output \"" + name + ":\""
			if in.Text == outline.Placeholder {
				cont = "${entry for " + name + in.targetText(base, "") + "}\n"
			}
		} else {
			priority += "\n## Continue the entry for " + name + " exactly where it leaves off." +
				"\n## Always resume mid-sentence if the input left off mid-sentence." +
				"\n## Do not output the field name; do not output \"" + name + ":\""
			if in.Text == outline.Placeholder {
				cont = "${Continue the entry for " + name + ", starting exactly where it leaves off." + in.targetText(base, cur.Entry) + "}\n"
			} else {
				cont = "${Continue the entry for " + name + ", starting exactly where it leaves off, with the following instructions: " + in.Text + in.targetText(base, cur.Entry) + "}\n"
			}
		}
		res.Continuation = true
	}

	var template []string
	section, sectionIndex, fieldIndex := cur.Section, cur.SectionIndex, cur.FieldIndex
	if cur.Remaining == 0 {
		section, sectionIndex, fieldIndex = advance(req.Outline, section, sectionIndex, fieldIndex, &template)
		res.Section = section
		if !res.Continuation {
			res.PendingHeader = section
		}
	}
	template = appendFields(template, req.Outline, section, fieldIndex, base)

	if cur.Remaining > 0 && cur.Remaining <= 2 && section != outline.OverviewSection && sectionIndex < req.Outline.Len()-1 {
		section, _, fieldIndex = advance(req.Outline, section, sectionIndex, fieldIndex, &template)
		template = appendFields(template, req.Outline, section, fieldIndex, base)
	}

	res.Prompt = seedBlock(res.Seeds) + priority +
		"\n{\n\"output_template\": `\n" + cont + strings.Join(template, "\n") + "\n`\n}"
	return res
}

// advance moves to the section after sectionIndex and writes its heading to
// the template. At the last section nothing changes.
func advance(doc *domain.Document, section string, sectionIndex, fieldIndex int, template *[]string) (string, int, int) {
	keys := doc.Keys()
	if sectionIndex+1 >= len(keys) {
		return section, sectionIndex, fieldIndex
	}
	sectionIndex++
	section = keys[sectionIndex]
	*template = append(*template, "", heading.ToDisplay(section))
	return section, sectionIndex, -1
}

// appendFields adds a placeholder for every field of section after fieldIndex.
func appendFields(template []string, doc *domain.Document, section string, fieldIndex, base int) []string {
	fields, ok := doc.Section(section)
	if !ok {
		return template
	}
	keys := fields.Keys()
	for i := fieldIndex + 1; i < len(keys); i++ {
		raw, _ := fields.Get(keys[i])
		in := ParseInstruction(raw)
		template = append(template, heading.ToDisplay(keys[i])+": ${"+in.Text+in.targetText(base, "")+"}")
	}
	return template
}

func lastLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}
