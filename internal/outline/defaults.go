package outline

// Title is the display title of the outline card.
const Title = "Outline"

// DefaultText is the built-in outline, written in card dialect. Sessions start
// with it and fall back to it whenever a stored outline cannot be repaired.
const DefaultText = `Overview
> Tags: Up to ten important content tags, separated by commas
> Genre: Two or three major categories that best describe the story
> Synopsis: (D+50)Outline the plot of the story. Address important characters by name.
> Protagonist: The proper name of the protagonist. No parentheticals.
> Supporting Characters: List up to three characters mentioned in the synopsis. Names only, separated by commas. No parentheticals. If there aren't any obvious supporting characters, put 'N/A' here.

Character Template
> Name: ...
> Gender: ...
> Appearance: (D+20)...
> Personality: (D-10)...
> Voice Pattern: (D-20)Direct description without metaphor, analogy, or examples.

World Info
> World: A specific name. 'Earth', if it fits. Otherwise, pick a proper name.
> Region: (D-20)A specific name, followed by a description. If the world is 'Earth', pick a real place. Otherwise, pick a proper name.
> Location: (D-10)...
> Time Period: A specific year or period. 'Modern Day', if it fits. Otherwise, pick a year or name.

Timeline
> Background Events: (D+20)...
> Opening Circumstances: (D)...

Style Guide
> Writing Style: (D-10)...
> Tone: (D-20)...
> Themes: (D-20)...
> Perspective: Default to 'Second-person'
> Tense: Default to 'Present'

AI Instructions
> Special Instructions: (D)Write a set of additional instructions for the AI that will write this story. Assume the AI already has basic directives for quality writing; these are specific instructions for writing this story well.
> Word Bans: A short list of words overused by AI, like 'ozone'
> Trope Bans: Start each with 'no'`

// Notes explains the outline format to whoever edits the card.
const Notes = `Overview
The generator follows this outline as a template, producing each section and
field in order and using each field's text as instructions for its entry.

Structure
    Section
    Field: Instructions

Sections are title-cased, contain no colons and are separated by a blank line.
Fields end with a colon; everything after it is the instruction.

Character Template
The Character Template section is expanded into a Protagonist section and one
section per supporting character named in the Overview. Keep its name.

Special Instructions
"..." gives no instructions beyond the target length.
"(D)" at the start asks for a description of the configured base size.
"(D+20)" or "(D-10)" adjusts that size for one field.

Editing sections above the current position does not make the generator go
back and fill them in.`
