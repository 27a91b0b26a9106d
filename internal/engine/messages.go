package engine

// AbortPrompt replaces the generation context when no generated text is
// wanted, keeping the skipped call short and cheap.
const AbortPrompt = "\n##Ignore all prior instructions. Do not generate text. Return only the following: \"OUTPUT ABORTED\""

// Error names recorded in the turn state.
const (
	ErrNameContextParsing  = "Context Parsing Error"
	ErrNameOutlineParsing  = "Outline Parsing Error"
	ErrNameInitialInput    = "Initial Input Error"
	ErrNameUncaughtContext = "Uncaught Context Error"
	ErrNameUncaughtOutput  = "Uncaught Output Error"
)

const formatHint = "make sure it conforms to the following pattern:\n//Section\n//Field Name: value\n//Field Name: value"

const (
	msgContextParsing  = "Something went wrong converting the context into a JSON object. If you've manually edited the context, " + formatHint
	msgOutlineParsing  = "Something went wrong converting the Outline card into a JSON object. If you've manually edited this card, " + formatHint
	msgInitialInput    = "Something went wrong with the opening text. This cannot be fixed; please start a new session."
	msgUncaughtContext = "An error occurred in the context and was not caught by a more specific error handler. Oops :("
	msgUncaughtOutput  = "An error occurred in the output and was not caught by a more specific error handler. Oops :("
)

// CompletionNotice follows the output that fills the last outline field.
const CompletionNotice = `
//The scenario prompt is complete. Feel free to edit it now.
//When you are done, continue one more time to generate a JSON object.
//The next output is the finished story bible; copy it into the scenario you want to play.
`

// HelpText is shown when the user asks for help. It is never added to the
// transcript.
const HelpText = `// Scenario Generator Help
//
// Normal operation
//   Start a session with a story request and optional tags, then keep
//   continuing. Each turn fills the next part of the outline. The character
//   template is used for the protagonist and every supporting character.
//   When the outline is complete the next turn produces a JSON story bible.
//
// Expected structure
//   Section
//   Field: Entry
//   Field: Entry
//
//   Sections are title cased, separated by a blank line, and never contain a
//   colon. Fields follow their section and end with a colon. Entries are the
//   rest of the line after the colon.
//
// Continuing partial entries
//   A line break is added after entries that look finished. Remove trailing
//   line breaks to have the next turn continue the current entry instead.
//
// Editing
//   Entries can be edited freely. Change sections and fields through the
//   outline card, not the transcript. Settings live in the Configure
//   Generator card.
`
