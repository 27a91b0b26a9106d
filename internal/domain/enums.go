package domain

// DocumentRole identifies which configuration document a card holds.
type DocumentRole string

const (
	RoleOutline  DocumentRole = "outline"
	RoleSettings DocumentRole = "settings"
)

// ValidDocumentRoles is the canonical set of accepted card roles.
var ValidDocumentRoles = map[DocumentRole]bool{
	RoleOutline:  true,
	RoleSettings: true,
}

// SessionStatus tracks whether a session is still filling its outline.
type SessionStatus string

const (
	SessionActive   SessionStatus = "active"
	SessionComplete SessionStatus = "complete"
)

// TurnKind distinguishes entries in a session's turn log.
type TurnKind string

const (
	TurnOpening  TurnKind = "opening"
	TurnInput    TurnKind = "input"
	TurnContinue TurnKind = "continue"
	TurnOutput   TurnKind = "output"
)
