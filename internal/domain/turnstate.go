package domain

// TurnError is a recorded failure. Errors are collected during a turn rather
// than returned; only the first one is shown to the user.
type TurnError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e TurnError) Error() string {
	return e.Name + ": " + e.Message
}

// TurnState carries what one turn's phases need to share. It is reset when a
// turn starts and read by the output phase of the same turn.
type TurnState struct {
	Errors        []TurnError `json:"errors,omitempty"`
	Continuation  bool        `json:"continuation,omitempty"`
	PendingHeader string      `json:"pending_header,omitempty"`
	Seeds         []string    `json:"seeds,omitempty"`
	Complete      bool        `json:"complete,omitempty"`
	HelpRequested bool        `json:"help_requested,omitempty"`
}

// Reset clears the state at the start of a turn.
func (s *TurnState) Reset() {
	*s = TurnState{}
}

// Record appends an error to the turn's log.
func (s *TurnState) Record(name, message string) {
	s.Errors = append(s.Errors, TurnError{Name: name, Message: message})
}

// Failed reports whether any error was recorded this turn.
func (s *TurnState) Failed() bool {
	return len(s.Errors) > 0
}
