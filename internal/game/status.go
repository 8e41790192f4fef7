package game

// Status is the outcome shown to the player after every state change.
type Status int

const (
	// StatusReady means the side to move may enter a move.
	StatusReady Status = iota
	// StatusThinking means a move was accepted and the opponent is to move.
	StatusThinking
	// StatusInCheck means the move was rejected for leaving the mover's
	// king attacked.
	StatusInCheck
	// StatusInvalid means the requested move is not in the move list.
	StatusInvalid
)

var statusMessages = [...]string{
	StatusReady:    "Your turn...",
	StatusThinking: "Thinking...",
	StatusInCheck:  "You're in check",
	StatusInvalid:  "Invalid move",
}

// String returns the status message.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusMessages) {
		return statusMessages[s]
	}
	return "Unknown status"
}

// Accepted reports whether the status follows a committed move.
func (s Status) Accepted() bool {
	return s == StatusThinking
}
