// Package action handles what happens after a command has been
// proposed: asking the user for a decision and carrying it out.
package action

// Decision is what the user chose to do with a proposed command.
type Decision int

const (
	// Cancel is the default for anything unrecognized. Cancelling is
	// always safe, so it must never require a specific keypress.
	Cancel Decision = iota
	Run
	Copy
)

func (d Decision) String() string {
	switch d {
	case Run:
		return "run"
	case Copy:
		return "copy"
	default:
		return "cancel"
	}
}

// ParseDecision maps one line of user input to a Decision. Only the
// first character counts; r runs, c copies, everything else cancels.
func ParseDecision(input string) Decision {
	for _, r := range input {
		switch r {
		case 'r', 'R':
			return Run
		case 'c', 'C':
			return Copy
		default:
			return Cancel
		}
	}
	return Cancel
}
