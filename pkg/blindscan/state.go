package blindscan

// State is the scanner's position in the scan lifecycle.
type State int

const (
	StateIdle State = iota
	StateRequested
	StatePolling
	StateEnumerating
	StateCompleted
	StateAborted
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequested:
		return "requested"
	case StatePolling:
		return "polling"
	case StateEnumerating:
		return "enumerating"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateAborted || s == StateFailed
}
