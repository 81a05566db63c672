package domain

type UnitStatus string

const (
	UnitLocked    UnitStatus = "locked"
	UnitAvailable UnitStatus = "available"
	UnitCurrent   UnitStatus = "current"
	UnitCompleted UnitStatus = "completed"
)

type UnitState struct {
	SequenceNumber int
	GroupID        string
	Title          string
	Status         UnitStatus
}

// StatusOf derives a unit's status from the enrollment position and the ledger.
// Only one unit past the current position is ever reachable.
func StatusOf(seq, currentPosition int, completed bool) UnitStatus {
	switch {
	case completed:
		return UnitCompleted
	case seq == currentPosition:
		return UnitCurrent
	case seq > currentPosition+1:
		return UnitLocked
	default:
		return UnitAvailable
	}
}

func ComputeUnitStates(units []Unit, currentPosition int, completed map[int]bool) []UnitState {
	states := make([]UnitState, 0, len(units))
	for _, u := range units {
		states = append(states, UnitState{
			SequenceNumber: u.SequenceNumber,
			GroupID:        u.GroupID,
			Title:          u.Title,
			Status:         StatusOf(u.SequenceNumber, currentPosition, completed[u.SequenceNumber]),
		})
	}
	return states
}

// CompletedSet indexes records by sequence number.
func CompletedSet(records []CompletionRecord) map[int]bool {
	set := make(map[int]bool, len(records))
	for _, r := range records {
		set[r.SequenceNumber] = true
	}
	return set
}
