package entity

// Stage is one of the six ordered hiring phases a candidate passes through
// for a specific job requisition.
type Stage string

const (
	StageApplied            Stage = "Applied"
	StagePhoneScreen        Stage = "PhoneScreen"
	StageTechnicalInterview Stage = "TechnicalInterview"
	StageFinalInterview     Stage = "FinalInterview"
	StageOffer              Stage = "Offer"
	StageHired              Stage = "Hired"
)

// StageOrder is the total ordering of pipeline stages. Hired is terminal.
var StageOrder = []Stage{
	StageApplied,
	StagePhoneScreen,
	StageTechnicalInterview,
	StageFinalInterview,
	StageOffer,
	StageHired,
}

// ValidStage reports whether s is one of the six known stages.
func ValidStage(s Stage) bool {
	for _, stage := range StageOrder {
		if stage == s {
			return true
		}
	}
	return false
}

// Board is the per-job Kanban backing state: stage -> ordered candidate ids.
// Invariant: a candidate id appears in at most one stage's slice.
type Board map[Stage][]int

// NewBoard returns an empty board with every stage initialized.
func NewBoard() Board {
	b := make(Board, len(StageOrder))
	for _, stage := range StageOrder {
		b[stage] = []int{}
	}
	return b
}

// Clone returns a deep copy. Engine mutations operate on clones so callers
// never observe partially mutated shared state.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for stage, ids := range b {
		cp := make([]int, len(ids))
		copy(cp, ids)
		out[stage] = cp
	}
	return out
}
