package constants

// FileStatus is the canonical lifecycle state for rows in file_uploads.
type FileStatus string

// Stable values (store these exact strings in DB).
const (
	FileProcessing FileStatus = "processing" // refinement in flight
	FileCompleted  FileStatus = "completed"  // terminal success
	FileFailed     FileStatus = "failed"     // terminal failure
)

// CanTransition reports whether moving from s to next is a legal lifecycle
// step. The only legal moves are processing -> completed and
// processing -> failed; terminal states never move again.
func (s FileStatus) CanTransition(next FileStatus) bool {
	if s != FileProcessing {
		return false
	}
	return next == FileCompleted || next == FileFailed
}

// Terminal reports whether s is a terminal state.
func (s FileStatus) Terminal() bool {
	return s == FileCompleted || s == FileFailed
}

// BillStatus is the lifecycle state for extracted bill rows.
type BillStatus string

const (
	BillPending  BillStatus = "pending"
	BillActive   BillStatus = "active"
	BillModified BillStatus = "modified"
	BillPayed    BillStatus = "payed"
)

// CallKind distinguishes the two completion passes made per file.
type CallKind string

const (
	CallRefine  CallKind = "refine"  // raw text -> curated row list
	CallConvert CallKind = "convert" // curated rows -> structured JSON
)

// UsageStatus is the outcome recorded on a token usage row.
type UsageStatus string

const (
	UsageSuccess UsageStatus = "success"
	UsageFailed  UsageStatus = "failed"
)

// AccountStatus is the state of a user balance account.
type AccountStatus string

const (
	AccountActive AccountStatus = "active"
	AccountFrozen AccountStatus = "frozen"
)
