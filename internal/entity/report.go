package entity

// Row outcome statuses reported back after a grid save.
const (
	RowUpdated   = "Updated"
	RowUnchanged = "Unchanged"
	RowFailed    = "Failed"
	RowDeleted   = "Deleted"
	RowIgnored   = "Ignored" // present in the edited grid but not in the baseline
)

type RowOutcome struct {
	Id     string   `json:"id"`
	Status string   `json:"status"`
	Fields []string `json:"fields,omitempty"`
	Reason string   `json:"reason,omitempty"`
}

// GridSaveReport is the per-row outcome of one reconciliation batch.
// Row-scoped failures live here; they never abort the batch.
type GridSaveReport struct {
	Kind      string       `json:"kind"`
	Updated   int          `json:"updated"`
	Unchanged int          `json:"unchanged"`
	Failed    int          `json:"failed"`
	Deleted   int          `json:"deleted"`
	Rows      []RowOutcome `json:"rows"`
}

// CascadeReport describes a best-effort cascade deletion. RootDeleted is
// the overall success flag; dependent failures are surfaced in Failures
// without having blocked the remaining deletions.
type CascadeReport struct {
	Kind        string         `json:"kind"`
	Id          string         `json:"id"`
	RootDeleted bool           `json:"rootDeleted"`
	Deleted     map[string]int `json:"deleted"`
	Failures    []string       `json:"failures,omitempty"`
}
