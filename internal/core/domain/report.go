package domain

// FileResult is the outcome of scanning one file.
type FileResult struct {
	FileStats `yaml:",inline"`
	Status    VertexStatus `json:"status" yaml:"status"`
}

// Report aggregates the results of a scan in input order.
type Report struct {
	Files  []FileResult `json:"files" yaml:"files"`
	Totals FileStats    `json:"totals" yaml:"totals"`
}

// Add appends a file result and folds its counters into the totals.
// Unique is summed per file; tokens shared between files are counted once per file.
func (r *Report) Add(res FileResult) {
	r.Files = append(r.Files, res)
	r.Totals.merge(&res.FileStats)
}
