package core

// Recorder is a Reporter that keeps results in memory for tests.
type Recorder struct {
	Results []Result
}

func (r *Recorder) Report(res Result) {
	r.Results = append(r.Results, res)
}
