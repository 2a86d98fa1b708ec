package resume

// ParseTextRequest is the body of a paste-text parse call.
type ParseTextRequest struct {
	Text string `json:"text"`
}

// BatchEntry is the per-file outcome of a batch run. Exactly one of
// Data and Error is populated, according to Success.
type BatchEntry struct {
	Filename string  `json:"filename"`
	Success  bool    `json:"success"`
	Data     *Record `json:"data,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// BatchResult is the ordered sequence of per-file outcomes of one batch
// run, built incrementally and written once at the end.
type BatchResult []BatchEntry

// Succeeded counts entries that parsed successfully.
func (br BatchResult) Succeeded() int {
	n := 0
	for _, e := range br {
		if e.Success {
			n++
		}
	}
	return n
}

// Failed counts entries that did not parse.
func (br BatchResult) Failed() int {
	return len(br) - br.Succeeded()
}
