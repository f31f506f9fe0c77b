package models

// MutationResult is the uniform outcome of every admin mutation. Nothing
// in the action layer throws across the caller boundary; failures travel
// in Error.
type MutationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	ID      string `json:"id,omitempty"`
}

// ExportResult carries the CSV export blob and its suggested filename
type ExportResult struct {
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	CSV      string `json:"csv,omitempty"`
	Filename string `json:"filename,omitempty"`
}

func OK() MutationResult {
	return MutationResult{Success: true}
}

func OKWithID(id string) MutationResult {
	return MutationResult{Success: true, ID: id}
}

func Fail(msg string) MutationResult {
	return MutationResult{Success: false, Error: msg}
}
