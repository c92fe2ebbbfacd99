package model

type ParseRequestBody struct {
	Lines []string `json:"lines"`
}

type ParsedLine struct {
	LineNum   int    `json:"line_num"`
	Kind      string `json:"kind"`
	Canonical string `json:"canonical,omitempty"`
	Error     string `json:"error,omitempty"`
}

type ParseResponse struct {
	NumLines     int          `json:"num_lines"`
	NumUnmatched int          `json:"num_unmatched"`
	Lines        []ParsedLine `json:"lines"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
