package models

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text       string `json:"text"`
	Model      string `json:"model"`
	Language   string `json:"language"`
	RenderHTML bool   `json:"render_html"`
}

// TranslationResult is returned once per request and never stored.
type TranslationResult struct {
	Response        bool   `json:"response"`
	Translation     string `json:"translation"`
	TranslationHTML string `json:"translation_html,omitempty"`
	Timestamp       string `json:"timestamp"`
	ChunkMode       bool   `json:"chunk_mode"`
	Filename        string `json:"filename,omitempty"`
}

type ModelListResponse struct {
	Response bool     `json:"response"`
	Models   []string `json:"models"`
}

type FailureResponse struct {
	Response bool   `json:"response"`
	Message  string `json:"message"`
}
