package domain

// MaxAnswerCitations caps how many citations a grounded answer carries.
const MaxAnswerCitations = 10

// FallbackCitations is how many top-ranked chunks are cited when the
// model cited nothing verifiable.
const FallbackCitations = 3

// RetrievedChunk is one citable unit of source text produced by
// retrieval, in rank order (most relevant first).
type RetrievedChunk struct {
	ChunkID    string `json:"chunkId"`
	SourceType string `json:"sourceType"`
	SourceID   string `json:"sourceId"`
	Excerpt    string `json:"excerpt"`
}

// ModelCitation is the model's own claim of having used a chunk.
// Only ChunkID is trusted; the rest is reconciled against retrieval.
type ModelCitation struct {
	ChunkID    string `json:"chunkId"`
	SourceType string `json:"sourceType,omitempty"`
	SourceID   string `json:"sourceId,omitempty"`
	Excerpt    string `json:"excerpt,omitempty"`
}

// ModelAnswer is the raw model output before grounding.
type ModelAnswer struct {
	Text      string          `json:"answer"`
	Citations []ModelCitation `json:"citations"`
}

// Reference is a verified citation: its metadata comes from the
// retrieved chunk, never from the model.
type Reference struct {
	ChunkID    string `json:"chunkId"`
	SourceType string `json:"sourceType"`
	SourceID   string `json:"sourceId"`
	Excerpt    string `json:"excerpt"`
}

// GroundedAnswer is a model answer whose every reference verifiably
// exists in the retrieved context.
type GroundedAnswer struct {
	Text       string      `json:"answer"`
	References []Reference `json:"references"`
}

// Validate re-checks the answer shape before it reaches a caller.
func (a *GroundedAnswer) Validate() error {
	if a.Text == "" {
		return NewValidationError("answer", "required")
	}
	if len(a.References) > MaxAnswerCitations {
		return NewValidationError("references", "too many citations")
	}
	for _, ref := range a.References {
		if ref.ChunkID == "" {
			return NewValidationError("references", "citation without chunk id")
		}
	}
	return nil
}
