// Package answer reconciles model output against retrieved context.
// A model's citations are claims; only chunks that actually came back
// from retrieval may be referenced, and their metadata always comes
// from the retrieval side.
package answer

import (
	"fmt"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// Ground verifies a model answer against the retrieved chunks and
// returns an answer whose every reference provably exists in them.
//
// Citations the model invented are dropped. If none survive, the top
// retrieved chunks are cited instead so the answer is never presented
// as sourceless while sources exist. Duplicate citations collapse to
// the first occurrence.
func Ground(model *domain.ModelAnswer, chunks []domain.RetrievedChunk) (*domain.GroundedAnswer, error) {
	if model == nil {
		return nil, fmt.Errorf("nil model answer")
	}

	byID := make(map[string]domain.RetrievedChunk, len(chunks))
	for _, chunk := range chunks {
		byID[chunk.ChunkID] = chunk
	}

	refs := make([]domain.Reference, 0, len(model.Citations))
	seen := make(map[string]struct{}, len(model.Citations))
	for _, cit := range model.Citations {
		chunk, ok := byID[cit.ChunkID]
		if !ok {
			continue
		}
		if _, dup := seen[cit.ChunkID]; dup {
			continue
		}
		seen[cit.ChunkID] = struct{}{}
		refs = append(refs, referenceFor(chunk))
		if len(refs) == domain.MaxAnswerCitations {
			break
		}
	}

	// Nothing verifiable: fall back to the top-ranked chunks.
	if len(refs) == 0 {
		n := min(domain.FallbackCitations, len(chunks))
		for _, chunk := range chunks[:n] {
			refs = append(refs, referenceFor(chunk))
		}
	}

	grounded := &domain.GroundedAnswer{
		Text:       model.Text,
		References: refs,
	}
	if err := grounded.Validate(); err != nil {
		return nil, err
	}

	return grounded, nil
}

// referenceFor builds a reference from the retrieved chunk, never from
// the model's claim about it.
func referenceFor(chunk domain.RetrievedChunk) domain.Reference {
	return domain.Reference{
		ChunkID:    chunk.ChunkID,
		SourceType: chunk.SourceType,
		SourceID:   chunk.SourceID,
		Excerpt:    chunk.Excerpt,
	}
}
