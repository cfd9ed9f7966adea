// Package kb keeps growing notes (pruning guides, pest calendars, variety
// tips) that get fed as context into AI diagnosis. Documents persist through
// the record store like everything else.
package kb

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"kaju/entities"
	"kaju/pkg/record"
)

type Service struct {
	stores *record.Stores
}

func New(stores *record.Stores) *Service { return &Service{stores: stores} }

func (s *Service) Upsert(title, tags, text, sourceURL string) (entities.KBDocument, error) {
	if strings.TrimSpace(title) == "" {
		return entities.KBDocument{}, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(text) == "" {
		return entities.KBDocument{}, fmt.Errorf("text is required")
	}
	d := entities.KBDocument{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		Tags:      strings.TrimSpace(tags),
		Text:      text,
		SourceURL: sourceURL,
		CreatedAt: time.Now(),
	}
	return d, s.stores.KBDocuments.Save(d)
}

// Search is a naive keyword ranking: one point per query term found in the
// title/tags/text, title hits weighted double. Good enough for the handful
// of notes a single orchard keeps.
func (s *Service) Search(query string, k int) []entities.KBDocument {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil
	}
	terms := strings.Fields(strings.ToLower(q))

	type scored struct {
		doc entities.KBDocument
		sc  int
	}
	var hits []scored
	for _, d := range s.stores.KBDocuments.GetAll() {
		title := strings.ToLower(d.Title + " " + d.Tags)
		body := strings.ToLower(d.Text)
		sc := 0
		for _, t := range terms {
			if strings.Contains(title, t) {
				sc += 2
			}
			if strings.Contains(body, t) {
				sc++
			}
		}
		if sc > 0 {
			hits = append(hits, scored{doc: d, sc: sc})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].sc > hits[j].sc })

	if k > len(hits) {
		k = len(hits)
	}
	out := make([]entities.KBDocument, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, hits[i].doc)
	}
	return out
}

// Context joins the top matches into a prompt-sized snippet block.
func (s *Service) Context(query string, k, maxLen int) string {
	var b strings.Builder
	for _, d := range s.Search(query, k) {
		if b.Len() > maxLen {
			break
		}
		b.WriteString("\n---\n")
		b.WriteString(d.Title)
		b.WriteString("\n")
		b.WriteString(d.Text)
	}
	return b.String()
}
