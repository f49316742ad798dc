package search

import (
	"strings"
	"sync"
	"unicode"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"
)

// bleveEngine guards idx with a RWMutex: Index and Search run on command
// goroutines while Reset swaps the index from the update loop.
type bleveEngine struct {
	mu  sync.RWMutex
	idx bleve.Index
}

// NewMemEngine creates an in-memory finder index. The index lives for one
// session only; results are fed in as they arrive and dropped on reset.
func NewMemEngine() (Searcher, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}
	return &bleveEngine{idx: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	dm := bleve.NewDocumentMapping()

	title := bleve.NewTextFieldMapping()
	title.Analyzer = standard.Name
	title.Store = true
	title.IncludeTermVectors = true
	title.DocValues = true

	snippet := bleve.NewTextFieldMapping()
	snippet.Analyzer = standard.Name
	snippet.Store = true
	snippet.IncludeTermVectors = false

	source := bleve.NewTextFieldMapping()
	source.Analyzer = standard.Name
	source.Store = true

	kind := bleve.NewTextFieldMapping()
	kind.Analyzer = standard.Name
	kind.Store = true

	dm.AddFieldMappingsAt("title", title)
	dm.AddFieldMappingsAt("snippet", snippet)
	dm.AddFieldMappingsAt("source", source)
	dm.AddFieldMappingsAt("kind", kind)

	im.DefaultMapping = dm
	return im
}

func (b *bleveEngine) Index(docs []Document) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	batch := b.idx.NewBatch()
	for _, d := range docs {
		if d.ID == "" {
			continue
		}
		_ = batch.Index(docID(d.Kind, d.ID), map[string]any{
			"kind":    string(d.Kind),
			"title":   d.Title,
			"snippet": d.Snippet,
			"source":  d.Source,
		})
	}
	return b.idx.Batch(batch)
}

func (b *bleveEngine) Search(query string, limit int) ([]*Result, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return []*Result{}, nil
	}
	tokens := tokenize(query)
	var qs []bleveQuery.Query
	for _, tok := range tokens {
		qt := bleve.NewMatchQuery(tok)
		qt.SetField("title")
		qt.SetBoost(4.0)
		qs = append(qs, qt)
		qtp := bleve.NewPrefixQuery(strings.ToLower(tok))
		qtp.SetField("title")
		qtp.SetBoost(3.5)
		qs = append(qs, qtp)
		qd := bleve.NewMatchQuery(tok)
		qd.SetField("snippet")
		qd.SetBoost(2.0)
		qs = append(qs, qd)
		qdp := bleve.NewPrefixQuery(strings.ToLower(tok))
		qdp.SetField("snippet")
		qdp.SetBoost(1.8)
		qs = append(qs, qdp)
		qsrc := bleve.NewMatchQuery(tok)
		qsrc.SetField("source")
		qsrc.SetBoost(1.0)
		qs = append(qs, qsrc)
	}
	if len(qs) == 0 {
		return []*Result{}, nil
	}
	q := bleve.NewDisjunctionQuery(qs...)
	srch := bleve.NewSearchRequestOptions(q, limit, 0, false)
	srch.Fields = []string{"kind", "title", "snippet", "source"}
	b.mu.RLock()
	defer b.mu.RUnlock()
	res, err := b.idx.Search(srch)
	if err != nil {
		return nil, err
	}
	out := make([]*Result, 0, len(res.Hits))
	for _, h := range res.Hits {
		kind, id := splitDocID(h.ID)
		r := &Result{Kind: kind, ID: id, Score: h.Score}
		if t, ok := h.Fields["title"].(string); ok {
			r.Title = t
		}
		if s, ok := h.Fields["snippet"].(string); ok {
			r.Snippet = s
		}
		if s, ok := h.Fields["source"].(string); ok {
			r.Source = s
		}
		out = append(out, r)
	}
	return out, nil
}

// Reset swaps in a fresh empty index. The old index is closed only after
// every in-flight Index or Search against it has drained.
func (b *bleveEngine) Reset() error {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return err
	}
	b.mu.Lock()
	old := b.idx
	b.idx = idx
	b.mu.Unlock()
	return old.Close()
}

func (b *bleveEngine) DocCount() (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n, err := b.idx.DocCount()
	return int(n), err
}

func docID(kind Kind, id string) string {
	return string(kind) + ":" + id
}

func splitDocID(id string) (Kind, string) {
	if i := strings.Index(id, ":"); i >= 0 {
		return Kind(id[:i]), id[i+1:]
	}
	return "", id
}

func tokenize(text string) []string {
	var terms []string
	current := strings.Builder{}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			if term := current.String(); len(term) > 1 {
				terms = append(terms, term)
			}
			current.Reset()
		}
	}

	if current.Len() > 1 {
		terms = append(terms, current.String())
	}

	return terms
}
