package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/Skotchmaster/rockstar_shop/internal/logging"
	"github.com/elastic/go-elasticsearch/v9"
)

var ErrSearch = errors.New("search failed")

// ESSearcher indexes one document per product and language and runs
// multi_match queries restricted to the caller's language.
type ESSearcher struct {
	Client *elasticsearch.Client
	Index  string
}

type esDoc struct {
	Lang string `json:"lang"`
	Product
}

const indexMapping = `{
  "mappings": {
    "properties": {
      "lang":     {"type": "keyword"},
      "id":       {"type": "integer"},
      "title":    {"type": "text"},
      "features": {"type": "text"},
      "price":    {"type": "keyword"},
      "duration": {"type": "keyword"}
    }
  }
}`

// Bootstrap creates the index when missing and (re)indexes the catalog.
func (s *ESSearcher) Bootstrap(ctx context.Context) error {
	l := logging.FromContext(ctx).With("component", "catalog_search", "index", s.Index)

	res, err := s.Client.Indices.Exists([]string{s.Index}, s.Client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: index exists: %v", ErrSearch, err)
	}
	res.Body.Close()

	if res.StatusCode == 404 {
		res, err = s.Client.Indices.Create(s.Index,
			s.Client.Indices.Create.WithContext(ctx),
			s.Client.Indices.Create.WithBody(bytes.NewReader([]byte(indexMapping))),
		)
		if err != nil {
			return fmt.Errorf("%w: create index: %v", ErrSearch, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("%w: create index: %s", ErrSearch, res.Status())
		}
		l.Info("index_created")
	}

	for _, lang := range i18n.Languages() {
		for _, p := range Products(lang) {
			var buf bytes.Buffer
			if err := json.NewEncoder(&buf).Encode(esDoc{Lang: string(lang), Product: p}); err != nil {
				return fmt.Errorf("%w: encode: %v", ErrSearch, err)
			}
			id := string(lang) + "-" + strconv.Itoa(p.ID)
			res, err := s.Client.Index(s.Index, &buf,
				s.Client.Index.WithContext(ctx),
				s.Client.Index.WithDocumentID(id),
				s.Client.Index.WithRefresh("true"),
			)
			if err != nil {
				return fmt.Errorf("%w: index %s: %v", ErrSearch, id, err)
			}
			res.Body.Close()
			if res.IsError() {
				return fmt.Errorf("%w: index %s: %s", ErrSearch, id, res.Status())
			}
		}
	}
	l.Info("catalog_indexed", "products", len(entries))
	return nil
}

func (s *ESSearcher) Search(ctx context.Context, lang i18n.Language, query string, from, size int) (int64, []Product, error) {
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"title^2", "features"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"lang": string(lang)},
				},
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("%w: encode: %v", ErrSearch, err)
	}

	res, err := s.Client.Search(
		s.Client.Search.WithContext(ctx),
		s.Client.Search.WithIndex(s.Index),
		s.Client.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrSearch, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("%w: %s", ErrSearch, res.Status())
	}

	var r struct {
		Hits struct {
			Total struct{ Value int64 } `json:"total"`
			Hits  []struct {
				Source esDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("%w: decode: %v", ErrSearch, err)
	}

	prods := make([]Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		prods[i] = hit.Source.Product
	}
	return r.Hits.Total.Value, prods, nil
}
