package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeES struct {
	mu      sync.Mutex
	created bool
	docs    map[string]string
	queries []map[string]any
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodHead && r.URL.Path == "/products":
		if !f.created {
			w.WriteHeader(http.StatusNotFound)
		}
	case r.Method == http.MethodPut && r.URL.Path == "/products":
		f.created = true
		_, _ = io.WriteString(w, `{"acknowledged":true}`)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/products/_doc/"):
		body, _ := io.ReadAll(r.Body)
		f.docs[strings.TrimPrefix(r.URL.Path, "/products/_doc/")] = string(body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	case strings.HasSuffix(r.URL.Path, "/_search"):
		var q map[string]any
		_ = json.NewDecoder(r.Body).Decode(&q)
		f.queries = append(f.queries, q)
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":5},"hits":[
			{"_source":{"lang":"en","id":2,"title":"Rockstar Recode","price":"600₽","duration":"Forever","features":["Recode edition"]}}
		]}}`)
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func newFakeSearcher(t *testing.T) (*ESSearcher, *fakeES) {
	t.Helper()
	fake := &fakeES{docs: make(map[string]string)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return &ESSearcher{Client: client, Index: "products"}, fake
}

func TestESSearcher_Bootstrap(t *testing.T) {
	t.Parallel()
	s, fake := newFakeSearcher(t)

	require.NoError(t, s.Bootstrap(context.Background()))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.True(t, fake.created)
	assert.Len(t, fake.docs, len(i18n.Languages())*3)
	assert.Contains(t, fake.docs["en-1"], `"Rockstar Beta"`)
	assert.Contains(t, fake.docs["ru-1"], `"lang":"ru"`)
}

func TestESSearcher_Search(t *testing.T) {
	t.Parallel()
	s, fake := newFakeSearcher(t)

	total, got, err := s.Search(context.Background(), i18n.EN, "recode", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, []string{"Recode edition"}, got[0].Features)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.queries, 1)
	filter := fake.queries[0]["query"].(map[string]any)["bool"].(map[string]any)["filter"]
	assert.Equal(t, map[string]any{"term": map[string]any{"lang": "en"}}, filter)
}
