package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/comicrev/internal/roundup"
)

const vaultURL = "https://comicbookroundup.com/comic-books/reviews/vault-comics/all-series"

const twoRowListing = `<html><body><div class="section"><table>
<tr><td class="series"><a href="/x">A</a></td></tr>
<tr><td class="series"><a href="/y">B</a></td></tr>
</table></div></body></html>`

const brokenListing = `<html><body><div class="section"><table>
<tr><td class="series"><a>A</a></td></tr>
</table></div></body></html>`

type pageFetcher struct {
	pages map[string]string
	err   error
	calls int
}

func (f *pageFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	page, ok := f.pages[url]
	if !ok {
		return "", errors.New("connection refused")
	}
	return page, nil
}

type fakeEngine struct {
	details func(context.Context, string) (roundup.ComicInfo, error)
	issues  func(context.Context, string) (roundup.ComicIssues, error)
}

func (f fakeEngine) Details(ctx context.Context, url string) (roundup.ComicInfo, error) {
	return f.details(ctx, url)
}

func (f fakeEngine) Issues(ctx context.Context, url string) (roundup.ComicIssues, error) {
	return f.issues(ctx, url)
}

func (fakeEngine) Comics(context.Context, string) (roundup.PublisherComics, error) {
	return roundup.PublisherComics{}, nil
}

func (fakeEngine) Publishers() []roundup.Publisher { return nil }

func newTestServer(t *testing.T, f *pageFetcher) (*Server, *pageFetcher) {
	t.Helper()
	eng, err := roundup.NewEngine(f, roundup.Options{})
	require.NoError(t, err)
	return New(eng, Options{RequestTimeout: time.Second}), f
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestIndex(t *testing.T) {
	s, _ := newTestServer(t, &pageFetcher{})
	rec := do(t, s.Handler(), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello world!", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(headerRequestID))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s, _ := newTestServer(t, &pageFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(headerRequestID, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(headerRequestID))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestComics_Vault(t *testing.T) {
	s, f := newTestServer(t, &pageFetcher{pages: map[string]string{vaultURL: twoRowListing}})
	rec := do(t, s.Handler(), http.MethodPost, "/comics", `{"name":"vault"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"comics":[
		{"name":"A","url":"https://comicbookroundup.com/x"},
		{"name":"B","url":"https://comicbookroundup.com/y"}
	]}`, rec.Body.String())
	assert.Equal(t, 1, f.calls)
}

func TestComics_UnknownPublisher(t *testing.T) {
	s, f := newTestServer(t, &pageFetcher{})
	rec := do(t, s.Handler(), http.MethodPost, "/comics", `{"name":"Vault"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, roundup.KindPublisherNotFound, decodeError(t, rec).Code)
	assert.Zero(t, f.calls)
}

func TestDetails_EmptyDocument(t *testing.T) {
	s, _ := newTestServer(t, &pageFetcher{pages: map[string]string{"https://x.test/i": "<html></html>"}})
	rec := do(t, s.Handler(), http.MethodPost, "/details", `{"url":"https://x.test/i"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestIssues(t *testing.T) {
	page := `<html><body><div class="section"><table>
<tr><td class="issue"><a href="/s/1">#1</a></td></tr>
<tr><td class="issue"><a href="/s/2">#2</a></td></tr>
</table></div></body></html>`
	s, _ := newTestServer(t, &pageFetcher{pages: map[string]string{"https://x.test/s": page}})
	rec := do(t, s.Handler(), http.MethodPost, "/issues", `{"url":"https://x.test/s"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"urls":["https://comicbookroundup.com/s/1","https://comicbookroundup.com/s/2"]}`, rec.Body.String())
}

func TestMalformedRequests(t *testing.T) {
	s, f := newTestServer(t, &pageFetcher{})

	cases := []struct {
		name, path, body string
	}{
		{"empty body", "/details", ""},
		{"not json", "/details", "url=x"},
		{"missing field", "/issues", `{}`},
		{"blank field", "/comics", `{"name":"  "}`},
		{"wrong type", "/comics", `{"name":7}`},
		{"two objects", "/details", `{"url":"a"}{"url":"b"}`},
		{"too large", "/details", `{"url":"` + strings.Repeat("a", maxBodyBytes) + `"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, s.Handler(), http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, roundup.KindMalformedRequest, decodeError(t, rec).Code)
		})
	}
	assert.Zero(t, f.calls)
}

func TestUpstreamFailuresAreBadGateway(t *testing.T) {
	s, _ := newTestServer(t, &pageFetcher{err: errors.New("dial tcp: refused")})
	rec := do(t, s.Handler(), http.MethodPost, "/details", `{"url":"https://x.test/i"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, roundup.KindNetwork, decodeError(t, rec).Code)

	s, _ = newTestServer(t, &pageFetcher{pages: map[string]string{vaultURL: brokenListing}})
	rec = do(t, s.Handler(), http.MethodPost, "/comics", `{"name":"vault"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, roundup.KindStructureMissing, decodeError(t, rec).Code)
}

func TestUnclassifiedErrorIsInternal(t *testing.T) {
	s := New(fakeEngine{issues: func(context.Context, string) (roundup.ComicIssues, error) {
		return roundup.ComicIssues{}, errors.New("something odd")
	}}, Options{})
	rec := do(t, s.Handler(), http.MethodPost, "/issues", `{"url":"https://x.test/s"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, roundup.KindInternal, body.Code)
	assert.NotContains(t, body.Error, "something odd")
}

func TestPanicIsRecovered(t *testing.T) {
	s := New(fakeEngine{details: func(context.Context, string) (roundup.ComicInfo, error) {
		panic("selector exploded")
	}}, Options{})
	rec := do(t, s.Handler(), http.MethodPost, "/details", `{"url":"https://x.test/i"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, roundup.KindInternal, decodeError(t, rec).Code)
}

func TestPublishers(t *testing.T) {
	s, _ := newTestServer(t, &pageFetcher{})
	rec := do(t, s.Handler(), http.MethodGet, "/publishers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body publishersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Publishers, roundup.DefaultRegistry().Len())
}

func TestRoutingErrors(t *testing.T) {
	s, _ := newTestServer(t, &pageFetcher{})

	rec := do(t, s.Handler(), http.MethodGet, "/details", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(t, s.Handler(), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServe_StopsOnCancel(t *testing.T) {
	s, _ := newTestServer(t, &pageFetcher{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
