package resrel_test

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressources-relationnelles/resrel-go/internal/mocks"
	"github.com/ressources-relationnelles/resrel-go/resrel"
)

func newTestClient(t *testing.T, handler http.Handler, store resrel.TokenStore) *resrel.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := resrel.New(resrel.Options{BaseURL: srv.URL, Tokens: store})
	require.NoError(t, err)
	return client
}

func TestNewValidatesBaseURL(t *testing.T) {
	_, err := resrel.New(resrel.Options{})
	require.Error(t, err)

	_, err = resrel.New(resrel.Options{BaseURL: "not a url"})
	require.Error(t, err)
}

func TestRequestReturnsBodyUnchanged(t *testing.T) {
	const body = `{"data":[{"id":1}],"current_page":1,"total":1}`
	store := mocks.NewTokenStoreStub("abc123")
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}), store)

	raw, err := client.Request(context.Background(), http.MethodGet, "/api/resources", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, body, string(raw))

	// A successful call must not alter stored token state.
	assert.Equal(t, "abc123", store.Current())
	assert.Zero(t, store.Clears)
}

func TestRequestDefaultHeaders(t *testing.T) {
	var got http.Header
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{}`)
	}), mocks.NewTokenStoreStub("abc123"))

	_, err := client.Request(context.Background(), http.MethodGet, "/api/user", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "XMLHttpRequest", got.Get("X-Requested-With"))
	assert.Equal(t, "Bearer abc123", got.Get("Authorization"))
	assert.Equal(t, "resrel-go", got.Get("User-Agent"))

	_, err = uuid.Parse(got.Get("X-Request-Id"))
	assert.NoError(t, err, "X-Request-Id should be a uuid")
}

func TestRequestWithoutTokenOmitsAuthorization(t *testing.T) {
	var got http.Header
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{}`)
	}), mocks.NewTokenStoreStub(""))

	_, err := client.Request(context.Background(), http.MethodGet, "/api/resources", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestCallerHeadersOverrideDefaults(t *testing.T) {
	var got http.Header
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{}`)
	}), mocks.NewTokenStoreStub(""))

	opts := &resrel.RequestOptions{Headers: http.Header{"Accept": []string{"text/csv"}}}
	_, err := client.Request(context.Background(), http.MethodGet, "/api/resources", nil, opts)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", got.Get("Accept"))
}

func TestQueryEncoding(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = io.WriteString(w, `{}`)
	}), mocks.NewTokenStoreStub(""))

	opts := &resrel.RequestOptions{Query: url.Values{"page": []string{"2"}, "search": []string{"santé"}}}
	_, err := client.Request(context.Background(), http.MethodGet, "/api/resources", nil, opts)
	require.NoError(t, err)
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "santé", gotQuery.Get("search"))
}

func TestUnauthorizedClearsStoredToken(t *testing.T) {
	store := mocks.NewTokenStoreStub("stale-token")
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Unauthenticated."}`)
	}), store)

	_, err := client.Request(context.Background(), http.MethodGet, "/api/favorites", nil, nil)

	var apiErr *resrel.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Unauthenticated.", apiErr.Message)

	assert.Empty(t, store.Current(), "401 must delete the stored token")
	assert.Equal(t, 1, store.Clears)
}

func TestErrorResponseCarriesStatusAndBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Ressource introuvable.","id":42}`)
	}), mocks.NewTokenStoreStub(""))

	_, err := client.Request(context.Background(), http.MethodGet, "/api/resources/42", nil, nil)

	var apiErr *resrel.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Ressource introuvable.", apiErr.Message)

	body, ok := apiErr.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), body["id"])
}

func TestErrorResponseWithoutMessageGetsDefault(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{}`)
	}), mocks.NewTokenStoreStub(""))

	_, err := client.Request(context.Background(), http.MethodGet, "/api/resources", nil, nil)

	var apiErr *resrel.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "La requête a échoué.", apiErr.Message)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := resrel.New(resrel.Options{BaseURL: srv.URL})
	require.NoError(t, err)
	srv.Close()

	_, err = client.Request(context.Background(), http.MethodGet, "/api/resources", nil, nil)

	var transportErr *resrel.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestMalformedJSONResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	}), mocks.NewTokenStoreStub(""))

	_, err := client.Request(context.Background(), http.MethodGet, "/api/resources", nil, nil)

	var transportErr *resrel.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestEmptyBodySuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), mocks.NewTokenStoreStub(""))

	raw, err := client.Request(context.Background(), http.MethodGet, "/sanctum/csrf-cookie", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, raw)

	var out struct{ Message string }
	require.NoError(t, client.Get(context.Background(), "/sanctum/csrf-cookie", &out, nil))
	assert.Empty(t, out.Message)
}

func TestPrimeCSRFSendsCookieOnLaterCalls(t *testing.T) {
	var loginCookies []*http.Cookie
	mux := http.NewServeMux()
	mux.HandleFunc("/sanctum/csrf-cookie", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "XSRF-TOKEN", Value: "csrf-value", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		loginCookies = r.Cookies()
		_, _ = io.WriteString(w, `{}`)
	})
	client := newTestClient(t, mux, mocks.NewTokenStoreStub(""))

	client.PrimeCSRF(context.Background())
	require.NoError(t, client.Post(context.Background(), "/login", map[string]string{}, nil))

	require.Len(t, loginCookies, 1)
	assert.Equal(t, "XSRF-TOKEN", loginCookies[0].Name)
	assert.Equal(t, "csrf-value", loginCookies[0].Value)
}

func TestPrimeCSRFSwallowsFailures(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"boom"}`)
	}), mocks.NewTokenStoreStub(""))

	// Must not panic and must not surface the failure.
	client.PrimeCSRF(context.Background())
}

func TestPostMultipartSetsBoundaryContentType(t *testing.T) {
	var gotContentType string
	var gotFile string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		gotFile = string(content)
		_, _ = io.WriteString(w, `{"data":{"id":1}}`)
	}), mocks.NewTokenStoreStub("abc123"))

	up := resrel.Upload{Field: "avatar", Filename: "me.png", Content: strings.NewReader("fake-png")}
	var out struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, client.PostMultipart(context.Background(), "/api/profile/avatar", up, &out))

	mediaType, params, err := mime.ParseMediaType(gotContentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	assert.NotEmpty(t, params["boundary"])
	assert.Equal(t, "fake-png", gotFile)
}
