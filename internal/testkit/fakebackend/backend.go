// Package fakebackend runs an in-process imitation of the wepub REST API for
// tests. It keeps users, styles, articles, API keys and the WeChat binding in
// memory, issues HS256 access tokens like the real service and records every
// request it receives.
package fakebackend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/wepub/internal/client/models"
	"github.com/dmitrijs2005/wepub/internal/timex"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

// APIPrefix is the versioned prefix all routes live under.
const APIPrefix = "/api/v1"

var signingKey = []byte("fakebackend-secret")

// Request is a recorded inbound call.
type Request struct {
	Method        string
	Path          string
	Authorization string
}

type failure struct {
	status int
	detail string
}

type account struct {
	user     models.User
	password string
}

type Backend struct {
	srv *httptest.Server

	mu       sync.Mutex
	nextID   int64
	accounts map[string]*account // by username
	tokens   map[string]string   // token -> username
	styles   map[int64]models.Style
	articles map[int64]models.Article
	apiKeys  map[string]models.APIKey // by provider
	wechat   *models.WechatConfig
	requests []Request
	failures map[string]failure // "METHOD /path" -> one-shot failure

	// GenerateDelay stalls article generation, to exercise timeouts.
	GenerateDelay time.Duration
	// TokenTTL sets the exp claim of issued tokens.
	TokenTTL time.Duration
}

// New starts a backend that is shut down when the test ends.
func New(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		styles:   make(map[int64]models.Style),
		articles: make(map[int64]models.Article),
		apiKeys:  make(map[string]models.APIKey),
		failures: make(map[string]failure),
		TokenTTL: time.Hour,
	}
	b.srv = httptest.NewServer(b.router())
	t.Cleanup(b.srv.Close)
	return b
}

// URL is the API base address, including the version prefix.
func (b *Backend) URL() string { return b.srv.URL + APIPrefix }

// AddUser registers an account directly.
func (b *Backend) AddUser(username, email, password string) models.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addUserLocked(username, email, password)
}

func (b *Backend) addUserLocked(username, email, password string) models.User {
	b.nextID++
	u := models.User{
		ID:        b.nextID,
		Username:  username,
		Email:     email,
		IsActive:  true,
		CreatedAt: timex.Time{Time: time.Now().UTC().Truncate(time.Second)},
	}
	b.accounts[username] = &account{user: u, password: password}
	return u
}

// IssueToken mints a valid token for username.
func (b *Backend) IssueToken(username string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.issueLocked(username)
}

func (b *Backend) issueLocked(username string) string {
	acc := b.accounts[username]
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(b.TokenTTL).Unix(),
		"jti":      fmt.Sprintf("%d", len(b.tokens)+1),
	}
	if acc != nil {
		claims["user_id"] = acc.user.ID
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	b.tokens[tok] = username
	return tok
}

// RevokeAll invalidates every issued token, as if they had all expired.
func (b *Backend) RevokeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = make(map[string]string)
}

// FailNext makes the next request matching method and path (relative to the
// API prefix, e.g. "/users/me") answer with status and detail.
func (b *Backend) FailNext(method, path string, status int, detail string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, detail: detail}
}

// AddStyle seeds a style and returns it with its ID.
func (b *Backend) AddStyle(s models.Style) models.Style {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	s.ID = b.nextID
	b.styles[s.ID] = s
	return s
}

// Requests returns a copy of the recorded requests.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// LastRequest returns the most recent request, or a zero Request.
func (b *Backend) LastRequest() Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return Request{}
	}
	return b.requests[len(b.requests)-1]
}

func (b *Backend) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(b.record)

	api := r.PathPrefix(APIPrefix).Subrouter()
	api.HandleFunc("/health", b.health).Methods("GET")
	api.HandleFunc("/auth/login", b.login).Methods("POST")
	api.HandleFunc("/auth/register", b.register).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(b.authenticate)
	protected.HandleFunc("/users/me", b.me).Methods("GET")

	protected.HandleFunc("/styles", b.listStyles).Methods("GET")
	protected.HandleFunc("/styles", b.createStyle).Methods("POST")
	protected.HandleFunc("/styles/{id:[0-9]+}", b.getStyle).Methods("GET")
	protected.HandleFunc("/styles/{id:[0-9]+}", b.updateStyle).Methods("PUT")
	protected.HandleFunc("/styles/{id:[0-9]+}", b.deleteStyle).Methods("DELETE")

	protected.HandleFunc("/articles", b.listArticles).Methods("GET")
	protected.HandleFunc("/articles", b.createArticle).Methods("POST")
	protected.HandleFunc("/articles/{id:[0-9]+}", b.getArticle).Methods("GET")
	protected.HandleFunc("/articles/{id:[0-9]+}", b.updateArticle).Methods("PUT")
	protected.HandleFunc("/articles/{id:[0-9]+}", b.deleteArticle).Methods("DELETE")
	protected.HandleFunc("/articles/{id:[0-9]+}/sync", b.syncArticle).Methods("POST")

	protected.HandleFunc("/api-keys", b.getAPIKey).Methods("GET")
	protected.HandleFunc("/api-keys", b.createAPIKey).Methods("POST")
	protected.HandleFunc("/api-keys", b.updateAPIKey).Methods("PUT")
	protected.HandleFunc("/api-keys", b.deleteAPIKey).Methods("DELETE")

	protected.HandleFunc("/wechat/config", b.getWechat).Methods("GET")
	protected.HandleFunc("/wechat/config", b.createWechat).Methods("POST")
	protected.HandleFunc("/wechat/config", b.updateWechat).Methods("PUT")
	protected.HandleFunc("/wechat/config", b.deleteWechat).Methods("DELETE")

	return r
}

// record logs the request and serves any queued failure for it.
func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, APIPrefix)

		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
		})
		f, failing := b.failures[key]
		delete(b.failures, key)
		b.mu.Unlock()

		if failing {
			writeError(w, f.status, f.detail)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ctxKey struct{}

func (b *Backend) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		b.mu.Lock()
		username, known := b.tokens[token]
		acc := b.accounts[username]
		b.mu.Unlock()

		if !ok || !known || acc == nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		if !acc.user.IsActive {
			writeError(w, http.StatusForbidden, "User account is disabled")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), acc.user)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{"loc": []string{"body"}, "msg": err.Error()}},
		})
		return false
	}
	return true
}
