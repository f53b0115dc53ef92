package fakebackend

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/dmitrijs2005/wepub/internal/client/models"
	"github.com/dmitrijs2005/wepub/internal/timex"
	"github.com/gorilla/mux"
)

func withUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

func userFrom(r *http.Request) models.User {
	u, _ := r.Context().Value(ctxKey{}).(models.User)
	return u
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func now() timex.Time { return timex.Time{Time: time.Now().UTC().Truncate(time.Second)} }

func (b *Backend) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Health{Status: "healthy", Database: "ok"})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acc := b.accounts[req.Username]
	if acc == nil || acc.password != req.Password {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	if !acc.user.IsActive {
		writeError(w, http.StatusForbidden, "User account is disabled")
		return
	}
	writeJSON(w, http.StatusOK, models.Token{AccessToken: b.issueLocked(req.Username), TokenType: "bearer"})
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Username) < 3 || len(req.Password) < 6 {
		writeError(w, http.StatusUnprocessableEntity, "username or password too short")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.accounts[req.Username]; exists {
		writeError(w, http.StatusBadRequest, "Username already registered")
		return
	}
	writeJSON(w, http.StatusCreated, b.addUserLocked(req.Username, req.Email, req.Password))
}

func (b *Backend) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userFrom(r))
}

// styles

func (b *Backend) visibleStyle(s models.Style, u models.User) bool {
	return s.IsSystem || (s.UserID != nil && *s.UserID == u.ID)
}

func (b *Backend) listStyles(w http.ResponseWriter, r *http.Request) {
	u := userFrom(r)
	b.mu.Lock()
	out := make([]models.Style, 0, len(b.styles))
	for _, s := range b.styles {
		if b.visibleStyle(s, u) {
			out = append(out, s)
		}
	}
	b.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) getStyle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	s, ok := b.styles[pathID(r)]
	b.mu.Unlock()
	if !ok || !b.visibleStyle(s, userFrom(r)) {
		writeError(w, http.StatusNotFound, "Style not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (b *Backend) createStyle(w http.ResponseWriter, r *http.Request) {
	var req models.StyleCreate
	if !decode(w, r, &req) {
		return
	}
	if req.Name == "" || req.PromptInstruction == "" || req.CSSContent == "" {
		writeError(w, http.StatusUnprocessableEntity, "name, prompt_instruction and css_content are required")
		return
	}
	uid := userFrom(r).ID

	b.mu.Lock()
	b.nextID++
	s := models.Style{
		ID: b.nextID, Name: req.Name, Description: req.Description,
		PromptInstruction: req.PromptInstruction, CSSContent: req.CSSContent,
		PreviewImage: req.PreviewImage, UserID: &uid, Version: 1,
		CreatedAt: now(), UpdatedAt: now(),
	}
	b.styles[s.ID] = s
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, s)
}

func (b *Backend) updateStyle(w http.ResponseWriter, r *http.Request) {
	var req models.StyleUpdate
	if !decode(w, r, &req) {
		return
	}
	u := userFrom(r)

	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.styles[pathID(r)]
	if !ok || !b.visibleStyle(s, u) {
		writeError(w, http.StatusNotFound, "Style not found")
		return
	}
	if s.IsSystem {
		writeError(w, http.StatusForbidden, "System styles are read-only")
		return
	}
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.PromptInstruction != nil {
		s.PromptInstruction = *req.PromptInstruction
	}
	if req.CSSContent != nil {
		s.CSSContent = *req.CSSContent
	}
	if req.PreviewImage != nil {
		s.PreviewImage = *req.PreviewImage
	}
	s.Version++
	s.UpdatedAt = now()
	b.styles[s.ID] = s
	writeJSON(w, http.StatusOK, s)
}

func (b *Backend) deleteStyle(w http.ResponseWriter, r *http.Request) {
	u := userFrom(r)
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.styles[pathID(r)]
	if !ok || !b.visibleStyle(s, u) {
		writeError(w, http.StatusNotFound, "Style not found")
		return
	}
	if s.IsSystem {
		writeError(w, http.StatusForbidden, "System styles are read-only")
		return
	}
	delete(b.styles, s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// articles

func (b *Backend) ownArticle(r *http.Request) (models.Article, bool) {
	a, ok := b.articles[pathID(r)]
	if !ok || a.UserID != userFrom(r).ID {
		return models.Article{}, false
	}
	return a, true
}

func (b *Backend) listArticles(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	uid := userFrom(r).ID

	b.mu.Lock()
	all := make([]models.Article, 0, len(b.articles))
	for _, a := range b.articles {
		if a.UserID == uid {
			all = append(all, a)
		}
	}
	b.mu.Unlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	out := make([]models.ArticleSummary, 0, limit)
	for i := skip; i < len(all) && len(out) < limit; i++ {
		a := all[i]
		out = append(out, models.ArticleSummary{ID: a.ID, Title: a.Title, Status: a.Status, CreatedAt: a.CreatedAt, SyncedAt: a.SyncedAt})
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) createArticle(w http.ResponseWriter, r *http.Request) {
	var req models.ArticleCreate
	if !decode(w, r, &req) {
		return
	}
	u := userFrom(r)

	if d := b.GenerateDelay; d > 0 {
		select {
		case <-time.After(d):
		case <-r.Context().Done():
			return
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.styles[req.StyleID]
	if !ok {
		writeError(w, http.StatusNotFound, "Style not found")
		return
	}
	if !b.visibleStyle(s, u) {
		writeError(w, http.StatusForbidden, "Not allowed to use this style")
		return
	}
	if len(b.apiKeys) == 0 {
		writeError(w, http.StatusBadRequest, "Please configure an API key first")
		return
	}

	b.nextID++
	title := req.PromptInput
	if len(title) > 30 {
		title = title[:30]
	}
	a := models.Article{
		ID: b.nextID, UserID: u.ID, StyleID: s.ID, Title: title,
		PromptInput: req.PromptInput, ContentRaw: "# " + title,
		ContentHTML: "<h1>" + title + "</h1>", Status: models.ArticleStatusDraft,
		CreatedAt: now(), UpdatedAt: now(),
	}
	b.articles[a.ID] = a
	writeJSON(w, http.StatusCreated, a)
}

func (b *Backend) getArticle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	a, ok := b.ownArticle(r)
	b.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (b *Backend) updateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.ArticleUpdate
	if !decode(w, r, &req) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.ownArticle(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.ContentHTML != nil {
		a.ContentHTML = *req.ContentHTML
	}
	a.UpdatedAt = now()
	b.articles[a.ID] = a
	writeJSON(w, http.StatusOK, a)
}

func (b *Backend) deleteArticle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.ownArticle(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}
	delete(b.articles, a.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) syncArticle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.ownArticle(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Article not found")
		return
	}
	if b.wechat == nil {
		writeError(w, http.StatusBadRequest, "Please configure the WeChat official account first")
		return
	}
	a.Status = models.ArticleStatusSynced
	a.WechatMediaID = "media-" + strconv.FormatInt(a.ID, 10)
	a.SyncedAt = now()
	b.articles[a.ID] = a
	b.wechat.TotalSynced++
	b.wechat.LastSyncAt = now()
	writeJSON(w, http.StatusOK, a)
}

// api keys

func provider(r *http.Request) string {
	if p := r.URL.Query().Get("provider"); p != "" {
		return p
	}
	return models.DefaultProvider
}

func (b *Backend) getAPIKey(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	k, ok := b.apiKeys[provider(r)]
	b.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "API key not configured")
		return
	}
	writeJSON(w, http.StatusOK, k)
}

func (b *Backend) createAPIKey(w http.ResponseWriter, r *http.Request) {
	var req models.APIKeyCreate
	if !decode(w, r, &req) {
		return
	}
	if len(req.APIKey) < 10 {
		writeError(w, http.StatusUnprocessableEntity, "api_key too short")
		return
	}
	if req.Provider == "" {
		req.Provider = models.DefaultProvider
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.apiKeys[req.Provider]; exists {
		writeError(w, http.StatusBadRequest, "API key already configured")
		return
	}
	b.nextID++
	k := models.APIKey{ID: b.nextID, Provider: req.Provider, IsValid: true, CreatedAt: now(), UpdatedAt: now()}
	b.apiKeys[k.Provider] = k
	writeJSON(w, http.StatusCreated, k)
}

func (b *Backend) updateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req models.APIKeyUpdate
	if !decode(w, r, &req) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	k, ok := b.apiKeys[provider(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "API key not configured")
		return
	}
	k.UpdatedAt = now()
	b.apiKeys[k.Provider] = k
	writeJSON(w, http.StatusOK, k)
}

func (b *Backend) deleteAPIKey(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := provider(r)
	if _, ok := b.apiKeys[p]; !ok {
		writeError(w, http.StatusNotFound, "API key not configured")
		return
	}
	delete(b.apiKeys, p)
	w.WriteHeader(http.StatusNoContent)
}

// wechat

func (b *Backend) getWechat(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wechat == nil {
		writeError(w, http.StatusNotFound, "WeChat config not found")
		return
	}
	writeJSON(w, http.StatusOK, b.wechat)
}

func (b *Backend) createWechat(w http.ResponseWriter, r *http.Request) {
	var req models.WechatConfigCreate
	if !decode(w, r, &req) {
		return
	}
	if len(req.AppID) < 10 || len(req.AppSecret) < 10 {
		writeError(w, http.StatusUnprocessableEntity, "app_id and app_secret must be at least 10 characters")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wechat != nil {
		writeError(w, http.StatusBadRequest, "WeChat config already exists")
		return
	}
	b.nextID++
	b.wechat = &models.WechatConfig{ID: b.nextID, AppID: req.AppID, CreatedAt: now(), UpdatedAt: now()}
	writeJSON(w, http.StatusCreated, b.wechat)
}

func (b *Backend) updateWechat(w http.ResponseWriter, r *http.Request) {
	var req models.WechatConfigUpdate
	if !decode(w, r, &req) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wechat == nil {
		writeError(w, http.StatusNotFound, "WeChat config not found")
		return
	}
	if req.AppID != nil {
		b.wechat.AppID = *req.AppID
	}
	b.wechat.UpdatedAt = now()
	writeJSON(w, http.StatusOK, b.wechat)
}

func (b *Backend) deleteWechat(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wechat == nil {
		writeError(w, http.StatusNotFound, "WeChat config not found")
		return
	}
	b.wechat = nil
	w.WriteHeader(http.StatusNoContent)
}
