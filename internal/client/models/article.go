package models

import "github.com/dmitrijs2005/wepub/internal/timex"

type ArticleStatus string

const (
	ArticleStatusDraft  ArticleStatus = "draft"
	ArticleStatusSynced ArticleStatus = "synced"
	ArticleStatusFailed ArticleStatus = "failed"
)

type Article struct {
	ID               int64         `json:"id"`
	UserID           int64         `json:"user_id"`
	StyleID          int64         `json:"style_id"`
	Title            string        `json:"title"`
	PromptInput      string        `json:"prompt_input"`
	ContentRaw       string        `json:"content_raw"`
	ContentHTML      string        `json:"content_html"`
	Status           ArticleStatus `json:"status"`
	WechatMediaID    string        `json:"wechat_media_id,omitempty"`
	GenerationError  string        `json:"generation_error,omitempty"`
	SyncErrorMessage string        `json:"sync_error_message,omitempty"`
	RetryCount       int           `json:"retry_count"`
	CreatedAt        timex.Time    `json:"created_at"`
	UpdatedAt        timex.Time    `json:"updated_at"`
	SyncedAt         timex.Time    `json:"synced_at"`
}

// ArticleSummary is the list view of an article.
type ArticleSummary struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Status    ArticleStatus `json:"status"`
	CreatedAt timex.Time    `json:"created_at"`
	SyncedAt  timex.Time    `json:"synced_at"`
}

type ArticleCreate struct {
	StyleID     int64  `json:"style_id"`
	PromptInput string `json:"prompt_input"`
}

type ArticleUpdate struct {
	Title       *string `json:"title,omitempty"`
	ContentHTML *string `json:"content_html,omitempty"`
}
