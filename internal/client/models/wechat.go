package models

import "github.com/dmitrijs2005/wepub/internal/timex"

// WechatConfig is the official-account binding used to publish drafts. The
// app secret and access token are never returned.
type WechatConfig struct {
	ID          int64      `json:"id"`
	AppID       string     `json:"app_id"`
	TotalSynced int        `json:"total_synced"`
	LastSyncAt  timex.Time `json:"last_sync_at"`
	CreatedAt   timex.Time `json:"created_at"`
	UpdatedAt   timex.Time `json:"updated_at"`
}

type WechatConfigCreate struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
}

type WechatConfigUpdate struct {
	AppID     *string `json:"app_id,omitempty"`
	AppSecret *string `json:"app_secret,omitempty"`
}
