package models

import "github.com/dmitrijs2005/wepub/internal/timex"

// Style is a writing style: the LLM instruction plus the CSS used to render
// generated articles.
type Style struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	PromptInstruction string     `json:"prompt_instruction"`
	CSSContent        string     `json:"css_content"`
	PreviewImage      string     `json:"preview_image,omitempty"`
	IsSystem          bool       `json:"is_system"`
	UserID            *int64     `json:"user_id,omitempty"`
	Version           int        `json:"version,omitempty"`
	CreatedAt         timex.Time `json:"created_at"`
	UpdatedAt         timex.Time `json:"updated_at"`
}

type StyleCreate struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	PromptInstruction string `json:"prompt_instruction"`
	CSSContent        string `json:"css_content"`
	PreviewImage      string `json:"preview_image,omitempty"`
}

// StyleUpdate carries only the fields to change.
type StyleUpdate struct {
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	PromptInstruction *string `json:"prompt_instruction,omitempty"`
	CSSContent        *string `json:"css_content,omitempty"`
	PreviewImage      *string `json:"preview_image,omitempty"`
}
