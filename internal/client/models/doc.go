// Package models defines the JSON payloads exchanged with the wepub backend.
package models
