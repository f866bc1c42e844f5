package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the per-user record. LikedPosts is a comma-delimited list of
// loadout ids the user has liked.
type Profile struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username   string    `json:"username" gorm:"size:40;uniqueIndex"`
	FullName   string    `json:"full_name" gorm:"size:100"`
	Email      string    `json:"email" gorm:"size:255"`
	AvatarURL  string    `json:"avatar_url" gorm:"size:500"`
	Website    string    `json:"website" gorm:"size:500"`
	LikedPosts string    `json:"liked_posts"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// RecordID returns the primary key as the string form used by the record store
func (p Profile) RecordID() string {
	return p.ID.String()
}

// LikedSet splits the stored liked_posts string into its loadout ids
func (p *Profile) LikedSet() []string {
	return SplitList(p.LikedPosts)
}

// HasLiked reports whether loadoutID is in the liked set
func (p *Profile) HasLiked(loadoutID string) bool {
	for _, id := range p.LikedSet() {
		if id == loadoutID {
			return true
		}
	}
	return false
}

// SplitList splits a comma-joined list, trimming entries and dropping blanks
func SplitList(joined string) []string {
	out := []string{}
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinList joins entries with commas, the storage format of liked_posts and tags
func JoinList(items []string) string {
	return strings.Join(items, ",")
}
