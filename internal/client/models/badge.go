package models

import "time"

type Badge struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// UserBadge is a badge earned by a user.
type UserBadge struct {
	Badge    Badge      `json:"badge"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`
}

type BadgeInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type BadgeAssignment struct {
	UserID  ID `json:"userId"`
	BadgeID ID `json:"badgeId"`
}

type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type CategoryInput struct {
	Name string `json:"name"`
}

// BanRequest bans a user; Reason is shown to the user.
type BanRequest struct {
	UserID ID     `json:"userId"`
	Reason string `json:"reason"`
}

type UnbanRequest struct {
	UserID ID `json:"userId"`
}
