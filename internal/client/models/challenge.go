package models

import (
	"encoding/json"
	"time"
)

type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "ACTIVE"
	ChallengeCompleted ChallengeStatus = "COMPLETED"
	ChallengeCancelled ChallengeStatus = "CANCELLED"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Challenge is a task users join and complete for experience points.
type Challenge struct {
	ID                ID              `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	Difficulty        Difficulty      `json:"difficulty,omitempty"`
	Status            ChallengeStatus `json:"status,omitempty"`
	RequirementType   string          `json:"requirementType,omitempty"`
	ExpReward         int             `json:"expReward,omitempty"`
	StartDate         *time.Time      `json:"startDate,omitempty"`
	EndDate           *time.Time      `json:"endDate,omitempty"`
	CreatedAt         *time.Time      `json:"createdAt,omitempty"`
	Categories        []Category      `json:"categories,omitempty"`
	Creator           *User           `json:"creator,omitempty"`
	ParticipantsCount int             `json:"participantsCount,omitempty"`
}

// NewChallenge is the create-challenge payload.
type NewChallenge struct {
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Difficulty      Difficulty `json:"difficulty,omitempty"`
	RequirementType string     `json:"requirementType,omitempty"`
	ExpReward       int        `json:"expReward,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	CategoryIDs     []ID       `json:"categoryIds,omitempty"`
	IsPublic        bool       `json:"isPublic"`
}

// Participation is a user's membership in a challenge, with its proof state.
type Participation struct {
	ID          ID              `json:"id"`
	ChallengeID ID              `json:"challengeId"`
	Challenge   *Challenge      `json:"challenge,omitempty"`
	Status      ChallengeStatus `json:"status,omitempty"`
	JoinedAt    *time.Time      `json:"joinedAt,omitempty"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

// ProofStatus is the review outcome an administrator assigns to a proof.
type ProofStatus string

const (
	ProofPending  ProofStatus = "PENDING"
	ProofApproved ProofStatus = "APPROVED"
	ProofRejected ProofStatus = "REJECTED"
)

// ProofSubmission is a proof of completion: a note plus attachments.
type ProofSubmission struct {
	Note  string
	Files []Upload
}

// ProofReview is the admin decision payload.
type ProofReview struct {
	Status          ProofStatus `json:"status"`
	RejectionReason string      `json:"rejectionReason,omitempty"`
}

// Ack is the body of endpoints that only confirm success. Unknown fields
// are kept raw so callers can still inspect them.
type Ack map[string]json.RawMessage
