// Package types provides type definitions for structured data used throughout the resume engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a verified skill in the candidate's ledger
type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Proficiency int       `json:"proficiency"` // 1-5 scale
	CreatedAt   time.Time `json:"created_at"`
}

// Project is a verified project in the candidate's ledger
type Project struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies,omitempty"`
	Impact       string     `json:"impact,omitempty"`
	Domain       string     `json:"domain,omitempty"`
	URL          string     `json:"url,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"` // nil means ongoing
	CreatedAt    time.Time  `json:"created_at"`
}

// Experience is a verified work experience in the candidate's ledger
type Experience struct {
	ID           uuid.UUID  `json:"id"`
	Company      string     `json:"company"`
	Role         string     `json:"role"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies,omitempty"`
	Location     string     `json:"location,omitempty"`
	IsCurrent    bool       `json:"is_current"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Achievement is a verified achievement in the candidate's ledger
type Achievement struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
