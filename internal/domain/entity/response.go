package entity

import "time"

// Source tells which path produced a response.
type Source string

const (
	SourceGenerative Source = "generative"
	SourceFallback   Source = "fallback"
)

// Category is the fallback rule that matched a query.
type Category string

const (
	CategoryGeneric Category = "generic"

	CategorySand     Category = "sand"
	CategorySteel    Category = "steel"
	CategoryCement   Category = "cement"
	CategoryConcrete Category = "concrete"

	CategoryTeam     Category = "team"
	CategoryProjects Category = "projects"
	CategoryServices Category = "services"
	CategoryAbout    Category = "about"
	CategoryContact  Category = "contact"
)

// ResolvedResponse is what a resolution hands back to its caller. Only
// Content is part of the contract; the rest is for observability.
type ResolvedResponse struct {
	Content  string        `json:"content"`
	Mode     Mode          `json:"mode"`
	Source   Source        `json:"source"`
	Category Category      `json:"category,omitempty"`
	Reason   FailureReason `json:"fallback_reason,omitempty"`
	Latency  time.Duration `json:"-"`
}

// ResolveRequest is the inbound body of the HTTP surface.
type ResolveRequest struct {
	ClientID string `json:"client_id"`
	Mode     string `json:"mode"`
	Query    string `json:"query"`
}
