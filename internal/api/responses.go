package api

import "github.com/jonesrussell/sotd-matcher/internal/domain"

// MatchRequest is a single classification request.
type MatchRequest struct {
	Text string `binding:"required" json:"text"`
}

// MatchResponse wraps one match result.
type MatchResponse struct {
	Result *domain.MatchResult `json:"result"`
}

// BatchMatchRequest classifies several strings in one call.
type BatchMatchRequest struct {
	Texts []string `binding:"required,min=1" json:"texts"`
}

// BatchMatchResponse returns one result per input, in input order.
type BatchMatchResponse struct {
	Results []*domain.MatchResult `json:"results"`
}

// StatsResponse reports catalog and registry sizes.
type StatsResponse struct {
	Sections   map[string]int `json:"sections"`
	Strategies []string       `json:"strategies"`
	Overrides  int            `json:"overrides"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
