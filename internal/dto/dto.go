package dto

import "github.com/google/uuid"

type UpsertUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

type IssueTokenRequest struct {
	Email string `json:"email"`
}

type CreateGoalRequest struct {
	Goal string `json:"goal"`
	Type string `json:"type"`
}

// UpdateGoalRequest uses pointers so an absent field can be told apart from
// an explicit empty string (merge-patch).
type UpdateGoalRequest struct {
	Goal *string `json:"goal"`
	Type *string `json:"type"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// InsertResult mirrors the acknowledgment shape of a document-store insert:
// the created record itself is not echoed back.
type InsertResult struct {
	Acknowledged bool      `json:"acknowledged"`
	InsertedID   uuid.UUID `json:"insertedId"`
}

// UpdateResult reports how many documents matched the (id, owner) filter.
// A zero count is the only signal that the id was missing or foreign.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type QuoteResponse struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
