package response

import (
	"fmt"
	"time"
)

// MessageResponse is returned by the health check and by successful deletes.
type MessageResponse struct {
	Message string `json:"message" example:"Project deleted successfully"`
	Version string `json:"version,omitempty" example:"1.0.0"`
}

func Deleted(kind string) MessageResponse {
	return MessageResponse{Message: fmt.Sprintf("%s deleted successfully", kind)}
}

func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func mapSlice[E, R any](in []E, fn func(E) R) []R {
	out := make([]R, 0, len(in))
	for _, e := range in {
		out = append(out, fn(e))
	}
	return out
}
