// Package feedback implements user feedback capture: free-form categorized
// messages persisted to blob storage for operator review.
package feedback

import "time"

// Feedback is one user-submitted report.
type Feedback struct {
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	UserName  string    `json:"user_name,omitempty"`
}

// SubmitCommand carries a new feedback submission.
type SubmitCommand struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	UserName string `json:"user_name,omitempty"`
}
