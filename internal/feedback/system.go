package feedback

import "context"

// System defines the public contract for feedback operations.
type System interface {
	Handler() *Handler

	// Submit stores a feedback report and returns it with its blob key.
	Submit(ctx context.Context, cmd SubmitCommand) (*Feedback, string, error)

	// List returns the blob keys of stored feedback reports.
	List(ctx context.Context) ([]string, error)

	// Get loads a feedback report by its blob key (without the prefix).
	Get(ctx context.Context, key string) (*Feedback, error)
}
