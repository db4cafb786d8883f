package provider

import "errors"

// ErrProvider wraps every failure of the completion backend: network errors,
// timeouts, and malformed response envelopes. Classifiers recover from it
// through their fallback path, so it never reaches an HTTP response raw.
var ErrProvider = errors.New("completion provider failed")
