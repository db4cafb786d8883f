package analyses

import (
	"fmt"
	"strings"
	"time"
)

// Blob storage prefixes for the analysis domain.
const (
	ResultsPrefix   = "analysis_results/"
	DocumentsPrefix = "documents/"
)

const keyTimeLayout = "20060102_150405"

// resultKey builds the blob key for a stored analysis:
// analysis_results/<timestamp>_<user>_<company>.json
func resultKey(ts time.Time, userName, companyName string) string {
	return fmt.Sprintf(
		"%s%s_%s_%s.json",
		ResultsPrefix,
		ts.Format(keyTimeLayout),
		sanitize(userName),
		sanitize(companyName),
	)
}

// documentKey builds the blob key for an uploaded source document:
// documents/<user>/<company>/<timestamp>_<filename>
func documentKey(ts time.Time, userName, companyName, fileName string) string {
	return fmt.Sprintf(
		"%s%s/%s/%s_%s",
		DocumentsPrefix,
		sanitize(userName),
		sanitize(companyName),
		ts.Format(keyTimeLayout),
		sanitize(fileName),
	)
}

func sanitize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
}
