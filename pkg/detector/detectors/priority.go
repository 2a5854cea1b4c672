package detectors

// Evaluation priorities. Lower value = checked earlier = wins ties.
// The order is load-bearing: several kinds overlap syntactically and the
// gaps below encode which one claims the buffer first.

const (
	// PrioritySecret runs first: credentials must win over every other
	// reading of the same text (an env assignment, a URI, a token blob).
	PrioritySecret = 10

	// PriorityJWT precedes base64: every JWT segment is also a long
	// base64url run.
	PriorityJWT = 20

	// PriorityUUID only claims buffers made entirely of UUID lines, so it
	// can sit ahead of the structured formats without stealing their ids.
	PriorityUUID = 30

	// PriorityJSONYAML precedes URL and SQL: JSON bodies routinely contain
	// both URLs and keyword-like strings.
	PriorityJSONYAML = 40

	// PriorityURL precedes SQL: query strings often embed words like
	// "select" or "update".
	PriorityURL = 50

	PrioritySQL = 60

	// PriorityXMLHTML precedes CSV: markup attribute rows can look like
	// delimiter-aligned columns.
	PriorityXMLHTML = 70

	PriorityCSV = 80

	// PriorityColor precedes CSS: a buffer of bare color literals should
	// classify as colors even when property names appear around them.
	PriorityColor = 90

	PriorityStackTrace = 100

	PriorityCSS = 110

	// PriorityEnvFile precedes base64: env values are frequently long
	// base64-looking blobs.
	PriorityEnvFile = 120

	// PriorityBase64 precedes file path: the base64 alphabet includes '/',
	// so long runs with slashes would otherwise read as Unix paths.
	PriorityBase64 = 130

	PriorityFilePath = 140

	PriorityTimestamp = 150

	PriorityMarkdown = 160

	PriorityCode = 170

	// PriorityPlainText is the unconditional fallback and must order after
	// every other detector.
	PriorityPlainText = 1000
)
