package detectors

// All returns one instance of every built-in detector. Callers sort by
// Priority; the order here follows it for readability only.
func All() []Detector {
	return []Detector{
		&SecretDetector{},
		&JWTDetector{},
		&UUIDDetector{},
		&JSONYAMLDetector{},
		&URLDetector{},
		&SQLDetector{},
		&XMLHTMLDetector{},
		&CSVDetector{},
		&ColorDetector{},
		&StackTraceDetector{},
		&CSSDetector{},
		&EnvFileDetector{},
		&Base64Detector{},
		&FilePathDetector{},
		&TimestampDetector{},
		&MarkdownDetector{},
		&CodeDetector{},
		&PlainTextDetector{},
	}
}
