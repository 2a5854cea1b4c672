package detectors

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// A JWT is three dot-separated base64url segments; the header always
// encodes a JSON object, so it starts with "eyJ". Unsigned tokens carry
// an empty signature segment.
var jwtRe = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$`)

var registeredClaimOrder = []string{"iss", "sub", "aud", "exp", "nbf", "iat", "jti"}

var registeredClaimLabels = map[string]string{
	"iss": "Issuer",
	"sub": "Subject",
	"aud": "Audience",
	"exp": "Expiration",
	"nbf": "Not Before",
	"iat": "Issued At",
	"jti": "JWT ID",
}

var epochClaims = map[string]bool{"exp": true, "nbf": true, "iat": true}

// JWTDetector matches a buffer holding a single JSON Web Token.
type JWTDetector struct{}

func (d *JWTDetector) ID() string    { return "jwt" }
func (d *JWTDetector) Priority() int { return PriorityJWT }

func (d *JWTDetector) Detect(text string) bool {
	return jwtRe.MatchString(strings.TrimSpace(text))
}

func (d *JWTDetector) ToastMessage() string { return "JWT detected" }

func (d *JWTDetector) Actions() []Action {
	return []Action{
		{ID: "decode-jwt", Label: "Decode JWT", Execute: decodeJWT},
		{ID: "check-jwt-expiration", Label: "Check expiration", Execute: checkJWTExpiration},
		{ID: "extract-jwt-claims", Label: "Extract claims", Execute: extractJWTClaims},
	}
}

// decodeJWTSegment reverses base64url: translate the URL alphabet back to
// the standard one, restore padding, then decode.
func decodeJWTSegment(seg string) ([]byte, error) {
	s := strings.ReplaceAll(seg, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	return base64.StdEncoding.DecodeString(s)
}

func decodeJWTObject(seg string) (map[string]any, error) {
	raw, err := decodeJWTSegment(seg)
	if err != nil {
		return nil, fmt.Errorf("segment is not valid base64url: %w", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("segment is not a JSON object: %w", err)
	}
	return obj, nil
}

func jwtParts(text string) ([]string, error) {
	parts := strings.Split(strings.TrimSpace(text), ".")
	if len(parts) != 3 {
		return nil, errors.New("expected three dot-separated segments")
	}
	return parts, nil
}

func decodeJWT(text string) ActionResult {
	parts, err := jwtParts(text)
	if err != nil {
		return failed(text, "Not a JWT: "+err.Error())
	}
	header, err := decodeJWTObject(parts[0])
	if err != nil {
		return failed(text, "Invalid JWT header: "+err.Error())
	}
	payload, err := decodeJWTObject(parts[1])
	if err != nil {
		return failed(text, "Invalid JWT payload: "+err.Error())
	}

	headerJSON, _ := json.MarshalIndent(header, "", "  ")
	payloadJSON, _ := json.MarshalIndent(payload, "", "  ")

	var b strings.Builder
	b.WriteString("Header:\n")
	b.Write(headerJSON)
	b.WriteString("\n\nPayload:\n")
	b.Write(payloadJSON)
	b.WriteString("\n\nSignature:\n")
	if parts[2] == "" {
		b.WriteString("(none)")
	} else {
		b.WriteString(parts[2])
	}
	return replaced(b.String())
}

func checkJWTExpiration(text string) ActionResult {
	parts, err := jwtParts(text)
	if err != nil {
		return failed(text, "Not a JWT: "+err.Error())
	}
	payload, err := decodeJWTObject(parts[1])
	if err != nil {
		return failed(text, "Invalid JWT payload: "+err.Error())
	}
	raw, ok := payload["exp"]
	if !ok {
		return failed(text, "No exp claim in payload")
	}
	exp, ok := asEpochSeconds(raw)
	if !ok {
		return failed(text, "exp claim is not a number")
	}

	expiry := time.Unix(exp, 0)
	now := timeNow()
	stamp := expiry.Format("2006-01-02 15:04:05 MST")
	if now.After(expiry) {
		return failed(text, fmt.Sprintf("Expired %s ago (%s)", relativeDuration(now.Sub(expiry)), stamp))
	}
	return succeeded(text, fmt.Sprintf("Valid, expires in %s (%s)", relativeDuration(expiry.Sub(now)), stamp))
}

func extractJWTClaims(text string) ActionResult {
	parts, err := jwtParts(text)
	if err != nil {
		return failed(text, "Not a JWT: "+err.Error())
	}
	payload, err := decodeJWTObject(parts[1])
	if err != nil {
		return failed(text, "Invalid JWT payload: "+err.Error())
	}

	var lines []string
	seen := make(map[string]bool)
	emit := func(key string) {
		value, ok := payload[key]
		if !ok {
			return
		}
		seen[key] = true
		name := key
		if label, ok := registeredClaimLabels[key]; ok {
			name = fmt.Sprintf("%s (%s)", key, label)
		}
		if epochClaims[key] {
			if epoch, ok := asEpochSeconds(value); ok {
				lines = append(lines, fmt.Sprintf("%s: %s", name, time.Unix(epoch, 0).Format("2006-01-02 15:04:05 MST")))
				return
			}
		}
		lines = append(lines, fmt.Sprintf("%s: %s", name, formatClaimValue(value)))
	}

	for _, key := range registeredClaimOrder {
		emit(key)
	}
	rest := make([]string, 0, len(payload))
	for key := range payload {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		emit(key)
	}

	if len(lines) == 0 {
		return failed(text, "Payload has no claims")
	}
	return replaced(strings.Join(lines, "\n"))
}

func asEpochSeconds(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func formatClaimValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(raw)
	}
}
