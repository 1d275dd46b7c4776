package mysupabase

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	legacyAccessTokenCookie = "sb-access-token"
	authCookiePrefix        = "sb-"
	authCookieSuffix        = "-auth-token"
	base64Prefix            = "base64-"
)

// AccessTokenFromRequest finds the Supabase access token of the caller.
// Lookup order: bearer header, legacy sb-access-token cookie, sb-<ref>-auth-token session cookie.
func AccessTokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}

	if cookie, err := r.Cookie(legacyAccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	raw := sessionCookieValue(r.Cookies())
	if raw == "" {
		return ""
	}
	return parseSessionCookie(raw)
}

// sessionCookieValue joins the chunks (name.0, name.1, ...) of a split session cookie.
func sessionCookieValue(cookies []*http.Cookie) string {
	type chunk struct {
		index int
		value string
	}

	whole := ""
	chunks := []chunk{}
	for _, c := range cookies {
		if !strings.HasPrefix(c.Name, authCookiePrefix) {
			continue
		}
		if strings.HasSuffix(c.Name, authCookieSuffix) {
			whole = c.Value
			continue
		}
		pos := strings.LastIndex(c.Name, authCookieSuffix+".")
		if pos < 0 {
			continue
		}
		index, err := strconv.Atoi(c.Name[pos+len(authCookieSuffix)+1:])
		if err != nil {
			continue
		}
		chunks = append(chunks, chunk{index: index, value: c.Value})
	}

	if whole != "" {
		return whole
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].index < chunks[j].index })
	sb := strings.Builder{}
	for _, c := range chunks {
		sb.WriteString(c.value)
	}
	return sb.String()
}

func parseSessionCookie(raw string) string {
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}

	payload := []byte(raw)
	if strings.HasPrefix(raw, base64Prefix) {
		decoded, ok := decodeBase64(strings.TrimPrefix(raw, base64Prefix))
		if !ok {
			return ""
		}
		payload = decoded
	}

	session := struct {
		AccessToken string `json:"access_token"`
	}{}
	if err := json.Unmarshal(payload, &session); err == nil {
		return session.AccessToken
	}

	// older helpers stored [access_token, refresh_token, ...]
	parts := []any{}
	if err := json.Unmarshal(payload, &parts); err == nil && len(parts) > 0 {
		token, _ := parts[0].(string)
		return token
	}

	return ""
}

func decodeBase64(s string) ([]byte, bool) {
	for _, enc := range []*base64.Encoding{base64.RawURLEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.StdEncoding} {
		decoded, err := enc.DecodeString(s)
		if err == nil {
			return decoded, true
		}
	}
	return nil, false
}
