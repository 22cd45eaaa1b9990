package util

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// BuildURL appends a URL-encoded query string built from a flat map of
// primitive values (string, bool, integers, floats) to rawURL. Keys are
// appended in sorted order. If rawURL already contains a '?', parameters are
// appended with '&'. With no parameters, rawURL is returned verbatim; the
// base URL is never parsed or re-encoded.
func BuildURL(rawURL string, params map[string]any) string {
	if len(params) == 0 {
		return rawURL
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(rawURL)
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	for _, k := range keys {
		sb.WriteString(sep)
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(CoerceString(params[k])))
		sep = "&"
	}
	return sb.String()
}

// CoerceString converts a primitive query value to its canonical string form.
func CoerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
