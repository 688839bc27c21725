package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	placeholderRe = regexp.MustCompile(`\{(\d+)\}`)

	lowerUpperRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymRe    = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
	separatorRe  = regexp.MustCompile(`[_\-\s]+`)
)

// Render replaces every {n} in pattern with the JSON form of args[n].
// A placeholder whose argument is missing or an untyped nil is left as written.
func Render(pattern string, args ...any) string {
	if len(args) == 0 {
		return pattern
	}
	return placeholderRe.ReplaceAllStringFunc(pattern, func(match string) string {
		i, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || i >= len(args) || args[i] == nil {
			return match
		}
		return serialize(args[i])
	})
}

// serialize renders v the way it would appear in a JSON document.
// Values JSON cannot represent fall back to their fmt form.
func serialize(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Uncamel turns an identifier into a sentence: "clickAddNewRecordButton" becomes
// "Click add new record button" and "parseXMLHttp" becomes "Parse xml http".
func Uncamel(name string) string {
	s := lowerUpperRe.ReplaceAllString(name, "$1 $2")
	s = acronymRe.ReplaceAllString(s, "$1 $2")
	s = separatorRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// funcName returns the short name of the function held by fn.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	return shortName(f.Name())
}

// callerName returns the short name of the function skip frames above its caller.
//
//go:noinline
func callerName(skip int) string {
	pc := make([]uintptr, 1)
	if runtime.Callers(skip+2, pc) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pc).Next()
	return shortName(frame.Function)
}

// shortName reduces a qualified runtime name such as
// "demoqa_automation/infrastructure/pages.(*WebtablePage).GoToPage-fm" to "GoToPage".
// Closure suffixes are dropped so a literal inside a method reports the method.
func shortName(full string) string {
	full = strings.TrimSuffix(full, "-fm")
	full = strings.ReplaceAll(full, "[...]", "")
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	parts := strings.Split(full, ".")
	for len(parts) > 1 && isClosure(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

func isClosure(segment string) bool {
	for _, prefix := range []string{"func", "gowrap"} {
		if rest, ok := strings.CutPrefix(segment, prefix); ok && rest != "" && isDigits(rest) {
			return true
		}
	}
	return isDigits(segment)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
