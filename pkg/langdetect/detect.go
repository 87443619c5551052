// Package langdetect names the language of a file the runner splices.
// It uses go-enry, first by file name and then by content.
package langdetect

import (
	"bytes"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const (
	langHTML = "html"
	langJSON = "json"
	langText = "text"
)

// classifierCandidates are the formats a splice target or content file
// usually holds.
var classifierCandidates = []string{
	"HTML", "JSON", "YAML", "XML", "Markdown", "JavaScript", "CSS", "Shell",
}

// Detect returns a lowercase language name for a file, or "text" when
// nothing is recognized. path may be empty.
func Detect(path string, content []byte) string {
	if path != "" {
		if lang := pick(enry.GetLanguagesByExtension(path, content, nil)); lang != "" {
			return lang
		}
		if lang := pick(enry.GetLanguagesByFilename(path, content, nil)); lang != "" {
			return lang
		}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	if looksLikeHTML(trimmed) {
		return langHTML
	}
	if looksLikeJSON(trimmed) {
		return langJSON
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// pick returns the first of langs that is a classifier candidate. Extensions
// such as .html and .json are shared with niche languages, so enry reports
// them as ambiguous.
func pick(langs []string) string {
	for _, lang := range langs {
		if slices.Contains(classifierCandidates, lang) {
			return normalize(lang)
		}
	}
	return ""
}

func looksLikeHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.HasPrefix(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>"))
}

// looksLikeJSON also accepts a JSON-LD script block, which is how merged
// schema content is usually stored.
func looksLikeJSON(trimmed []byte) bool {
	if bytes.HasPrefix(trimmed, []byte(`<script type="application/ld+json">`)) {
		return true
	}
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

// normalize maps go-enry names to short lowercase identifiers.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "JSON with Comments":
		return langJSON
	default:
		return strings.ToLower(lang)
	}
}
