package planner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/moizlokhandwala/aitravelagent/models"
)

var trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)

// ParsePackageResponse decodes the raw text returned by the model into a
// [models.PackageResponse].
//
// Parsing is a two-step process:
//  1. Strict JSON decode of the raw text.
//  2. On failure, a bounded textual repair — markdown code fences are
//     stripped, the text is cut down to its outermost JSON object, and
//     trailing commas are removed — followed by one more decode attempt.
//
// The raw text is never executed or evaluated, and a failed parse never
// yields fabricated packages: both attempts failing surfaces
// [ErrUnparsableResponse] to the caller.
func ParsePackageResponse(raw string) (models.PackageResponse, error) {
	var response models.PackageResponse

	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		repaired := repairJSON(raw)
		if repairErr := json.Unmarshal([]byte(repaired), &response); repairErr != nil {
			return models.PackageResponse{}, fmt.Errorf("%w: %w", ErrUnparsableResponse, err)
		}
	}

	if len(response.Packages) == 0 {
		return models.PackageResponse{}, ErrNoPackages
	}

	return response, nil
}

// repairJSON applies the bounded best-effort fixes for the malformations the
// model most commonly produces. It only manipulates text; it never interprets
// it.
func repairJSON(raw string) string {
	repaired := stripMarkdownFences(raw)
	repaired = cutToOutermostObject(repaired)
	repaired = trailingCommaPattern.ReplaceAllString(repaired, "$1")
	return repaired
}

// stripMarkdownFences removes a surrounding ```json ... ``` (or plain ```)
// code fence, which models emit despite instructions not to.
func stripMarkdownFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// cutToOutermostObject discards any prose before the first '{' and after the
// last '}', keeping just the candidate JSON object.
func cutToOutermostObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}
