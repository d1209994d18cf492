package template

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrUndefined reports a document naming a variable the form does not have.
var ErrUndefined = errors.New("undefined reference")

var (
	tagPattern     = regexp.MustCompile(`(?s)\{\{(.*?)\}\}|\{%(.*?)%\}|\{#.*?#\}`)
	stringPattern  = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`)
	identPattern   = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
	forPattern     = regexp.MustCompile(`^for\s+(\w+)(?:\s*,\s*(\w+))?\s+in\s+(.*)$`)
	assignPattern  = regexp.MustCompile(`(\w+)\s*=`)
	expressionTags = map[string]bool{"if": true, "elif": true, "ifequal": true, "ifnotequal": true}
)

// Words that may appear in an expression without naming a variable.
var keywords = map[string]bool{
	"and": true, "or": true, "not": true, "in": true, "is": true,
	"true": true, "false": true, "True": true, "False": true,
	"nil": true, "none": true, "None": true,
	"reversed": true, "sorted": true,
}

// undefinedNames lists, sorted and without duplicates, the variables source
// reads that are neither in known nor bound by the document itself.
func undefinedNames(source string, known []string) []string {
	bound := map[string]bool{"fields": true, "forloop": true, "pongo2": true}
	for _, name := range known {
		bound[name] = true
	}

	missing := map[string]bool{}
	check := func(expr string) {
		for _, name := range rootNames(expr) {
			if !bound[name] {
				missing[name] = true
			}
		}
	}

	inComment := false
	for _, m := range tagPattern.FindAllStringSubmatchIndex(source, -1) {
		switch {
		case m[2] >= 0:
			if !inComment {
				check(source[m[2]:m[3]])
			}
		case m[4] >= 0:
			tag := trimTag(source[m[4]:m[5]])
			word, rest, _ := strings.Cut(tag, " ")
			switch {
			case word == "comment":
				inComment = true
			case word == "endcomment":
				inComment = false
			case inComment:
			case word == "for":
				f := forPattern.FindStringSubmatch(tag)
				if f == nil {
					continue
				}
				check(f[3])
				bound[f[1]] = true
				if f[2] != "" {
					bound[f[2]] = true
				}
			case expressionTags[word]:
				check(rest)
			case word == "set" || word == "with":
				for _, a := range assignPattern.FindAllStringSubmatchIndex(rest, -1) {
					name := rest[a[2]:a[3]]
					end := len(rest)
					if next := assignPattern.FindStringIndex(rest[a[1]:]); next != nil {
						end = a[1] + next[0]
					}
					check(rest[a[1]:end])
					bound[name] = true
				}
			}
		}
	}

	out := make([]string, 0, len(missing))
	for name := range missing {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// rootNames returns the variables an expression reads. Attribute names,
// filter names and literals are skipped.
func rootNames(expr string) []string {
	expr = stringPattern.ReplaceAllString(trimTag(expr), `""`)

	var names []string
	for _, loc := range identPattern.FindAllStringIndex(expr, -1) {
		name := expr[loc[0]:loc[1]]
		if keywords[name] || isNumberSuffix(expr, loc[0]) {
			continue
		}
		if prev := lastNonSpace(expr[:loc[0]]); prev == '.' || prev == '|' {
			continue
		}
		names = append(names, name)
	}
	return names
}

func trimTag(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "-"))
}

func lastNonSpace(s string) byte {
	s = strings.TrimRight(s, " \t\r\n")
	if s == "" {
		return 0
	}
	return s[len(s)-1]
}

// isNumberSuffix reports identifiers glued to a digit, such as the e in 1e3.
func isNumberSuffix(expr string, at int) bool {
	return at > 0 && expr[at-1] >= '0' && expr[at-1] <= '9'
}

func undefinedError(names []string) error {
	return fmt.Errorf("%w: %s", ErrUndefined, strings.Join(names, ", "))
}
