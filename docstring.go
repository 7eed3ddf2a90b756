package clicklite

import (
	"strings"
)

// Documented is implemented by argument structs that carry a documentation string for
// their command. The string uses the Google docstring layout: a short first line, an
// optional longer description, and Args/Returns/Raises sections.
type Documented interface {
	Doc() string
}

// ParamDoc is the documentation of a single parameter as it appears in the Args section.
type ParamDoc struct {
	Name string
	Text string
}

// Doc is the parsed form of a command's documentation string. A missing or unstructured
// string parses to the zero Doc; that is never an error.
type Doc struct {
	// Short is the first non-empty line.
	Short string
	// Long is everything between the short line and the first section header, with
	// interior line breaks preserved.
	Long string
	// Params holds one entry per parameter documented under Args, in order of
	// appearance.
	Params []ParamDoc

	Returns string
	Raises  string
}

// section headers recognized when scanning the documentation body.
var docSections = map[string]string{
	"args":       "args",
	"arguments":  "args",
	"parameters": "args",
	"returns":    "returns",
	"return":     "returns",
	"raises":     "raises",
}

// parseDocstring parses a Google-style documentation string. It is deliberately
// forgiving: anything it cannot place is dropped rather than reported.
func parseDocstring(text string) Doc {
	var d Doc

	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return d
	}
	d.Short = strings.TrimSpace(lines[i])
	i++

	// Free-form lines up to the first section header become the long description.
	var long []string
	for ; i < len(lines); i++ {
		if _, ok := sectionHeader(lines[i]); ok {
			break
		}
		long = append(long, strings.TrimSpace(lines[i]))
	}
	d.Long = strings.Join(trimBlankEdges(long), "\n")

	section := ""
	for ; i < len(lines); i++ {
		if name, ok := sectionHeader(lines[i]); ok {
			section = name
			continue
		}
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		switch section {
		case "args":
			if name, docText, ok := splitParamEntry(line); ok {
				d.Params = append(d.Params, ParamDoc{Name: name, Text: normalizeDocValue(docText)})
			} else if n := len(d.Params); n > 0 {
				// Continuation of the previous entry.
				d.Params[n-1].Text = joinDocText(d.Params[n-1].Text, line)
			}
		case "returns":
			d.Returns = joinDocText(d.Returns, line)
		case "raises":
			d.Raises = joinDocText(d.Raises, line)
		}
	}
	d.Returns = normalizeDocValue(d.Returns)
	d.Raises = normalizeDocValue(d.Raises)
	return d
}

// sectionHeader reports whether the line is a recognized section header like "Args:".
func sectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasSuffix(trimmed, ":") {
		return "", false
	}
	name, ok := docSections[strings.ToLower(strings.TrimSuffix(trimmed, ":"))]
	return name, ok
}

// splitParamEntry splits an Args entry of the form "name: text" or "name (type): text".
// The name must be a single identifier-looking token.
func splitParamEntry(line string) (name, text string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:idx])
	if open := strings.Index(name, "("); open >= 0 {
		name = strings.TrimSpace(name[:open])
	}
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", "", false
	}
	return name, strings.TrimSpace(line[idx+1:]), true
}

// normalizeDocValue maps the literal tokens "none" and "null" (any case) to absence.
// Documentation generators emit these when no description was written.
func normalizeDocValue(text string) string {
	if strings.EqualFold(text, "none") || strings.EqualFold(text, "null") {
		return ""
	}
	return text
}

func joinDocText(existing, line string) string {
	if existing == "" {
		return line
	}
	return existing + " " + line
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}

// docFor extracts the documentation string of an argument struct type. The struct opts
// in by implementing [Documented]; anything else yields the empty string.
func docFor(argsType any) string {
	if d, ok := argsType.(Documented); ok {
		return d.Doc()
	}
	return ""
}
