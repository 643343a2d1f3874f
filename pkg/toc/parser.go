package toc

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/docmap/pkg/errors"
)

// Parse reads a documentation page and returns its first toctree directive.
// Returns errors.ErrNoDirective when the page contains none.
//
// The name argument is used in error messages only.
func Parse(r io.Reader, name string) (*Directive, error) {
	directives, err := ParseAll(r, name)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 {
		return nil, errors.ErrNoDirective
	}
	return directives[0], nil
}

// ParseString parses the first toctree directive from page content.
func ParseString(content string) (*Directive, error) {
	return Parse(strings.NewReader(content), "")
}

// ParseAll reads a documentation page and returns every toctree directive
// in source order. Pages without a directive yield an empty slice, not an
// error.
//
// The parser is deliberately tolerant: duplicate and dangling slugs are
// data-quality defects surfaced by the linter, never parse failures.
func ParseAll(r io.Reader, name string) ([]*Directive, error) {
	scanner := bufio.NewScanner(r)

	var directives []*Directive
	var current *Directive
	inOptions := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimRight(line, " \t") == Marker {
			current = &Directive{Line: lineNo}
			directives = append(directives, current)
			inOptions = true
			continue
		}

		if current == nil {
			continue
		}

		trimmed := strings.TrimSpace(line)

		// A blank line ends the option field list; body entries follow.
		if trimmed == "" {
			inOptions = false
			continue
		}

		// A non-indented line ends the directive block.
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			current = nil
			continue
		}

		if inOptions && strings.HasPrefix(trimmed, ":") {
			opt, err := parseOption(trimmed)
			if err != nil {
				return nil, &errors.ParseError{
					Format:  "toctree",
					File:    name,
					Line:    lineNo,
					Message: err.Error(),
					Err:     err,
				}
			}
			current.Options = append(current.Options, opt)
			if opt.Name == "maxdepth" {
				depth, err := strconv.Atoi(opt.Value)
				if err != nil {
					return nil, &errors.ParseError{
						Format:  "toctree",
						File:    name,
						Line:    lineNo,
						Message: "maxdepth is not a number: " + opt.Value,
						Err:     err,
					}
				}
				current.MaxDepth = depth
			}
			continue
		}
		inOptions = false

		entry := parseEntry(trimmed)
		entry.Position = len(current.Entries) + 1
		entry.Line = lineNo
		current.Entries = append(current.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", name, err)
	}

	return directives, nil
}

// parseOption parses a ":name: value" field line.
func parseOption(line string) (Option, error) {
	rest := strings.TrimPrefix(line, ":")
	idx := strings.Index(rest, ":")
	if idx < 0 {
		return Option{}, errors.New("malformed option: " + line)
	}
	name := rest[:idx]
	if name == "" || strings.ContainsAny(name, " \t") {
		return Option{}, errors.New("malformed option name: " + line)
	}
	return Option{
		Name:  name,
		Value: strings.TrimSpace(rest[idx+1:]),
	}, nil
}

// parseEntry parses a whitespace-normalized body line. The explicit title
// form "Some Title <slug>" is recognized; everything else is a bare slug.
func parseEntry(line string) Entry {
	if strings.HasSuffix(line, ">") {
		if open := strings.LastIndex(line, "<"); open > 0 {
			title := strings.TrimSpace(line[:open])
			slug := strings.TrimSpace(line[open+1 : len(line)-1])
			if title != "" && slug != "" {
				return Entry{Slug: slug, Title: title}
			}
		}
	}
	return Entry{Slug: line}
}
