// Package codec serializes tasks to their persisted text form and back.
//
// The format is a line oriented JSON subset, every object field is on its
// own line as `"key" : value`:
//
//	[
//	  {
//	    "id" : 1,
//	    "description" : "buy milk",
//	    "status" : "todo",
//	    "createdAt" : "2024-02-29T10:00:00Z",
//	    "updatedAt" : "2024-02-29T10:00:00Z"
//	  }
//	]
//
// It's not a general JSON parser, nested values and arrays as values are not
// supported.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/slok/tasker/internal/model"
)

const (
	arrayOpen       = "["
	arrayClose      = "]"
	objectOpen      = "{"
	objectClose     = "}"
	objectCloseNext = "},"
	pairSeparator   = " : "

	objectIndent = "  "
	fieldIndent  = "    "
)

var (
	errMalformed    = errors.New("malformed line")
	errUnbalanced   = errors.New("unbalanced object markers")
	errUnterminated = errors.New("unterminated object")
)

// ParseError is returned when the text can't be decoded.
type ParseError struct {
	// Line is the 1-based line number where the error happened.
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Encode serializes the tasks. Fields are always written in the same order:
// id, description, status, createdAt and updatedAt.
func Encode(tasks []model.Task) string {
	var b strings.Builder

	b.WriteString(arrayOpen + "\n")
	for i, t := range tasks {
		b.WriteString(objectIndent + objectOpen + "\n")
		for j, f := range fields {
			b.WriteString(fieldIndent)
			b.WriteString(quote(f.key))
			b.WriteString(pairSeparator)
			b.WriteString(f.encode(t))
			if j < len(fields)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}

		if i < len(tasks)-1 {
			b.WriteString(objectIndent + objectCloseNext + "\n")
		} else {
			b.WriteString(objectIndent + objectClose + "\n")
		}
	}
	b.WriteString(arrayClose + "\n")

	return b.String()
}

// Decode parses the text into tasks, keeping their order. Empty or blank text
// returns no tasks.
//
// Keys can appear in any order, unknown keys are ignored and missing keys
// leave the field with its zero value. Unknown status tokens, invalid ids and
// invalid timestamps are errors.
func Decode(text string) ([]model.Task, error) {
	tasks := []model.Task{}

	var (
		current model.Task
		open    bool
	)
	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch line {
		case "", arrayOpen, arrayClose:
			continue
		case objectOpen:
			if open {
				return nil, &ParseError{Line: i + 1, Text: line, Err: errUnbalanced}
			}
			current = model.Task{}
			open = true
		case objectClose, objectCloseNext:
			if !open {
				return nil, &ParseError{Line: i + 1, Text: line, Err: errUnbalanced}
			}
			tasks = append(tasks, current)
			open = false
		default:
			if !open {
				return nil, &ParseError{Line: i + 1, Text: line, Err: fmt.Errorf("field outside of an object: %w", errMalformed)}
			}
			if err := decodePair(line, &current); err != nil {
				return nil, &ParseError{Line: i + 1, Text: line, Err: err}
			}
		}
	}

	if open {
		return nil, &ParseError{Line: len(lines), Err: errUnterminated}
	}

	return tasks, nil
}

func decodePair(line string, t *model.Task) error {
	rawKey, rawValue, ok := strings.Cut(line, pairSeparator)
	if !ok {
		return fmt.Errorf("missing %q separator: %w", pairSeparator, errMalformed)
	}

	key := strings.Trim(strings.TrimSpace(rawKey), `"`)
	f, ok := fieldsByKey[key]
	if !ok {
		return nil
	}

	value, err := trimValue(rawValue, f.quoted)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}

	if err := f.decode(t, value); err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}

	return nil
}

// trimValue removes the trailing comma and the surrounding quotes of a value.
// Quotes are removed from any value, only quoted fields are unescaped.
func trimValue(raw string, quoted bool) (string, error) {
	v := strings.TrimSpace(raw)
	if !strings.HasPrefix(v, `"`) {
		return strings.TrimSpace(strings.TrimSuffix(v, ",")), nil
	}

	// The comma only belongs to the separator if a quote is left after removing it.
	if s := strings.TrimSuffix(v, ","); len(s) >= 2 && strings.HasSuffix(s, `"`) {
		v = s
	}
	if len(v) < 2 || !strings.HasSuffix(v, `"`) {
		return "", fmt.Errorf("unterminated string: %w", errMalformed)
	}

	v = v[1 : len(v)-1]
	if !quoted {
		return v, nil
	}
	return unescaper.Replace(v), nil
}

var (
	escaper   = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	unescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`, `\n`, "\n", `\r`, "\r", `\t`, "\t")
)

func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}
