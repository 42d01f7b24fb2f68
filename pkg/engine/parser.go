package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	separatorRegex  = regexp.MustCompile(`(?i) at `)
	timeRegex       = regexp.MustCompile(`\A([0-9]{1,2}):([0-9]{2})(AM|PM)\z`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

var (
	// ErrSeparatorNotFound indicates the input could not be split into a label and a time expression.
	ErrSeparatorNotFound = errors.New("no \" at \" separator found")
	// ErrAmbiguousSeparator indicates the input contains more than one " at " separator.
	ErrAmbiguousSeparator = errors.New("more than one \" at \" separator found")
	// ErrMalformedTimeExpression indicates the time expression does not match h:mm followed by am or pm.
	ErrMalformedTimeExpression = errors.New("malformed time expression")
)

// Parse splits input of the form "<label> at <h:mm><am|pm>" and resolves the time
// expression against today's date in now's location. Inputs with zero or more than
// one " at " separator are rejected; the time of day is not rolled forward to
// tomorrow when it has already passed.
func Parse(input string, now time.Time) (string, time.Time, error) {
	parts := separatorRegex.Split(input, -1)
	if len(parts) < 2 {
		return "", time.Time{}, fmt.Errorf("%w in %q", ErrSeparatorNotFound, input)
	}
	if len(parts) > 2 {
		return "", time.Time{}, fmt.Errorf("%w in %q", ErrAmbiguousSeparator, input)
	}

	label := strings.TrimSpace(parts[0])
	expr := strings.TrimSpace(parts[1])
	if label == "" || expr == "" {
		return "", time.Time{}, fmt.Errorf("%w in %q", ErrSeparatorNotFound, input)
	}

	normalized := strings.ToUpper(whitespaceRegex.ReplaceAllString(expr, ""))
	match := timeRegex.FindStringSubmatch(normalized)
	if match == nil {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimeExpression, expr)
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimeExpression, expr)
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimeExpression, expr)
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimeExpression, expr)
	}

	hour = hour % 12
	if match[3] == "PM" {
		hour += 12
	}

	dueAt := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	return label, dueAt, nil
}
