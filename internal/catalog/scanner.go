package catalog

import (
	"fmt"
	"strconv"
	"strings"

	mbkerror "github.com/msto63/mBK/foundation/core/error"
	"github.com/msto63/mBK/foundation/utils/mathx"
	"github.com/msto63/mBK/foundation/utils/stringx"
)

// fieldScanner consumes a composite line from left to right. It holds
// the unconsumed suffix of the line, which shrinks with every
// extraction; there is no backtracking.
type fieldScanner struct {
	rest string
}

func newFieldScanner(line string) *fieldScanner {
	return &fieldScanner{rest: line}
}

// next extracts the token before the first occurrence of sep, consumes
// token and separator, and trims surrounding spaces from both the token
// and the remaining suffix. A required token that trims to empty is
// rejected as a malformed record.
func (s *fieldScanner) next(field, sep string) (string, error) {
	idx := strings.Index(s.rest, sep)
	if idx < 0 {
		return "", mbkerror.New(fmt.Sprintf("separator %q for field %q not found", sep, field)).
			WithCode(mbkerror.CodeMalformedRecord).
			WithDetail("field", field).
			WithDetail("separator", sep).
			WithOperation("parseRecord")
	}

	token := strings.TrimSpace(s.rest[:idx])
	s.rest = strings.TrimSpace(s.rest[idx+len(sep):])

	if stringx.IsEmpty(token) {
		return "", mbkerror.New(fmt.Sprintf("field %q is empty", field)).
			WithCode(mbkerror.CodeMalformedRecord).
			WithDetail("field", field).
			WithOperation("parseRecord")
	}

	return token, nil
}

// remainder returns the unconsumed rest of the line, trimmed. Used for
// the final field, which has no closing separator.
func (s *fieldScanner) remainder() string {
	return strings.TrimSpace(s.rest)
}

// parseRecord tokenizes one composite line into a Beer. The first
// failed extraction aborts the record; partial records are impossible.
func parseRecord(line string) (Beer, error) {
	sc := newFieldScanner(line)

	ordinalText, err := sc.next("ordinal", " ")
	if err != nil {
		return Beer{}, err
	}
	ordinal, err := strconv.Atoi(ordinalText)
	if err != nil {
		return Beer{}, malformedNumber("ordinal", ordinalText, err)
	}

	name, err := sc.next("name", "|")
	if err != nil {
		return Beer{}, err
	}

	brewery, err := sc.next("brewery", "|")
	if err != nil {
		return Beer{}, err
	}

	beerType, err := sc.next("type", "|")
	if err != nil {
		return Beer{}, err
	}

	abvText, err := sc.next("abv", "%")
	if err != nil {
		return Beer{}, err
	}
	abv, err := mathx.NewDecimal(abvText)
	if err != nil {
		return Beer{}, malformedNumber("abv", abvText, err)
	}

	ratingsText, err := sc.next("numRatings", " ")
	if err != nil {
		return Beer{}, err
	}
	// The rating count may carry thousands separators ("4,692").
	// Stripping every non-digit removes them; if nothing is left the
	// field never held a number.
	ratingsDigits := stringx.Digits(ratingsText)
	numRatings, err := strconv.Atoi(ratingsDigits)
	if err != nil {
		return Beer{}, malformedNumber("numRatings", ratingsText, err)
	}

	avgText := sc.remainder()
	averageRating, err := mathx.NewDecimal(avgText)
	if err != nil {
		return Beer{}, malformedNumber("averageRating", avgText, err)
	}

	return Beer{
		Ordinal: ordinal,
		Name:    name,
		Brewery: brewery,
		Type:    beerType,
		// ABV is normalized to two fraction digits ("12%" becomes 12.00).
		ABV:           abv.Round(2),
		NumRatings:    numRatings,
		AverageRating: averageRating,
	}, nil
}

// malformedNumber wraps a numeric parse failure as a malformed record.
func malformedNumber(field, text string, cause error) error {
	return mbkerror.Wrap(cause, fmt.Sprintf("field %q does not hold a valid number", field)).
		WithCode(mbkerror.CodeMalformedRecord).
		WithDetail("field", field).
		WithDetail("text", text).
		WithOperation("parseRecord")
}
