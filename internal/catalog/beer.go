package catalog

import (
	"fmt"

	"github.com/msto63/mBK/foundation/utils/mathx"
	"github.com/msto63/mBK/foundation/utils/stringx"
)

// Beer is one parsed catalog record. It is constructed once per input
// triple and not mutated afterwards.
type Beer struct {
	Ordinal       int
	Name          string
	Brewery       string
	Type          string
	ABV           mathx.Decimal
	NumRatings    int
	AverageRating mathx.Decimal
}

// ABVString returns the alcohol content with exactly two fraction digits.
func (b Beer) ABVString() string {
	return b.ABV.StringFixed(2)
}

// RatingsString returns the rating count with thousands separators,
// matching the notation of the source data.
func (b Beer) RatingsString() string {
	return stringx.GroupThousands(b.NumRatings, ",")
}

// String renders the record in the notation of the source file.
func (b Beer) String() string {
	return fmt.Sprintf("%d %s | %s | %s | %s%% %s %s",
		b.Ordinal, b.Name, b.Brewery, b.Type,
		b.ABVString(), b.RatingsString(), b.AverageRating.String())
}
