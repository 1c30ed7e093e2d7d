package board

import "strconv"

// Category classifies a board. The backend encodes it as a small integer
// in both records and the cate_type query parameter.
type Category int

const (
	// CategoryAll is the client-side "no filter" sentinel. It is never
	// sent to the backend: filtering by all categories means omitting
	// the cate_type parameter entirely.
	CategoryAll Category = 0

	CategoryIndustry   Category = 1
	CategoryConcept    Category = 2
	CategoryRegulatory Category = 3
	CategoryOther      Category = 4
)

var categoryLabels = map[string]Category{
	"all":        CategoryAll,
	"industry":   CategoryIndustry,
	"concept":    CategoryConcept,
	"regulatory": CategoryRegulatory,
	"other":      CategoryOther,
}

// ParseCategory maps a user-facing label to a Category.
func ParseCategory(label string) (Category, bool) {
	c, ok := categoryLabels[label]
	return c, ok
}

// CategoryNames returns the selectable labels in display order.
func CategoryNames() []string {
	return []string{"all", "industry", "concept", "regulatory", "other"}
}

// Param returns the cate_type query value. ok is false for CategoryAll,
// meaning the parameter must be omitted.
func (c Category) Param() (string, bool) {
	if c == CategoryAll {
		return "", false
	}
	return strconv.Itoa(int(c)), true
}

func (c Category) String() string {
	switch c {
	case CategoryAll:
		return "all"
	case CategoryIndustry:
		return "industry"
	case CategoryConcept:
		return "concept"
	case CategoryRegulatory:
		return "regulatory"
	case CategoryOther:
		return "other"
	default:
		return "category(" + strconv.Itoa(int(c)) + ")"
	}
}
