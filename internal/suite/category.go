package suite

// Category classifies fixtures by whether the compiler should accept them.
type Category string

const (
	Valid   Category = "valid"
	Invalid Category = "invalid"
)

// Categories lists every category in resolution order.
var Categories = []Category{Valid, Invalid}

// expectedCodes is the fixed category to exit code table.
var expectedCodes = map[Category]int{
	Valid:   0,
	Invalid: 1,
}

// ExpectedCode returns the exit code a fixture of this category must produce.
// Unknown categories expect a rejection.
func (c Category) ExpectedCode() int {
	if code, ok := expectedCodes[c]; ok {
		return code
	}
	return expectedCodes[Invalid]
}
