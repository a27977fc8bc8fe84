package pagination

// DefaultPageSize is used when a non-positive page size is requested
const DefaultPageSize = 10

// Direction represents cursor movement requested by the results screen
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Cursor locates the highlighted item: Page is zero based, Index is
// relative to the visible slice of the current page.
type Cursor struct {
	PageSize int
	Page     int
	Index    int
}
