package doctree

// LocationKind tags which alternative a Location value carries.
type LocationKind int

const (
	LocationKindPath LocationKind = iota
	LocationKindPoint
	LocationKindRange
)

// Location is the sum Path | Point | Range, used by APIs that accept any
// position form.
type Location struct {
	Kind  LocationKind
	Path  Path
	Point Point
	Range Range
}

// LocationFromPath wraps a Path as a Location.
func LocationFromPath(p Path) Location {
	return Location{Kind: LocationKindPath, Path: p}
}

// LocationFromPoint wraps a Point as a Location.
func LocationFromPoint(p Point) Location {
	return Location{Kind: LocationKindPoint, Point: p}
}

// LocationFromRange wraps a Range as a Location.
func LocationFromRange(r Range) Location {
	return Location{Kind: LocationKindRange, Range: r}
}

// Span is an ordered pair of paths delimiting a half-open region. The node
// iterator does not take a Span; its bounds are IterOptions.From and
// IterOptions.To.
type Span struct {
	Start Path
	End   Path
}

// NewSpan builds a Span.
func NewSpan(start, end Path) Span {
	return Span{Start: start, End: end}
}
