package domain

// Category classifies a flight and fixes both its fare and the
// namespace in which its flight number is unique.
type Category string

const (
	CategoryDomestic      Category = "domestic"
	CategoryInternational Category = "international"
)

// DefaultFares is the built-in fare per seat for each category.
var DefaultFares = map[Category]float64{
	CategoryDomestic:      100.0,
	CategoryInternational: 300.0,
}

// Flight is one inventory row loaded from a flight file. SeatsAvailable
// is the only mutable field; flights are never removed during a run.
type Flight struct {
	Number         string
	DepartureCity  string
	Destination    string
	DepartureTime  string
	Date           string
	SeatsAvailable int
	FarePerSeat    float64
	Category       Category
}
