package domain

type PlaceKind string

const (
	PlaceSight    PlaceKind = "sight"
	PlaceFood     PlaceKind = "food"
	PlaceLodging  PlaceKind = "lodging"
	PlaceTransit  PlaceKind = "transit"
	PlaceActivity PlaceKind = "activity"
	PlaceShopping PlaceKind = "shopping"
	PlaceOther    PlaceKind = "other"
)

// ValidPlaceKinds is the canonical set of accepted place kind strings.
var ValidPlaceKinds = map[string]bool{
	"sight": true, "food": true, "lodging": true, "transit": true,
	"activity": true, "shopping": true, "other": true,
}
