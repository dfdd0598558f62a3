// Package dataset provides the in-memory listings snapshot for the Property Engine.
package dataset

// Property is one listing row of the snapshot.
type Property struct {
	ID            string  `json:"id"`
	Source        string  `json:"source"`
	ListingURL    string  `json:"listingUrl"`
	Price         int     `json:"price"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Address       string  `json:"address"`
	Neighborhood  string  `json:"neighborhood"`
	Province      string  `json:"province"`
	PropertyType  string  `json:"propertyType"`
	MapLink       string  `json:"mapLink,omitempty"`
	PublishedDate string  `json:"publishedDate"`
	Vendor        string  `json:"vendor"`
	TotalArea     int     `json:"totalArea"`
	CoveredArea   int     `json:"coveredArea"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
}
