// Package places turns free text and map coordinates into destination
// labels ("Paris, France") and keeps the ordered list of destinations picked
// for a trip.
//
// Geocoding is done through the Geocoder interface. Gazetteer is an offline
// implementation over a built-in table of world capitals.
package places
