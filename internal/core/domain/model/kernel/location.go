package kernel

import (
	"strings"
)

// Distance classifies how far apart two regions are for the location surcharge.
type Distance int

const (
	// SameCity means both ends share a city inside the same province.
	SameCity Distance = iota
	// SameProvince means different cities inside one province.
	SameProvince
	// OtherProvince means the provinces differ.
	OtherProvince
)

func (d Distance) String() string {
	switch d {
	case SameCity:
		return "same city"
	case SameProvince:
		return "same province"
	case OtherProvince:
		return "other province"
	default:
		return "unknown"
	}
}

// Region is the province and city of one end of a shipment. Names are kept
// as entered; comparisons ignore case and surrounding whitespace.
type Region struct {
	province string
	city     string
}

// NewRegion builds a region from form values. Any value is accepted.
func NewRegion(province, city string) Region {
	return Region{
		province: strings.TrimSpace(province),
		city:     strings.TrimSpace(city),
	}
}

func (r Region) Province() string {
	return r.province
}

func (r Region) City() string {
	return r.city
}

// HasCity reports whether a city was entered.
func (r Region) HasCity() bool {
	return r.city != ""
}

// Distance compares provinces first, then cities.
func (r Region) Distance(other Region) Distance {
	if !strings.EqualFold(r.province, other.province) {
		return OtherProvince
	}
	if !strings.EqualFold(r.city, other.city) {
		return SameProvince
	}
	return SameCity
}

func (r Region) String() string {
	switch {
	case r.city == "":
		return r.province
	case r.province == "":
		return r.city
	default:
		return r.city + ", " + r.province
	}
}
