package fff

import (
	"fmt"
	"strings"
)

// District represents a football district (departmental committee)
type District struct {
	ID          *int64   `json:"cg_no"`
	Name        string   `json:"name"`
	ShortName   string   `json:"short_name"`
	TypeLabel   string   `json:"type_label"`
	PostalCodes []string `json:"cp_cod"`
}

// DistrictFromObject builds a District from its JSON object
func DistrictFromObject(o Object) District {
	return District{
		ID:          o.OptInt("cg_no"),
		Name:        o.String("name", ""),
		ShortName:   o.String("short_name", ""),
		TypeLabel:   o.String("type_label", ""),
		PostalCodes: o.Strings("cp_cod"),
	}
}

// Contact represents one contact entry of a club (phone, email, website...)
type Contact struct {
	Type      string `json:"type"`
	TypeLabel string `json:"type_label"`
	Value     string `json:"value"`
}

// ContactFromObject builds a Contact from its JSON object
func ContactFromObject(o Object) Contact {
	return Contact{
		Type:      o.String("type", ""),
		TypeLabel: o.String("type_label", ""),
		Value:     o.String("value", ""),
	}
}

// IsPhone checks if the contact is a phone number. Phone type codes start with "T".
func (c *Contact) IsPhone() bool {
	return strings.HasPrefix(c.Type, "T")
}

// Terrain represents a pitch owned or used by a club
type Terrain struct {
	ID                *int64   `json:"te_no"`
	Name              string   `json:"name"`
	Address           *string  `json:"address"`
	ZipCode           *string  `json:"zip_code"`
	City              *string  `json:"city"`
	Surface           *string  `json:"libelle_surface"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	ExternalUpdatedAt *string  `json:"external_updated_at"`
}

// TerrainFromObject builds a Terrain from its JSON object
func TerrainFromObject(o Object) Terrain {
	return Terrain{
		ID:                o.OptInt("te_no"),
		Name:              o.String("name", ""),
		Address:           o.OptString("address"),
		ZipCode:           o.OptString("zip_code"),
		City:              o.OptString("city"),
		Surface:           o.OptString("libelle_surface"),
		Latitude:          o.OptFloat("latitude"),
		Longitude:         o.OptFloat("longitude"),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}
}

// Club represents a football club. Members are passed through as returned
// by the API.
type Club struct {
	ID                *int64    `json:"cl_no"`
	Name              string    `json:"name"`
	ShortName         string    `json:"short_name"`
	Location          string    `json:"location"`
	AffiliationNumber *int64    `json:"affiliation_number"`
	District          *District `json:"district"`
	DepartmentCode    *string   `json:"department_code"`
	Colors            *string   `json:"colors"`
	Logo              *string   `json:"logo"`
	Address1          *string   `json:"address1"`
	Address2          *string   `json:"address2"`
	Address3          *string   `json:"address3"`
	PostalCode        *string   `json:"postal_code"`
	DistributorOffice *string   `json:"distributor_office"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	Contacts          []Contact `json:"contacts"`
	Terrains          []Terrain `json:"terrains"`
	Members           []any     `json:"membres"`
}

// ClubFromObject builds a Club from the /api/clubs/{id}.json payload.
//
// Missing fields take their zero value; a missing, null or empty district
// leaves District nil.
func ClubFromObject(o Object) *Club {
	club := &Club{
		ID:                o.OptInt("cl_no"),
		Name:              o.String("name", ""),
		ShortName:         o.String("short_name", ""),
		Location:          o.String("location", ""),
		AffiliationNumber: o.OptInt("affiliation_number"),
		DepartmentCode:    o.OptString("department_code"),
		Colors:            o.OptString("colors"),
		Logo:              o.OptString("logo"),
		Address1:          o.OptString("address1"),
		Address2:          o.OptString("address2"),
		Address3:          o.OptString("address3"),
		PostalCode:        o.OptString("postal_code"),
		DistributorOffice: o.OptString("distributor_office"),
		Latitude:          o.OptFloat("latitude"),
		Longitude:         o.OptFloat("longitude"),
		Members:           o.List("membres"),
	}

	if d, ok := o.Object("district"); ok {
		district := DistrictFromObject(d)
		club.District = &district
	}

	contacts := o.Objects("contacts")
	club.Contacts = make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		club.Contacts = append(club.Contacts, ContactFromObject(c))
	}

	terrains := o.Objects("terrains")
	club.Terrains = make([]Terrain, 0, len(terrains))
	for _, t := range terrains {
		club.Terrains = append(club.Terrains, TerrainFromObject(t))
	}

	return club
}

// FullAddress returns the postal address on one line, skipping empty parts
func (c *Club) FullAddress() string {
	var parts []string
	for _, p := range []*string{c.Address1, c.Address2, c.Address3} {
		if s := deref(p); s != "" {
			parts = append(parts, s)
		}
	}

	if postal := deref(c.PostalCode); postal != "" {
		line := postal
		if office := deref(c.DistributorOffice); office != "" {
			line += " " + office
		}
		parts = append(parts, line)
	}

	return strings.Join(parts, ", ")
}

// PhoneNumbers returns the value of every phone contact, in source order
func (c *Club) PhoneNumbers() []string {
	phones := make([]string, 0, len(c.Contacts))
	for i := range c.Contacts {
		if c.Contacts[i].IsPhone() {
			phones = append(phones, c.Contacts[i].Value)
		}
	}
	return phones
}

// String implements fmt.Stringer
func (c *Club) String() string {
	return fmt.Sprintf("Club %s: %s (%s)", formatID(c.ID), c.Name, c.Location)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatID(id *int64) string {
	if id == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *id)
}
