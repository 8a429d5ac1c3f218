package disclosures

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// LobbyistRegistration is the structured result of extracting one lobbyist
// registration page.
type LobbyistRegistration struct {
	EntityId         string      `json:"entity_id"`
	SourceUrl        string      `json:"source_url"`
	Name             string      `json:"name"`
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	OrganizationName string      `json:"organization_name"`
	Phone            string      `json:"phone"`
	DateCreatedRaw   string      `json:"date_created"`
	DateCreated      *time.Time  `json:"date_created_parsed"`
	StreetAddress    string      `json:"street_address"`
	City             string      `json:"city"`
	State            string      `json:"state"`
	Zip              string      `json:"zip_code"`
	LobbyingPurposes string      `json:"lobbying_purposes"`
	RawData          *FieldMap   `json:"raw_data"`
	Principals       []Principal `json:"principals"`
}

// Principal is one row of a lobbyist's principal table: an organization the
// lobbyist represents, with its contact person.
type Principal struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

var lobbyistFieldRules = []fieldRule{
	{label: "First Name", contains: true, field: "first_name"},
	{label: "Last Name", contains: true, field: "last_name"},
	{label: "Telephone", field: "phone"},
	{label: "Registration Date", contains: true, field: "date_created"},
	{label: "Organization Name", contains: true, field: "organization_name"},
	{label: "Street Address", field: "street_address"},
	{label: "City", field: "city"},
	{label: "State", field: "state"},
	{label: "Zip", field: "zip_code"},
	{label: "Principal Name", contains: true, field: "principal_name"},
	{label: "General Purposes", contains: true, field: "lobbying_purposes"},
	{label: "Nature", contains: true, field: "lobbying_purposes"},
}

// ParseLobbyistEntity extracts a lobbyist registration and its principal
// tables. The display name falls back through three sources: the lobbyist's
// own first/last name, their organization, then the first principal named in
// the fields.
func ParseLobbyistEntity(d Document, entityId string) LobbyistRegistration {
	raw, promoted := CollectFields(d, lobbyistFieldRules)

	name := strings.TrimSpace(promoted["first_name"] + " " + promoted["last_name"])
	if name == "" {
		name = promoted["organization_name"]
	}
	if name == "" {
		name = promoted["principal_name"]
	}

	return LobbyistRegistration{
		EntityId:         entityId,
		Name:             name,
		FirstName:        promoted["first_name"],
		LastName:         promoted["last_name"],
		OrganizationName: promoted["organization_name"],
		Phone:            promoted["phone"],
		DateCreatedRaw:   promoted["date_created"],
		DateCreated:      ParseDate(promoted["date_created"]),
		StreetAddress:    promoted["street_address"],
		City:             promoted["city"],
		State:            promoted["state"],
		Zip:              promoted["zip_code"],
		LobbyingPurposes: promoted["lobbying_purposes"],
		RawData:          raw,
		Principals:       parsePrincipals(d),
	}
}

// parsePrincipals collects rows from every table whose header mentions
// "Principal". Registrations can carry several of these tables (current and
// historical principals); all of them are read.
func parsePrincipals(d Document) []Principal {
	var out []Principal

	d.doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if !strings.Contains(table.Find("thead").Text(), "Principal") {
			return
		}
		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 2 {
				return
			}
			name := cellText(cells.Eq(0))
			if name == "" {
				return
			}
			out = append(out, Principal{
				Name:    name,
				Contact: cellText(cells.Eq(1)),
			})
		})
	})

	return out
}
