package disclosures

import (
	"polstats-backend/lib/htmlutil"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// EntityRegistration is the structured result of extracting one entity
// registration page (PAC, party, corporation, candidate committee).
type EntityRegistration struct {
	EntityId       string     `json:"entity_id"`
	SourceUrl      string     `json:"source_url"`
	Name           string     `json:"name"`
	AlsoKnownAs    string     `json:"also_known_as"`
	DateCreatedRaw string     `json:"date_created"`
	DateCreated    *time.Time `json:"date_created_parsed"`
	EntityType     string     `json:"entity_type"`
	Status         string     `json:"status"`
	StreetAddress  string     `json:"street_address"`
	SuitePoBox     string     `json:"suite_po_box"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Zip            string     `json:"zip_code"`
	RawData        *FieldMap  `json:"raw_data"`
	Officers       []Officer  `json:"officers"`
}

// Officer is one officer block of an entity registration. Order is the
// 0-based position in which the block was discovered on the page.
type Officer struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip_code"`
	Order         int    `json:"order"`
	IsTreasurer   bool   `json:"is_treasurer"`
}

// registration fields appear once for the entity itself and again inside
// officer and affiliated-organization blocks further down the page; the
// first occurrence is always the entity's own.
var entityFieldRules = []fieldRule{
	{label: "Name", field: "name"},
	{label: "Also known as", field: "also_known_as"},
	{label: "Date Created", field: "date_created"},
	{label: "Type", field: "entity_type"},
	{label: "Entity Type", field: "entity_type"},
	{label: "Registration Type", field: "entity_type"},
	{label: "Status", field: "status"},
	{label: "Street Address", field: "street_address"},
	{label: "Suite/PO Box", field: "suite_po_box"},
	{label: "City", field: "city"},
	{label: "State", field: "state"},
	{label: "Zip", field: "zip_code"},
}

// ParseEntity extracts an entity registration and its officer blocks.
func ParseEntity(d Document, entityId string) EntityRegistration {
	raw, promoted := CollectFields(d, entityFieldRules)

	return EntityRegistration{
		EntityId:       entityId,
		Name:           promoted["name"],
		AlsoKnownAs:    promoted["also_known_as"],
		DateCreatedRaw: promoted["date_created"],
		DateCreated:    ParseDate(promoted["date_created"]),
		EntityType:     promoted["entity_type"],
		Status:         promoted["status"],
		StreetAddress:  promoted["street_address"],
		SuitePoBox:     promoted["suite_po_box"],
		City:           promoted["city"],
		State:          promoted["state"],
		Zip:            promoted["zip_code"],
		RawData:        raw,
		Officers:       parseOfficers(d),
	}
}

var officerMarkers = []string{
	"Name of Primary Officer",
	"Name of additional",
	"Name of the PAC Chief Financial Officer",
}

func isOfficerMarker(text string) bool {
	for _, m := range officerMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func isSectionStart(n *html.Node) bool {
	if !htmlutil.HasAttrContaining(n, "style", "font-weight: bold") {
		return false
	}
	return strings.Contains(htmlutil.NodeText(n), "Name of")
}

// how many divs to walk forward from a marker before giving up on finding
// the next one; officer blocks are shallow, this bound only guards against
// runaway scans on degenerate markup
const officerBlockScanLimit = 20

// parseOfficers segments the page into officer blocks. Officer data has no
// wrapping container: each block starts at a bold span whose text names the
// officer section and runs until the next such span (or the scan limit).
// Blocks that never assemble a name produce no record.
func parseOfficers(d Document) []Officer {
	var out []Officer
	order := 0

	for _, span := range d.BoldSpans() {
		markerText := htmlutil.NodeText(span)
		if !isOfficerMarker(markerText) {
			continue
		}

		officer := Officer{
			Order: order,
			IsTreasurer: strings.Contains(markerText, "Chief Financial Officer") ||
				strings.Contains(markerText, "Treasurer"),
		}
		order++

		container := htmlutil.ClosestAncestor(span, "div")
		if container == nil {
			continue
		}

		var first, middle, last string
		current := container
		for i := 0; i < officerBlockScanLimit; i++ {
			next := htmlutil.NextElement(current, "div")
			if next == nil {
				break
			}

			sectionEnd := false
			for _, s := range htmlutil.ElementsWithin(next, "span") {
				if isSectionStart(s) {
					sectionEnd = true
					break
				}
			}
			if sectionEnd {
				break
			}

			for _, label := range htmlutil.ElementsWithin(next, "label") {
				text := labelText(label)
				value := labelValue(label)

				switch {
				case strings.Contains(text, "First"):
					first = value
				case strings.Contains(text, "Middle"):
					middle = value
				case strings.Contains(text, "Last"):
					last = value
				case text == "Title":
					officer.Title = value
				case text == "Phone":
					officer.Phone = value
				case text == "Email":
					officer.Email = value
				case strings.Contains(text, "Address"):
					addr := ParseAddress(value)
					officer.StreetAddress = addr.Street
					officer.City = addr.City
					officer.State = addr.State
					officer.Zip = addr.Zip
				}
			}

			current = next
		}

		var nameParts []string
		for _, p := range []string{first, middle, last} {
			if p != "" {
				nameParts = append(nameParts, p)
			}
		}
		if len(nameParts) == 0 {
			continue
		}
		officer.Name = strings.Join(nameParts, " ")

		out = append(out, officer)
	}

	return out
}
