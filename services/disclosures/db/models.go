package db

import "database/sql"

type Report struct {
	ID               string
	EntityID         string
	ReportType       string
	Title            string
	OrganizationType string
	SourceUrl        string
	RawInfo          string
	BalanceSummary   string
	ImportedAt       int64
}

type Contribution struct {
	ID              int64
	ReportID        string
	DateRaw         string
	Date            sql.NullInt64
	ContributorName string
	Address         string
	InKind          bool
	Loan            bool
	Amendment       bool
	Amount          float64
}

type Expenditure struct {
	ID            int64
	ReportID      string
	DateRaw       string
	Date          sql.NullInt64
	RecipientName string
	Purpose       string
	InKind        bool
	Loan          bool
	Amendment     bool
	Amount        float64
}

type LobbyistExpenditure struct {
	ID            int64
	ReportID      string
	DateRaw       string
	Date          sql.NullInt64
	RecipientName string
	Location      string
	Purpose       string
	Amendment     bool
	Amount        float64
}

type Entity struct {
	ID            string
	Name          string
	AlsoKnownAs   string
	EntityType    string
	Status        string
	StreetAddress string
	SuitePoBox    string
	City          string
	State         string
	ZipCode       string
	DateCreated   sql.NullInt64
	SourceUrl     string
	RawData       string
}

type EntityOfficer struct {
	ID            int64
	EntityID      string
	Name          string
	Title         string
	Phone         string
	Email         string
	StreetAddress string
	City          string
	State         string
	ZipCode       string
	Position      int64
	IsTreasurer   bool
}

type Lobbyist struct {
	ID               string
	Name             string
	FirstName        string
	LastName         string
	OrganizationName string
	Phone            string
	StreetAddress    string
	City             string
	State            string
	ZipCode          string
	LobbyingPurposes string
	DateCreated      sql.NullInt64
	SourceUrl        string
	RawData          string
}

type LobbyistPrincipal struct {
	ID         int64
	LobbyistID string
	Name       string
	Contact    string
}
