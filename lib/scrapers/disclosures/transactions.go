package disclosures

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Contribution is one row of an itemized contribution table.
type Contribution struct {
	DateRaw         string     `json:"date_received"`
	Date            *time.Time `json:"date_received_parsed"`
	ContributorName string     `json:"contributor_name"`
	Address         string     `json:"address"`
	InKind          bool       `json:"in_kind"`
	Loan            bool       `json:"loan"`
	Amendment       bool       `json:"amendment"`
	Amount          float64    `json:"amount"`
}

// Expenditure is one row of an itemized expenditure table.
type Expenditure struct {
	DateRaw       string     `json:"date"`
	Date          *time.Time `json:"date_parsed"`
	RecipientName string     `json:"recipient_name"`
	Purpose       string     `json:"purpose"`
	InKind        bool       `json:"in_kind"`
	Loan          bool       `json:"loan"`
	Amendment     bool       `json:"amendment"`
	Amount        float64    `json:"amount"`
}

// LobbyistExpenditure is one row of a lobbyist expenditure report table.
// Lobbyist rows carry only the amendment flag.
type LobbyistExpenditure struct {
	DateRaw       string     `json:"date"`
	Date          *time.Time `json:"date_parsed"`
	RecipientName string     `json:"recipient_name"`
	Location      string     `json:"location"`
	Purpose       string     `json:"purpose"`
	Amendment     bool       `json:"amendment"`
	Amount        float64    `json:"amount"`
}

// amountColumn scans cell texts right to left and returns the index of the
// first cell holding a dollar sign or a purely numeric string. Transaction
// rows have drifted between 6, 7 and 8 cells over the years, so the amount
// is located by content, never by a fixed index. Falls back to the last
// cell when nothing matches.
func amountColumn(texts []string) int {
	for i := len(texts) - 1; i >= 0; i-- {
		if strings.Contains(texts[i], "$") || looksNumeric(texts[i]) {
			return i
		}
	}
	return len(texts) - 1
}

// flagSet reports whether a flag cell is marked: it must contain both the
// anchor marker element and non-empty text. An empty or marker-less cell is
// an unset flag, never an error.
func flagSet(cell *goquery.Selection) bool {
	return cell.Find("a.anchorLink").Length() > 0 && cellText(cell) != ""
}

func rowCells(row *goquery.Selection) ([]*goquery.Selection, []string) {
	var cells []*goquery.Selection
	var texts []string
	row.Find("td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, cell)
		texts = append(texts, cellText(cell))
	})
	return cells, texts
}

// ParseContributions extracts the itemized contribution table. The header
// keyword match excludes "Expenditure" because combined filings title the
// expenditure table with both words. Rows with fewer than 7 cells are
// skipped; flag columns sit at fixed offsets left of the amount column
// (amendment -1, loan -2, in-kind -3).
func ParseContributions(d Document) []Contribution {
	table := d.TransactionTable("Contribution", "Expenditure")
	if table == nil {
		return nil
	}

	var out []Contribution
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells, texts := rowCells(row)
		if len(cells) < 7 {
			return
		}

		amountIdx := amountColumn(texts)
		amendmentIdx := amountIdx - 1
		loanIdx := amountIdx - 2
		inKindIdx := amountIdx - 3

		out = append(out, Contribution{
			DateRaw:         texts[0],
			Date:            ParseDate(texts[0]),
			ContributorName: texts[1],
			Address:         texts[2],
			InKind:          inKindIdx >= 3 && flagSet(cells[inKindIdx]),
			Loan:            loanIdx >= 3 && flagSet(cells[loanIdx]),
			Amendment:       amendmentIdx >= 3 && flagSet(cells[amendmentIdx]),
			Amount:          ParseCurrency(texts[amountIdx]),
		})
	})
	return out
}

// ParseExpenditures extracts the itemized expenditure table, with the same
// amount-column scan and flag offsets as contributions.
func ParseExpenditures(d Document) []Expenditure {
	table := d.TransactionTable("Expenditure", "")
	if table == nil {
		return nil
	}

	var out []Expenditure
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells, texts := rowCells(row)
		if len(cells) < 7 {
			return
		}

		amountIdx := amountColumn(texts)
		amendmentIdx := amountIdx - 1
		loanIdx := amountIdx - 2
		inKindIdx := amountIdx - 3

		out = append(out, Expenditure{
			DateRaw:       texts[0],
			Date:          ParseDate(texts[0]),
			RecipientName: texts[1],
			Purpose:       texts[2],
			InKind:        inKindIdx >= 3 && flagSet(cells[inKindIdx]),
			Loan:          loanIdx >= 3 && flagSet(cells[loanIdx]),
			Amendment:     amendmentIdx >= 3 && flagSet(cells[amendmentIdx]),
			Amount:        ParseCurrency(texts[amountIdx]),
		})
	})
	return out
}

// ParseLobbyistExpenditures extracts the expenditure table of a lobbyist
// report: 6 cells minimum (date, recipient, location, purpose, amendment,
// amount) with only the amendment flag at offset -1 from the amount.
func ParseLobbyistExpenditures(d Document) []LobbyistExpenditure {
	table := d.TransactionTable("Expenditure", "")
	if table == nil {
		return nil
	}

	var out []LobbyistExpenditure
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells, texts := rowCells(row)
		if len(cells) < 6 {
			return
		}

		amountIdx := amountColumn(texts)
		amendmentIdx := amountIdx - 1

		out = append(out, LobbyistExpenditure{
			DateRaw:       texts[0],
			Date:          ParseDate(texts[0]),
			RecipientName: texts[1],
			Location:      texts[2],
			Purpose:       texts[3],
			Amendment:     amendmentIdx >= 0 && flagSet(cells[amendmentIdx]),
			Amount:        ParseCurrency(texts[amountIdx]),
		})
	})
	return out
}
