package db

import (
	"context"
	"database/sql"
)

const upsertReport = `
INSERT INTO reports (
    id, entity_id, report_type, title, organization_type,
    source_url, raw_info, balance_summary, imported_at
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    entity_id = excluded.entity_id,
    report_type = excluded.report_type,
    title = excluded.title,
    organization_type = excluded.organization_type,
    source_url = excluded.source_url,
    raw_info = excluded.raw_info,
    balance_summary = excluded.balance_summary,
    imported_at = excluded.imported_at
`

type UpsertReportParams struct {
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

func (q *Queries) UpsertReport(ctx context.Context, arg UpsertReportParams) error {
	_, err := q.db.ExecContext(ctx, upsertReport,
		arg.ID,
		arg.EntityID,
		arg.ReportType,
		arg.Title,
		arg.OrganizationType,
		arg.SourceUrl,
		arg.RawInfo,
		arg.BalanceSummary,
		arg.ImportedAt,
	)
	return err
}

const getReport = `
SELECT id, entity_id, report_type, title, organization_type,
    source_url, raw_info, balance_summary, imported_at
FROM reports
WHERE id = ?
`

func (q *Queries) GetReport(ctx context.Context, id string) (Report, error) {
	row := q.db.QueryRowContext(ctx, getReport, id)
	var i Report
	err := row.Scan(
		&i.ID,
		&i.EntityID,
		&i.ReportType,
		&i.Title,
		&i.OrganizationType,
		&i.SourceUrl,
		&i.RawInfo,
		&i.BalanceSummary,
		&i.ImportedAt,
	)
	return i, err
}

const listReportsByEntity = `
SELECT id, entity_id, report_type, title, organization_type,
    source_url, raw_info, balance_summary, imported_at
FROM reports
WHERE entity_id = ?
ORDER BY id
`

func (q *Queries) ListReportsByEntity(ctx context.Context, entityID string) ([]Report, error) {
	rows, err := q.db.QueryContext(ctx, listReportsByEntity, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Report
	for rows.Next() {
		var i Report
		err := rows.Scan(
			&i.ID,
			&i.EntityID,
			&i.ReportType,
			&i.Title,
			&i.OrganizationType,
			&i.SourceUrl,
			&i.RawInfo,
			&i.BalanceSummary,
			&i.ImportedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const deleteContributionsByReport = `
DELETE FROM contributions WHERE report_id = ?
`

func (q *Queries) DeleteContributionsByReport(ctx context.Context, reportID string) error {
	_, err := q.db.ExecContext(ctx, deleteContributionsByReport, reportID)
	return err
}

const deleteExpendituresByReport = `
DELETE FROM expenditures WHERE report_id = ?
`

func (q *Queries) DeleteExpendituresByReport(ctx context.Context, reportID string) error {
	_, err := q.db.ExecContext(ctx, deleteExpendituresByReport, reportID)
	return err
}

const deleteLobbyistExpendituresByReport = `
DELETE FROM lobbyist_expenditures WHERE report_id = ?
`

func (q *Queries) DeleteLobbyistExpendituresByReport(ctx context.Context, reportID string) error {
	_, err := q.db.ExecContext(ctx, deleteLobbyistExpendituresByReport, reportID)
	return err
}

const createContribution = `
INSERT INTO contributions (
    report_id, date_raw, date, contributor_name, address,
    in_kind, loan, amendment, amount
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateContributionParams struct {
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

func (q *Queries) CreateContribution(ctx context.Context, arg CreateContributionParams) error {
	_, err := q.db.ExecContext(ctx, createContribution,
		arg.ReportID,
		arg.DateRaw,
		arg.Date,
		arg.ContributorName,
		arg.Address,
		arg.InKind,
		arg.Loan,
		arg.Amendment,
		arg.Amount,
	)
	return err
}

const createExpenditure = `
INSERT INTO expenditures (
    report_id, date_raw, date, recipient_name, purpose,
    in_kind, loan, amendment, amount
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateExpenditureParams struct {
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

func (q *Queries) CreateExpenditure(ctx context.Context, arg CreateExpenditureParams) error {
	_, err := q.db.ExecContext(ctx, createExpenditure,
		arg.ReportID,
		arg.DateRaw,
		arg.Date,
		arg.RecipientName,
		arg.Purpose,
		arg.InKind,
		arg.Loan,
		arg.Amendment,
		arg.Amount,
	)
	return err
}

const createLobbyistExpenditure = `
INSERT INTO lobbyist_expenditures (
    report_id, date_raw, date, recipient_name, location,
    purpose, amendment, amount
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateLobbyistExpenditureParams struct {
	ReportID      string
	DateRaw       string
	Date          sql.NullInt64
	RecipientName string
	Location      string
	Purpose       string
	Amendment     bool
	Amount        float64
}

func (q *Queries) CreateLobbyistExpenditure(ctx context.Context, arg CreateLobbyistExpenditureParams) error {
	_, err := q.db.ExecContext(ctx, createLobbyistExpenditure,
		arg.ReportID,
		arg.DateRaw,
		arg.Date,
		arg.RecipientName,
		arg.Location,
		arg.Purpose,
		arg.Amendment,
		arg.Amount,
	)
	return err
}

const topContributors = `
SELECT c.contributor_name, SUM(c.amount) AS total
FROM contributions c
JOIN reports r ON c.report_id = r.id
WHERE r.entity_id = ?
  AND c.contributor_name != COALESCE((SELECT name FROM entities WHERE id = r.entity_id), '')
GROUP BY c.contributor_name
ORDER BY total DESC, c.contributor_name
LIMIT ?
`

type TopContributorsParams struct {
	EntityID string
	Limit    int64
}

type TopContributorsRow struct {
	ContributorName string
	Total           float64
}

func (q *Queries) TopContributors(ctx context.Context, arg TopContributorsParams) ([]TopContributorsRow, error) {
	rows, err := q.db.QueryContext(ctx, topContributors, arg.EntityID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TopContributorsRow
	for rows.Next() {
		var i TopContributorsRow
		if err := rows.Scan(&i.ContributorName, &i.Total); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const topRecipients = `
SELECT e.recipient_name, SUM(e.amount) AS total
FROM expenditures e
JOIN reports r ON e.report_id = r.id
WHERE r.entity_id = ?
  AND e.recipient_name != COALESCE((SELECT name FROM entities WHERE id = r.entity_id), '')
GROUP BY e.recipient_name
ORDER BY total DESC, e.recipient_name
LIMIT ?
`

type TopRecipientsParams struct {
	EntityID string
	Limit    int64
}

type TopRecipientsRow struct {
	RecipientName string
	Total         float64
}

func (q *Queries) TopRecipients(ctx context.Context, arg TopRecipientsParams) ([]TopRecipientsRow, error) {
	rows, err := q.db.QueryContext(ctx, topRecipients, arg.EntityID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TopRecipientsRow
	for rows.Next() {
		var i TopRecipientsRow
		if err := rows.Scan(&i.RecipientName, &i.Total); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listContributionsByEntity = `
SELECT c.contributor_name, c.address, c.amount
FROM contributions c
JOIN reports r ON c.report_id = r.id
WHERE r.entity_id = ?
`

type ListContributionsByEntityRow struct {
	ContributorName string
	Address         string
	Amount          float64
}

func (q *Queries) ListContributionsByEntity(ctx context.Context, entityID string) ([]ListContributionsByEntityRow, error) {
	rows, err := q.db.QueryContext(ctx, listContributionsByEntity, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListContributionsByEntityRow
	for rows.Next() {
		var i ListContributionsByEntityRow
		if err := rows.Scan(&i.ContributorName, &i.Address, &i.Amount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
