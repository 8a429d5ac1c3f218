package db

import "context"

const upsertLobbyist = `
INSERT INTO lobbyists (
    id, name, first_name, last_name, organization_name, phone,
    street_address, city, state, zip_code, lobbying_purposes,
    date_created, source_url, raw_data
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    first_name = excluded.first_name,
    last_name = excluded.last_name,
    organization_name = excluded.organization_name,
    phone = excluded.phone,
    street_address = excluded.street_address,
    city = excluded.city,
    state = excluded.state,
    zip_code = excluded.zip_code,
    lobbying_purposes = excluded.lobbying_purposes,
    date_created = excluded.date_created,
    source_url = excluded.source_url,
    raw_data = excluded.raw_data
`

func (q *Queries) UpsertLobbyist(ctx context.Context, arg Lobbyist) error {
	_, err := q.db.ExecContext(ctx, upsertLobbyist,
		arg.ID,
		arg.Name,
		arg.FirstName,
		arg.LastName,
		arg.OrganizationName,
		arg.Phone,
		arg.StreetAddress,
		arg.City,
		arg.State,
		arg.ZipCode,
		arg.LobbyingPurposes,
		arg.DateCreated,
		arg.SourceUrl,
		arg.RawData,
	)
	return err
}

const getLobbyist = `
SELECT id, name, first_name, last_name, organization_name, phone,
    street_address, city, state, zip_code, lobbying_purposes,
    date_created, source_url, raw_data
FROM lobbyists
WHERE id = ?
`

func (q *Queries) GetLobbyist(ctx context.Context, id string) (Lobbyist, error) {
	row := q.db.QueryRowContext(ctx, getLobbyist, id)
	var i Lobbyist
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.FirstName,
		&i.LastName,
		&i.OrganizationName,
		&i.Phone,
		&i.StreetAddress,
		&i.City,
		&i.State,
		&i.ZipCode,
		&i.LobbyingPurposes,
		&i.DateCreated,
		&i.SourceUrl,
		&i.RawData,
	)
	return i, err
}

const deletePrincipalsByLobbyist = `
DELETE FROM lobbyist_principals WHERE lobbyist_id = ?
`

func (q *Queries) DeletePrincipalsByLobbyist(ctx context.Context, lobbyistID string) error {
	_, err := q.db.ExecContext(ctx, deletePrincipalsByLobbyist, lobbyistID)
	return err
}

const createLobbyistPrincipal = `
INSERT INTO lobbyist_principals (lobbyist_id, name, contact)
VALUES (?, ?, ?)
`

type CreateLobbyistPrincipalParams struct {
	LobbyistID string
	Name       string
	Contact    string
}

func (q *Queries) CreateLobbyistPrincipal(ctx context.Context, arg CreateLobbyistPrincipalParams) error {
	_, err := q.db.ExecContext(ctx, createLobbyistPrincipal,
		arg.LobbyistID,
		arg.Name,
		arg.Contact,
	)
	return err
}

const listLobbyistPrincipals = `
SELECT id, lobbyist_id, name, contact
FROM lobbyist_principals
WHERE lobbyist_id = ?
ORDER BY id
`

func (q *Queries) ListLobbyistPrincipals(ctx context.Context, lobbyistID string) ([]LobbyistPrincipal, error) {
	rows, err := q.db.QueryContext(ctx, listLobbyistPrincipals, lobbyistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LobbyistPrincipal
	for rows.Next() {
		var i LobbyistPrincipal
		if err := rows.Scan(&i.ID, &i.LobbyistID, &i.Name, &i.Contact); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
