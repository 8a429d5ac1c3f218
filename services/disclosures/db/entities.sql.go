package db

import "context"

const upsertEntity = `
INSERT INTO entities (
    id, name, also_known_as, entity_type, status, street_address,
    suite_po_box, city, state, zip_code, date_created, source_url, raw_data
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    also_known_as = excluded.also_known_as,
    entity_type = excluded.entity_type,
    status = excluded.status,
    street_address = excluded.street_address,
    suite_po_box = excluded.suite_po_box,
    city = excluded.city,
    state = excluded.state,
    zip_code = excluded.zip_code,
    date_created = excluded.date_created,
    source_url = excluded.source_url,
    raw_data = excluded.raw_data
`

func (q *Queries) UpsertEntity(ctx context.Context, arg Entity) error {
	_, err := q.db.ExecContext(ctx, upsertEntity,
		arg.ID,
		arg.Name,
		arg.AlsoKnownAs,
		arg.EntityType,
		arg.Status,
		arg.StreetAddress,
		arg.SuitePoBox,
		arg.City,
		arg.State,
		arg.ZipCode,
		arg.DateCreated,
		arg.SourceUrl,
		arg.RawData,
	)
	return err
}

const getEntity = `
SELECT id, name, also_known_as, entity_type, status, street_address,
    suite_po_box, city, state, zip_code, date_created, source_url, raw_data
FROM entities
WHERE id = ?
`

func (q *Queries) GetEntity(ctx context.Context, id string) (Entity, error) {
	row := q.db.QueryRowContext(ctx, getEntity, id)
	var i Entity
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.AlsoKnownAs,
		&i.EntityType,
		&i.Status,
		&i.StreetAddress,
		&i.SuitePoBox,
		&i.City,
		&i.State,
		&i.ZipCode,
		&i.DateCreated,
		&i.SourceUrl,
		&i.RawData,
	)
	return i, err
}

const listEntityNames = `
SELECT id, name, also_known_as FROM entities ORDER BY id
`

type ListEntityNamesRow struct {
	ID          string
	Name        string
	AlsoKnownAs string
}

func (q *Queries) ListEntityNames(ctx context.Context) ([]ListEntityNamesRow, error) {
	rows, err := q.db.QueryContext(ctx, listEntityNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListEntityNamesRow
	for rows.Next() {
		var i ListEntityNamesRow
		if err := rows.Scan(&i.ID, &i.Name, &i.AlsoKnownAs); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const deleteOfficersByEntity = `
DELETE FROM entity_officers WHERE entity_id = ?
`

func (q *Queries) DeleteOfficersByEntity(ctx context.Context, entityID string) error {
	_, err := q.db.ExecContext(ctx, deleteOfficersByEntity, entityID)
	return err
}

const createEntityOfficer = `
INSERT INTO entity_officers (
    entity_id, name, title, phone, email, street_address,
    city, state, zip_code, position, is_treasurer
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateEntityOfficerParams struct {
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

func (q *Queries) CreateEntityOfficer(ctx context.Context, arg CreateEntityOfficerParams) error {
	_, err := q.db.ExecContext(ctx, createEntityOfficer,
		arg.EntityID,
		arg.Name,
		arg.Title,
		arg.Phone,
		arg.Email,
		arg.StreetAddress,
		arg.City,
		arg.State,
		arg.ZipCode,
		arg.Position,
		arg.IsTreasurer,
	)
	return err
}

const listEntityOfficers = `
SELECT id, entity_id, name, title, phone, email, street_address,
    city, state, zip_code, position, is_treasurer
FROM entity_officers
WHERE entity_id = ?
ORDER BY position
`

func (q *Queries) ListEntityOfficers(ctx context.Context, entityID string) ([]EntityOfficer, error) {
	rows, err := q.db.QueryContext(ctx, listEntityOfficers, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EntityOfficer
	for rows.Next() {
		var i EntityOfficer
		err := rows.Scan(
			&i.ID,
			&i.EntityID,
			&i.Name,
			&i.Title,
			&i.Phone,
			&i.Email,
			&i.StreetAddress,
			&i.City,
			&i.State,
			&i.ZipCode,
			&i.Position,
			&i.IsTreasurer,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
