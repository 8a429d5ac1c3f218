package disclosures

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"polstats-backend/lib/scrapers/disclosures"
	"polstats-backend/lib/textutil"
	"polstats-backend/lib/timezone"
	"polstats-backend/services/disclosures/db"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/disclosures")

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

func nullTime(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func marshalString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// ImportReport stores an extracted disclosure report under the given entity.
// Re-importing the same report replaces its metadata and all of its
// transaction rows, so amended filings never double-count.
func (s Service) ImportReport(ctx context.Context, reportId, entityId string, report disclosures.Report) error {
	ctx, span := tracer.Start(ctx, "ImportReport")
	defer span.End()

	span.SetAttributes(
		attribute.String("report_id", reportId),
		attribute.String("entity_id", entityId),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.UpsertReport(ctx, db.UpsertReportParams{
		ID:               reportId,
		EntityID:         entityId,
		ReportType:       "financial",
		Title:            report.Info.Get("title"),
		OrganizationType: report.Info.Get("organization_type"),
		SourceUrl:        report.SourceUrl,
		RawInfo:          marshalString(report.Info),
		BalanceSummary:   marshalString(report.BalanceSummary),
		ImportedAt:       timezone.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = txqry.DeleteContributionsByReport(ctx, reportId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	err = txqry.DeleteExpendituresByReport(ctx, reportId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, c := range report.Contributions {
		err := txqry.CreateContribution(ctx, db.CreateContributionParams{
			ReportID:        reportId,
			DateRaw:         c.DateRaw,
			Date:            nullTime(c.Date),
			ContributorName: c.ContributorName,
			Address:         c.Address,
			InKind:          c.InKind,
			Loan:            c.Loan,
			Amendment:       c.Amendment,
			Amount:          c.Amount,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	for _, e := range report.Expenditures {
		err := txqry.CreateExpenditure(ctx, db.CreateExpenditureParams{
			ReportID:      reportId,
			DateRaw:       e.DateRaw,
			Date:          nullTime(e.Date),
			RecipientName: e.RecipientName,
			Purpose:       e.Purpose,
			InKind:        e.InKind,
			Loan:          e.Loan,
			Amendment:     e.Amendment,
			Amount:        e.Amount,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// ImportLobbyistReport stores an extracted lobbyist expenditure report under
// the given lobbyist, with the same replace-on-reimport behavior as
// ImportReport.
func (s Service) ImportLobbyistReport(ctx context.Context, reportId, lobbyistId string, report disclosures.LobbyistReport) error {
	ctx, span := tracer.Start(ctx, "ImportLobbyistReport")
	defer span.End()

	span.SetAttributes(
		attribute.String("report_id", reportId),
		attribute.String("lobbyist_id", lobbyistId),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.UpsertReport(ctx, db.UpsertReportParams{
		ID:               reportId,
		EntityID:         lobbyistId,
		ReportType:       report.ReportType,
		Title:            report.Info.Get("title"),
		OrganizationType: report.Info.Get("organization_type"),
		SourceUrl:        report.SourceUrl,
		RawInfo:          marshalString(report.Info),
		BalanceSummary:   marshalString(report.BalanceSummary),
		ImportedAt:       timezone.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = txqry.DeleteLobbyistExpendituresByReport(ctx, reportId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, e := range report.Expenditures {
		err := txqry.CreateLobbyistExpenditure(ctx, db.CreateLobbyistExpenditureParams{
			ReportID:      reportId,
			DateRaw:       e.DateRaw,
			Date:          nullTime(e.Date),
			RecipientName: e.RecipientName,
			Location:      e.Location,
			Purpose:       e.Purpose,
			Amendment:     e.Amendment,
			Amount:        e.Amount,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// ImportEntity stores an extracted entity registration and replaces its
// officer rows.
func (s Service) ImportEntity(ctx context.Context, entity disclosures.EntityRegistration) error {
	ctx, span := tracer.Start(ctx, "ImportEntity")
	defer span.End()

	span.SetAttributes(attribute.String("entity_id", entity.EntityId))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.UpsertEntity(ctx, db.Entity{
		ID:            entity.EntityId,
		Name:          entity.Name,
		AlsoKnownAs:   entity.AlsoKnownAs,
		EntityType:    entity.EntityType,
		Status:        entity.Status,
		StreetAddress: entity.StreetAddress,
		SuitePoBox:    entity.SuitePoBox,
		City:          entity.City,
		State:         entity.State,
		ZipCode:       entity.Zip,
		DateCreated:   nullTime(entity.DateCreated),
		SourceUrl:     entity.SourceUrl,
		RawData:       marshalString(entity.RawData),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = txqry.DeleteOfficersByEntity(ctx, entity.EntityId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	for _, o := range entity.Officers {
		err := txqry.CreateEntityOfficer(ctx, db.CreateEntityOfficerParams{
			EntityID:      entity.EntityId,
			Name:          o.Name,
			Title:         o.Title,
			Phone:         o.Phone,
			Email:         o.Email,
			StreetAddress: o.StreetAddress,
			City:          o.City,
			State:         o.State,
			ZipCode:       o.Zip,
			Position:      int64(o.Order),
			IsTreasurer:   o.IsTreasurer,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// ImportLobbyistEntity stores an extracted lobbyist registration and
// replaces its principal rows.
func (s Service) ImportLobbyistEntity(ctx context.Context, lobbyist disclosures.LobbyistRegistration) error {
	ctx, span := tracer.Start(ctx, "ImportLobbyistEntity")
	defer span.End()

	span.SetAttributes(attribute.String("lobbyist_id", lobbyist.EntityId))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.UpsertLobbyist(ctx, db.Lobbyist{
		ID:               lobbyist.EntityId,
		Name:             lobbyist.Name,
		FirstName:        lobbyist.FirstName,
		LastName:         lobbyist.LastName,
		OrganizationName: lobbyist.OrganizationName,
		Phone:            lobbyist.Phone,
		StreetAddress:    lobbyist.StreetAddress,
		City:             lobbyist.City,
		State:            lobbyist.State,
		ZipCode:          lobbyist.Zip,
		LobbyingPurposes: lobbyist.LobbyingPurposes,
		DateCreated:      nullTime(lobbyist.DateCreated),
		SourceUrl:        lobbyist.SourceUrl,
		RawData:          marshalString(lobbyist.RawData),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = txqry.DeletePrincipalsByLobbyist(ctx, lobbyist.EntityId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	for _, p := range lobbyist.Principals {
		err := txqry.CreateLobbyistPrincipal(ctx, db.CreateLobbyistPrincipalParams{
			LobbyistID: lobbyist.EntityId,
			Name:       p.Name,
			Contact:    p.Contact,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// HasReport reports whether a report with the given id has been imported.
func (s Service) HasReport(ctx context.Context, reportId string) (bool, error) {
	_, err := s.qry.GetReport(ctx, reportId)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// HasEntity reports whether an entity registration has been imported.
func (s Service) HasEntity(ctx context.Context, entityId string) (bool, error) {
	_, err := s.qry.GetEntity(ctx, entityId)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// HasLobbyist reports whether a lobbyist registration has been imported.
func (s Service) HasLobbyist(ctx context.Context, lobbyistId string) (bool, error) {
	_, err := s.qry.GetLobbyist(ctx, lobbyistId)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// TopContributors returns the biggest inflows to an entity, aggregated by
// contributor name across all of its imported reports. The entity's own name
// is excluded so self-transfers don't show up as flows.
func (s Service) TopContributors(ctx context.Context, entityId string, limit int) ([]FlowTotal, error) {
	ctx, span := tracer.Start(ctx, "TopContributors")
	defer span.End()

	rows, err := s.qry.TopContributors(ctx, db.TopContributorsParams{
		EntityID: entityId,
		Limit:    int64(limit),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]FlowTotal, len(rows))
	for i, r := range rows {
		out[i] = FlowTotal{Name: r.ContributorName, Total: r.Total}
	}
	return out, nil
}

// TopRecipients returns the biggest outflows from an entity, aggregated by
// recipient name across all of its imported reports, excluding the entity's
// own name.
func (s Service) TopRecipients(ctx context.Context, entityId string, limit int) ([]FlowTotal, error) {
	ctx, span := tracer.Start(ctx, "TopRecipients")
	defer span.End()

	rows, err := s.qry.TopRecipients(ctx, db.TopRecipientsParams{
		EntityID: entityId,
		Limit:    int64(limit),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]FlowTotal, len(rows))
	for i, r := range rows {
		out[i] = FlowTotal{Name: r.RecipientName, Total: r.Total}
	}
	return out, nil
}

// InStateShare reports the fraction of an entity's contribution dollars
// whose address resolves to homeState. Contributions with no recognizable
// state count toward the denominator only. Returns 0 when the entity has no
// contributions.
func (s Service) InStateShare(ctx context.Context, entityId, homeState string) (float64, error) {
	ctx, span := tracer.Start(ctx, "InStateShare")
	defer span.End()

	rows, err := s.qry.ListContributionsByEntity(ctx, entityId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	var total, inState float64
	for _, r := range rows {
		total += r.Amount
		if disclosures.ExtractState(r.Address) == homeState {
			inState += r.Amount
		}
	}
	if total == 0 {
		return 0, nil
	}
	return inState / total, nil
}

type OrganizationMatch struct {
	EntityId string
	Name     string
	Score    float64
}

// ResolveOrganization finds the known entity whose name best matches the
// given free-text name, using Jaro-Winkler similarity over normalized names.
// Aliases count too, so "BRP" resolves to an entity known as such. Returns
// sql.ErrNoRows when no entities are stored.
func (s Service) ResolveOrganization(ctx context.Context, name string) (OrganizationMatch, error) {
	ctx, span := tracer.Start(ctx, "ResolveOrganization")
	defer span.End()

	span.SetAttributes(attribute.String("name", name))

	rows, err := s.qry.ListEntityNames(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return OrganizationMatch{}, err
	}
	if len(rows) == 0 {
		return OrganizationMatch{}, sql.ErrNoRows
	}

	target := textutil.NormalizeName(name)
	var best OrganizationMatch
	for _, r := range rows {
		score := matchr.JaroWinkler(target, textutil.NormalizeName(r.Name), false)
		if r.AlsoKnownAs != "" {
			alias := matchr.JaroWinkler(target, textutil.NormalizeName(r.AlsoKnownAs), false)
			if alias > score {
				score = alias
			}
		}
		if score > best.Score {
			best = OrganizationMatch{EntityId: r.ID, Name: r.Name, Score: score}
		}
	}
	return best, nil
}

// SearchOrganizations returns every stored entity whose name contains all
// the significant words of the query, ignoring case. Short filler words
// ("of", "to") don't constrain the match.
func (s Service) SearchOrganizations(ctx context.Context, query string) ([]OrganizationMatch, error) {
	ctx, span := tracer.Start(ctx, "SearchOrganizations")
	defer span.End()

	span.SetAttributes(attribute.String("query", query))

	rows, err := s.qry.ListEntityNames(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	words := textutil.SignificantWords(strings.ToLower(query))
	var out []OrganizationMatch
	for _, r := range rows {
		name := strings.ToLower(r.Name)
		matched := true
		for _, w := range words {
			if !strings.Contains(name, w) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, OrganizationMatch{EntityId: r.ID, Name: r.Name, Score: 1})
		}
	}
	return out, nil
}
