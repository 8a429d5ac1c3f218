package disclosures

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"polstats-backend/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("polstats.lib.scrapers.disclosures")

// ErrNotFound is returned when the disclosure site has no filing under the
// requested id.
var ErrNotFound = errors.New("filing not found")

// ClientOptions configures a disclosure site client. BaseUrl and UserAgent
// are always provided by the caller; the client never hardcodes either.
type ClientOptions struct {
	BaseUrl          string
	UserAgent        string
	InstrumentOutput restyutil.InstrumentOutput
}

// Client fetches filing pages from a disclosure site and runs the extractors
// over them.
type Client struct {
	http    *resty.Client
	baseUrl string
}

func NewClient(options ClientOptions) Client {
	http := resty.New().
		SetBaseURL(options.BaseUrl).
		SetHeader("User-Agent", options.UserAgent)
	restyutil.InstrumentClient(http, tracer, options.InstrumentOutput)

	return Client{
		http:    http,
		baseUrl: strings.TrimRight(options.BaseUrl, "/"),
	}
}

func (c Client) fetch(ctx context.Context, path string) (Document, string, error) {
	sourceUrl := c.baseUrl + path

	res, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return Document{}, "", err
	}
	if res.StatusCode() == 404 {
		return Document{}, "", ErrNotFound
	}
	if res.StatusCode() != 200 {
		return Document{}, "", fmt.Errorf("fetch %s: status %d", sourceUrl, res.StatusCode())
	}

	doc, err := Parse(strings.NewReader(res.String()))
	if err != nil {
		return Document{}, "", err
	}
	return doc, sourceUrl, nil
}

// GetReport fetches and extracts one campaign finance disclosure report.
func (c Client) GetReport(ctx context.Context, reportId string) (Report, error) {
	ctx, span := tracer.Start(ctx, "GetReport")
	defer span.End()

	doc, sourceUrl, err := c.fetch(ctx, "/Search/PublicSearch/Report/"+reportId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch report")
		return Report{}, err
	}

	report := ParseReport(doc)
	report.SourceUrl = sourceUrl
	return report, nil
}

// GetLobbyistReport fetches and extracts one lobbyist expenditure report.
func (c Client) GetLobbyistReport(ctx context.Context, reportId string) (LobbyistReport, error) {
	ctx, span := tracer.Start(ctx, "GetLobbyistReport")
	defer span.End()

	doc, sourceUrl, err := c.fetch(ctx, "/Search/PublicSearch/Report/"+reportId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch lobbyist report")
		return LobbyistReport{}, err
	}

	report := ParseLobbyistReport(doc)
	report.SourceUrl = sourceUrl
	return report, nil
}

// GetEntity fetches and extracts one entity registration.
func (c Client) GetEntity(ctx context.Context, entityId string) (EntityRegistration, error) {
	ctx, span := tracer.Start(ctx, "GetEntity")
	defer span.End()

	doc, sourceUrl, err := c.fetch(ctx, "/Registration/EntityDetails/"+entityId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch entity")
		return EntityRegistration{}, err
	}

	entity := ParseEntity(doc, entityId)
	entity.SourceUrl = sourceUrl
	return entity, nil
}

// GetLobbyistEntity fetches and extracts one lobbyist registration.
func (c Client) GetLobbyistEntity(ctx context.Context, entityId string) (LobbyistRegistration, error) {
	ctx, span := tracer.Start(ctx, "GetLobbyistEntity")
	defer span.End()

	doc, sourceUrl, err := c.fetch(ctx, "/Registration/EntityDetails/"+entityId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch lobbyist entity")
		return LobbyistRegistration{}, err
	}

	lobbyist := ParseLobbyistEntity(doc, entityId)
	lobbyist.SourceUrl = sourceUrl
	return lobbyist, nil
}
