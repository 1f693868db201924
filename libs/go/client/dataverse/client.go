package dataverse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	httpclient "github.com/wkcda/crm-gateway/libs/go/client/http"
	"github.com/wkcda/crm-gateway/libs/go/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	apiPath        = "/api/data/v9.2"
	defaultTimeout = 30 * time.Second
)

// Entity is a loosely typed Dataverse record: logical column name → value.
type Entity map[string]interface{}

// GetString returns the named column as a string, or "" when absent.
func (e Entity) GetString(column string) string {
	if v, ok := e[column].(string); ok {
		return v
	}
	return ""
}

// GetInt returns the named column as an int. Dataverse option-set and
// whole-number columns arrive as JSON numbers (float64).
func (e Entity) GetInt(column string) int {
	switch v := e[column].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// GetBool returns the named column as a bool, or false when absent.
func (e Entity) GetBool(column string) bool {
	if v, ok := e[column].(bool); ok {
		return v
	}
	return false
}

// GetTime parses the named column as an RFC 3339 timestamp or a plain
// date-only value. Returns the zero time when absent or unparseable.
func (e Entity) GetTime(column string) time.Time {
	s := e.GetString(column)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// QueryOptions holds OData query parameters for entity-set reads.
type QueryOptions struct {
	Select  []string
	Filter  string
	OrderBy string
	Top     int
}

// Config holds everything needed to reach a Dataverse organization.
type Config struct {
	// OrgURL is the organization root, e.g. https://org.crm.dynamics.com
	OrgURL       string
	TenantID     string
	ClientID     string
	ClientSecret string
}

// Client talks to the Dataverse Web API.
type Client struct {
	httpClient *httpclient.HTTPClient
	tokens     *tokenSource
}

// NewClient creates a Dataverse client for the given organization.
func NewClient(cfg Config) *Client {
	hc := httpclient.NewHTTPClient(
		httpclient.WithBaseURL(strings.TrimSuffix(cfg.OrgURL, "/")+apiPath),
		httpclient.WithTimeout(defaultTimeout),
		httpclient.WithDefaultHeader("OData-MaxVersion", "4.0"),
		httpclient.WithDefaultHeader("OData-Version", "4.0"),
	)
	return &Client{
		httpClient: hc,
		tokens:     newTokenSource(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, cfg.OrgURL),
	}
}

type queryResponse struct {
	Value []Entity `json:"value"`
}

// wrapErr converts transport errors into the package's typed errors.
func wrapErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if httpErr, ok := err.(*httpclient.HTTPError); ok {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &AuthError{StatusCode: httpErr.StatusCode, Detail: msg}
		case http.StatusNotFound:
			return ErrNotFound
		}
	}
	return errors.Wrap(err, msg)
}

func (c *Client) authOption(ctx context.Context) (httpclient.RequestOption, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	return httpclient.WithBearerToken(token), nil
}

// Query reads records from an entity set with the given OData options.
func (c *Client) Query(ctx context.Context, entitySet string, opts QueryOptions) ([]Entity, error) {
	auth, err := c.authOption(ctx)
	if err != nil {
		return nil, err
	}

	reqOpts := []httpclient.RequestOption{auth}
	if len(opts.Select) > 0 {
		reqOpts = append(reqOpts, httpclient.WithQueryParam("$select", strings.Join(opts.Select, ",")))
	}
	if opts.Filter != "" {
		reqOpts = append(reqOpts, httpclient.WithQueryParam("$filter", opts.Filter))
	}
	if opts.OrderBy != "" {
		reqOpts = append(reqOpts, httpclient.WithQueryParam("$orderby", opts.OrderBy))
	}
	if opts.Top > 0 {
		reqOpts = append(reqOpts, httpclient.WithQueryParam("$top", strconv.Itoa(opts.Top)))
	}

	resp, err := c.httpClient.Get(ctx, "/"+entitySet, reqOpts...)
	if err != nil {
		return nil, wrapErr(err, "query "+entitySet)
	}

	var result queryResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return nil, errors.Wrap(err, "decode query response")
	}
	return result.Value, nil
}

// QueryOne reads a single record, returning ErrNotFound when the filter
// matches nothing. First match wins when several records qualify.
func (c *Client) QueryOne(ctx context.Context, entitySet string, opts QueryOptions) (Entity, error) {
	opts.Top = 1
	records, err := c.Query(ctx, entitySet, opts)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// Create inserts a record and returns the new record's GUID, parsed from
// the OData-EntityId response header.
func (c *Client) Create(ctx context.Context, entitySet string, attributes Entity) (uuid.UUID, error) {
	auth, err := c.authOption(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/"+entitySet, attributes, auth)
	if err != nil {
		return uuid.Nil, wrapErr(err, "create "+entitySet)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	id, err := parseEntityID(resp.Header.Get("OData-EntityId"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse created record id")
	}

	logger.Debug("Created CRM record",
		zap.String("entity_set", entitySet),
		zap.String("id", id.String()))

	return id, nil
}

// Update patches an existing record by GUID.
func (c *Client) Update(ctx context.Context, entitySet string, id uuid.UUID, attributes Entity) error {
	auth, err := c.authOption(ctx)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/%s(%s)", entitySet, id)
	resp, err := c.httpClient.Patch(ctx, path, attributes, auth)
	if err != nil {
		return wrapErr(err, "update "+entitySet)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

type createMultipleRequest struct {
	Targets []Entity `json:"Targets"`
}

type createMultipleResponse struct {
	IDs []uuid.UUID `json:"Ids"`
}

// CreateMultiple inserts a batch of records through the CreateMultiple
// action. logicalName is the singular entity logical name. The whole batch
// succeeds or fails as one request; callers needing per-item attribution
// fall back to sequential Create.
func (c *Client) CreateMultiple(ctx context.Context, entitySet, logicalName string, records []Entity) ([]uuid.UUID, error) {
	if len(records) == 0 {
		return nil, nil
	}
	auth, err := c.authOption(ctx)
	if err != nil {
		return nil, err
	}

	targets := make([]Entity, len(records))
	for i, record := range records {
		target := Entity{"@odata.type": "Microsoft.Dynamics.CRM." + logicalName}
		for k, v := range record {
			target[k] = v
		}
		targets[i] = target
	}

	path := fmt.Sprintf("/%s/Microsoft.Dynamics.CRM.CreateMultiple", entitySet)
	resp, err := c.httpClient.Post(ctx, path, createMultipleRequest{Targets: targets}, auth)
	if err != nil {
		return nil, wrapErr(err, "create multiple "+entitySet)
	}

	var result createMultipleResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return nil, errors.Wrap(err, "decode create multiple response")
	}
	return result.IDs, nil
}

// parseEntityID extracts the GUID from an OData-EntityId header value of
// the form https://org.crm.dynamics.com/api/data/v9.2/contacts(<guid>).
func parseEntityID(header string) (uuid.UUID, error) {
	open := strings.LastIndex(header, "(")
	end := strings.LastIndex(header, ")")
	if open < 0 || end <= open {
		return uuid.Nil, fmt.Errorf("malformed OData-EntityId header: %q", header)
	}
	return uuid.Parse(header[open+1 : end])
}

// WhoAmI verifies connectivity and credentials against the CRM.
func (c *Client) WhoAmI(ctx context.Context) error {
	auth, err := c.authOption(ctx)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Get(ctx, "/WhoAmI", auth)
	if err != nil {
		return wrapErr(err, "whoami")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// escapeODataString escapes a value for inclusion in an OData filter literal.
func escapeODataString(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}

// FilterEq builds a column eq 'value' filter clause.
func FilterEq(column, value string) string {
	return fmt.Sprintf("%s eq '%s'", column, escapeODataString(value))
}

// FilterEqInt builds a column eq value clause for numeric columns.
func FilterEqInt(column string, value int) string {
	return fmt.Sprintf("%s eq %d", column, value)
}

// FilterEqGUID builds a lookup-column eq guid clause. GUID literals are
// unquoted in OData filters.
func FilterEqGUID(column string, id uuid.UUID) string {
	return fmt.Sprintf("%s eq %s", LookupColumn(column), id)
}

// LookupColumn returns the read-side column name for a lookup, which
// Dataverse exposes as _<column>_value.
func LookupColumn(column string) string {
	return "_" + column + "_value"
}

// FilterOr joins filter clauses with or.
func FilterOr(clauses ...string) string {
	return "(" + strings.Join(clauses, " or ") + ")"
}

// FilterAnd joins filter clauses with and.
func FilterAnd(clauses ...string) string {
	return strings.Join(clauses, " and ")
}

// Bind formats a lookup-column binding value for create/update payloads.
func Bind(entitySet string, id uuid.UUID) string {
	return fmt.Sprintf("/%s(%s)", entitySet, id)
}
