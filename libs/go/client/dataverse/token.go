package dataverse

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	httpclient "github.com/wkcda/crm-gateway/libs/go/client/http"
	"github.com/wkcda/crm-gateway/libs/go/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// Refresh the token this long before it actually expires.
	tokenExpirySkew = 2 * time.Minute
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// tokenSource acquires and caches an OAuth2 client-credentials token for
// the Dataverse resource. Safe for concurrent use.
type tokenSource struct {
	tokenURL     string
	clientID     string
	clientSecret string
	scope        string
	httpClient   *httpclient.HTTPClient

	mu      sync.Mutex
	token   string
	expires time.Time
}

func newTokenSource(tenantID, clientID, clientSecret, resourceURL string) *tokenSource {
	return &tokenSource{
		tokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenantID),
		clientID:     clientID,
		clientSecret: clientSecret,
		scope:        strings.TrimSuffix(resourceURL, "/") + "/.default",
		httpClient:   httpclient.NewHTTPClient(),
	}
}

// Token returns a valid access token, fetching a new one when the cached
// token is missing or close to expiry.
func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Now().Before(ts.expires.Add(-tokenExpirySkew)) {
		return ts.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", ts.clientID)
	form.Set("client_secret", ts.clientSecret)
	form.Set("scope", ts.scope)

	resp, err := ts.httpClient.Post(ctx, ts.tokenURL, nil, httpclient.WithFormBody(form))
	if err != nil {
		if httpErr, ok := err.(*httpclient.HTTPError); ok && (httpErr.StatusCode == 401 || httpErr.StatusCode == 403) {
			return "", &AuthError{StatusCode: httpErr.StatusCode, Detail: "token request rejected"}
		}
		return "", errors.Wrap(err, "failed to acquire access token")
	}

	var tokenResp tokenResponse
	if err := ts.httpClient.ProcessJSONResponse(resp, &tokenResp); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("token response contained no access token")
	}

	ts.token = tokenResp.AccessToken
	ts.expires = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	logger.Info("Acquired CRM access token",
		zap.Time("expires", ts.expires))

	return ts.token, nil
}

// Invalidate drops the cached token so the next call fetches a fresh one.
func (ts *tokenSource) Invalidate() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.token = ""
	ts.expires = time.Time{}
}
