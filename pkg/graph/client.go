// Package graph is a minimal Microsoft Graph SDK for SharePoint
// document-management operations. It authenticates with app-only
// client credentials and exposes one method per remote resource.
package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Logger is the interface the SDK uses for debug logging.
type Logger interface {
	Debug(msg string, args ...any)
}

// NoopLogger discards all SDK log output.
type NoopLogger struct{}

func (l NoopLogger) Debug(msg string, args ...any) {}

const (
	loginTokenURLFormat = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	graphRootURL        = "https://graph.microsoft.com/v1.0/"
	graphDefaultScope   = "https://graph.microsoft.com/.default"
)

var (
	customTokenURLFormat = loginTokenURLFormat
	customRootURL        = graphRootURL
)

// SetCustomLoginEndpoint overrides the token endpoint format for testing.
// The format must contain one %s verb for the tenant ID.
func SetCustomLoginEndpoint(tokenURLFormat string) {
	customTokenURLFormat = tokenURLFormat
}

// SetCustomGraphEndpoint overrides the Graph API endpoint for testing.
func SetCustomGraphEndpoint(graphURL string) {
	customRootURL = graphURL
}

// Sentinel errors
var (
	ErrReauthRequired   = errors.New("re-authentication required")
	ErrAccessDenied     = errors.New("access denied")
	ErrRetryLater       = errors.New("retry later")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrQuotaExceeded    = errors.New("quota exceeded")
	// ErrEmptyResponse marks a call the server accepted but answered with
	// no usable body. Distinct from transport and API errors on purpose:
	// the request worked, the result did not.
	ErrEmptyResponse = errors.New("empty response from server")
)

// Client is a stateful client for the Microsoft Graph API using app-only
// client-credentials authentication. The embedded token source caches the
// bearer token and re-requests it only on expiry, so constructing a Client
// once per process is both expected and sufficient.
type Client struct {
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	logger      Logger
}

// NewClient builds the credential and authenticated HTTP client exactly
// once for the given tenant and application registration.
func NewClient(ctx context.Context, tenantID, clientID, clientSecret string, logger Logger) *Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf(customTokenURLFormat, tenantID),
		Scopes:       []string{graphDefaultScope},
	}

	if logger == nil {
		logger = NoopLogger{}
	}

	ts := conf.TokenSource(ctx)
	return &Client{
		httpClient:  oauth2.NewClient(ctx, ts),
		tokenSource: ts,
		logger:      logger,
	}
}

// SetLogger allows users of the SDK to set their own logger.
func (c *Client) SetLogger(l Logger) {
	c.logger = l
}

// Token returns the raw bearer token for the Graph default scope.
// Repeated calls reuse the cached token until it expires.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.logger.Debug("Token called")
	if c.tokenSource == nil {
		return "", errors.New("client is not initialized, call NewClient first")
	}

	token, err := c.tokenSource.Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return "", fmt.Errorf("%w: %v", ErrReauthRequired, err)
		}
		return "", fmt.Errorf("acquiring token: %w", err)
	}

	return token.AccessToken, nil
}

// apiCall handles the HTTP request and categorizes common Graph errors
// into the package sentinel errors. Failures are never retried here.
func (c *Client) apiCall(ctx context.Context, method, url, contentType string, body io.Reader) (*http.Response, error) {
	c.logger.Debug("apiCall invoked", "method", method, "url", url)

	if c.httpClient == nil {
		return nil, errors.New("client is not initialized, call NewClient first")
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		// Errors from the token source surface here, before any bytes
		// hit the wire.
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			switch retrieveErr.ErrorCode {
			case "invalid_request", "invalid_client", "invalid_grant",
				"unauthorized_client", "unsupported_grant_type",
				"invalid_scope", "access_denied":
				return nil, fmt.Errorf("%w: %v", ErrReauthRequired, err)
			case "server_error", "temporarily_unavailable":
				return nil, fmt.Errorf("%w: %v", ErrRetryLater, err)
			default:
				return nil, fmt.Errorf("other oauth2 error: %v", err)
			}
		}
		return nil, fmt.Errorf("network error: %v", err)
	}

	if res.StatusCode >= 400 {
		defer res.Body.Close()
		resBody, _ := io.ReadAll(res.Body)

		var graphError struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}

		jsonErr := json.Unmarshal(resBody, &graphError)

		if jsonErr == nil && graphError.Error.Code != "" {
			switch graphError.Error.Code {
			case "accessDenied":
				return nil, fmt.Errorf("%w: %s", ErrAccessDenied, graphError.Error.Message)
			case "activityLimitReached", "serviceNotAvailable":
				return nil, fmt.Errorf("%w: %s", ErrRetryLater, graphError.Error.Message)
			case "itemNotFound":
				return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, graphError.Error.Message)
			case "nameAlreadyExists":
				return nil, fmt.Errorf("%w: %s", ErrConflict, graphError.Error.Message)
			case "invalidRequest", "notAllowed", "notSupported",
				"resourceModified", "generalException":
				return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, graphError.Error.Message)
			case "quotaLimitReached":
				return nil, fmt.Errorf("%w: %s", ErrQuotaExceeded, graphError.Error.Message)
			case "unauthenticated", "InvalidAuthenticationToken":
				return nil, fmt.Errorf("%w: %s", ErrReauthRequired, graphError.Error.Message)
			default:
				return nil, fmt.Errorf("graph error: %s - %s", res.Status, graphError.Error.Message)
			}
		}

		switch res.StatusCode {
		case http.StatusBadRequest, http.StatusMethodNotAllowed,
			http.StatusUnsupportedMediaType, http.StatusUnprocessableEntity:
			return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, res.Status)
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("%w: %s", ErrReauthRequired, res.Status)
		case http.StatusGone, http.StatusNotFound:
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, res.Status)
		case http.StatusConflict:
			return nil, fmt.Errorf("%w: %s", ErrConflict, res.Status)
		case http.StatusInsufficientStorage:
			return nil, fmt.Errorf("%w: %s", ErrQuotaExceeded, res.Status)
		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusServiceUnavailable:
			return nil, fmt.Errorf("%w: %s", ErrRetryLater, res.Status)
		default:
			return nil, fmt.Errorf("HTTP error: %s", res.Status)
		}
	}

	return res, nil
}
