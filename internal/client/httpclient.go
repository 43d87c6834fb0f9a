package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/pietos/pietos-cli/internal/logging"
)

const (
	statusSuccess = "success"

	actionLogin        = "login"
	actionRegister     = "register"
	actionLogActivity  = "logActivity"
	actionGetDashboard = "getDashboard"
)

// envelope is the common part of every service reply.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e *envelope) outcome() (status, message string) {
	return e.Status, e.Message
}

// reply is implemented by any response struct embedding envelope.
type reply interface {
	outcome() (status, message string)
}

// HTTPClient is the production Client speaking the service's
// GET-with-query-parameters dialect.
//
// No timeout is set on the underlying http.Client: a hung backend leaves
// the issuing flow in-flight, matching the behavior of the web client this
// replaces. Callers that want a deadline pass it via ctx.
type HTTPClient struct {
	serviceURL string
	http       *http.Client
	log        logging.Logger

	// instanceID tags activity requests so server-side diagnostics can
	// group events from one client run.
	instanceID string
}

func NewHTTPClient(serviceURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		serviceURL: serviceURL,
		http:       &http.Client{},
		log:        log,
		instanceID: uuid.NewString(),
	}
}

// get issues one GET with the given parameters and decodes the JSON reply
// into out. It returns ErrUnavailable for transport-level failures,
// ErrMalformedResponse when the reply has no status, and *ServerError when
// the status is present but not "success".
func (c *HTTPClient) get(ctx context.Context, params url.Values, out reply) error {
	u, err := url.Parse(c.serviceURL)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug(ctx, "service replied non-OK", "action", params.Get("action"), "code", resp.StatusCode)
		return ErrUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	status, message := out.outcome()
	if status == "" {
		return ErrMalformedResponse
	}
	if status != statusSuccess {
		return &ServerError{Message: message}
	}
	return nil
}

type authResponse struct {
	envelope
	Token string `json:"token"`
	Name  string `json:"name"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	params := url.Values{}
	params.Set("action", actionLogin)
	params.Set("email", email)
	params.Set("password", password)

	var resp authResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	return &AuthResult{Token: resp.Token, Name: resp.Name}, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, phone, password string) (*AuthResult, error) {
	params := url.Values{}
	params.Set("action", actionRegister)
	params.Set("name", name)
	params.Set("email", email)
	params.Set("phone", phone)
	params.Set("password", password)

	var resp authResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	return &AuthResult{Token: resp.Token, Name: resp.Name}, nil
}

// LogActivity records one account event. The reply body is deliberately not
// inspected: the caller has no use for it and failures are its problem to
// swallow.
func (c *HTTPClient) LogActivity(ctx context.Context, token, eventType, details string) error {
	params := url.Values{}
	params.Set("action", actionLogActivity)
	params.Set("token", token)
	params.Set("eventType", eventType)
	params.Set("details", details)
	params.Set("client", c.instanceID)

	u, err := url.Parse(c.serviceURL)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return ErrUnavailable
	}
	return nil
}

type dashboardResponse struct {
	envelope
	Dashboard
}

func (c *HTTPClient) GetDashboard(ctx context.Context, token string) (*Dashboard, error) {
	params := url.Values{}
	params.Set("action", actionGetDashboard)
	params.Set("token", token)

	var resp dashboardResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Dashboard, nil
}
