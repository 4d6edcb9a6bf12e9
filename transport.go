package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

const defaultRequestTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response we read for its message.
const maxErrorBody = 1 << 16

// messageText absorbs the backend's two message shapes, a single string or an
// array of field errors, normalized to one joined display message.
type messageText string

func (m *messageText) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = messageText(single)
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*m = messageText(strings.Join(many, ", "))
		return nil
	}

	return fmt.Errorf("unsupported message shape: %s", string(data))
}

type errorEnvelope struct {
	Message messageText `json:"message"`
}

// identityEnvelope is the response shape of the login and profile endpoints.
type identityEnvelope struct {
	User    *Identity   `json:"user"`
	Message messageText `json:"message"`
}

type messageEnvelope struct {
	Message messageText `json:"message"`
}

// Transport performs JSON calls against the backend with cookie credentials
// attached automatically. Its one cross-cutting behavior: a 401 on a regular
// call, once the first hydration settled, is retried exactly once after a
// coordinated token refresh. The session token itself lives in an httpOnly
// cookie the transport never reads.
type Transport struct {
	base      *url.URL
	http      *http.Client
	store     *SessionStore
	refresher Refresher
	navigator Navigator
	routes    *Routes
	logger    Logger
	debug     bool
}

// NewTransport builds a transport from the client config. The cookie jar is
// private to the transport; Teardown replaces it wholesale.
func NewTransport(cfg Config, store *SessionStore) (*Transport, error) {
	base, err := url.Parse(cfg.GetBaseURL())
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "invalid base URL").
			WithCode(errors.CodeBadRequest)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "cookie jar init failed")
	}

	timeout := cfg.GetRequestTimeout()
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Transport{
		base:      base,
		http:      &http.Client{Jar: jar, Timeout: timeout},
		store:     store,
		navigator: noopNavigator{},
		routes:    DefaultRoutes(),
		logger:    defLogger{},
		debug:     cfg.GetDebug(),
	}, nil
}

func (t *Transport) Get(ctx context.Context, path string, out any) error {
	return t.do(ctx, http.MethodGet, path, nil, out)
}

func (t *Transport) Post(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPost, path, body, out)
}

func (t *Transport) Put(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPut, path, body, out)
}

func (t *Transport) Patch(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPatch, path, body, out)
}

func (t *Transport) Delete(ctx context.Context, path string, out any) error {
	return t.do(ctx, http.MethodDelete, path, nil, out)
}

func (t *Transport) do(ctx context.Context, method, path string, body, out any) error {
	send := func(ctx context.Context) (*http.Response, error) {
		return t.send(ctx, method, path, body)
	}

	res, err := sendWithRetry(ctx, send, t.refresh, t.interceptActive)
	if err != nil {
		if IsSessionExpiredError(err) {
			t.expireSession()
		}
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return t.statusError(res)
	}

	if out == nil {
		io.Copy(io.Discard, res.Body) //nolint:errcheck
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "malformed backend response").
			WithTextCode(textCodeMalformedResponse)
	}

	if t.debug {
		t.logger.Debug("%s %s -> %s", method, path, print.MaybePrettyJSON(out))
	}

	return nil
}

// sendWithRetry issues send once and, when the response is a 401 the
// interceptor may act on, consults refresh before resending exactly once. A
// request never retries twice; the refresh endpoint never goes through here.
func sendWithRetry(
	ctx context.Context,
	send func(context.Context) (*http.Response, error),
	refresh func(context.Context) bool,
	allowed func() bool,
) (*http.Response, error) {
	res, err := send(ctx)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusUnauthorized || allowed == nil || !allowed() {
		return res, nil
	}

	drain(res)

	if refresh == nil || !refresh(ctx) {
		return nil, ErrSessionExpired
	}

	return send(ctx)
}

func (t *Transport) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryBadInput, "unable to encode request body")
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.base.JoinPath(path).String(), payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "unable to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := t.http.Do(req)
	if err != nil {
		// Timeouts and connection failures share one category and never
		// reach the refresh path.
		return nil, errors.Wrap(err, errors.CategoryOperation, "backend unreachable").
			WithTextCode(textCodeUnreachable)
	}

	return res, nil
}

// interceptActive gates the 401 interceptor on the first hydration having
// completed, so a cold logged-out load cannot start a refresh storm.
func (t *Transport) interceptActive() bool {
	return t.store != nil && t.store.Snapshot().Initialized
}

func (t *Transport) refresh(ctx context.Context) bool {
	if t.refresher == nil {
		return false
	}
	return t.refresher.Refresh(ctx)
}

// expireSession fires once per failing chain: the first caller to observe the
// refresh failure wins the clear, and only that caller emits navigation.
func (t *Transport) expireSession() {
	if t.store != nil && t.store.clearIdentity(true) {
		t.logger.Info("session expired, redirecting to %s", t.routes.Login)
		t.navigator.Navigate(Redirect{Path: t.routes.Login, Expired: true})
	}
}

// refreshCall is handed to the RefreshCoordinator. It posts to the refresh
// endpoint directly so a failing refresh can never recurse into itself.
func (t *Transport) refreshCall(endpoint string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		res, err := t.send(ctx, http.MethodPost, endpoint, nil)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode >= 400 {
			return t.statusError(res)
		}

		io.Copy(io.Discard, res.Body) //nolint:errcheck
		return nil
	}
}

func (t *Transport) statusError(res *http.Response) error {
	var envelope errorEnvelope
	message := ""

	data, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err == nil && len(data) > 0 {
		// Error bodies are best-effort JSON; anything else falls back to the
		// generic status message.
		if err := json.Unmarshal(data, &envelope); err == nil {
			message = string(envelope.Message)
		}
	}

	return apiStatusError(res.StatusCode, message)
}

// resetJar discards every cookie the transport holds. Part of Teardown.
func (t *Transport) resetJar() error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "cookie jar reset failed")
	}
	t.http.Jar = jar
	return nil
}

func drain(res *http.Response) {
	io.Copy(io.Discard, io.LimitReader(res.Body, maxErrorBody)) //nolint:errcheck
	res.Body.Close()
}
