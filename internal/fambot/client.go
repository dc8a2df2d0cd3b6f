package fambot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Service defines the command surface the UI drives. This interface is
// implemented by *Client and can be used for testing.
type Service interface {
	Init(ctx context.Context) (*InitResponse, error)
	AddWish(ctx context.Context, title string) (WishItem, error)
	DeleteWish(ctx context.Context, itemID int64) error
	SetWishLink(ctx context.Context, itemID int64, link string) error
	SetWishDone(ctx context.Context, itemID int64, done bool) error
	ClearWishlist(ctx context.Context) error
	SetStartDate(ctx context.Context, dateStr string) (*StartDateResponse, error)
	SetCloudURL(ctx context.Context, link string) error
	DeletePair(ctx context.Context) error
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the fambot HTTP API. Every command is a single POST with
// a JSON body carrying the caller identity; there are no automatic retries.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	identity  Identity
	userAgent string
}

const (
	defaultUserAgent = "duet/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL and caller identity.
func NewClient(baseURL string, identity Identity) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if identity.ID == 0 {
		return nil, fmt.Errorf("identity id is required")
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		identity:  identity,
		userAgent: defaultUserAgent,
	}, nil
}

// Init fetches the full pairing snapshot the UI boots from.
func (c *Client) Init(ctx context.Context) (*InitResponse, error) {
	var payload InitResponse
	req := struct {
		User Identity `json:"user"`
	}{c.identity}
	if err := c.post(ctx, "/api/init", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AddWish creates a wishlist entry and returns it with the server-assigned id.
func (c *Client) AddWish(ctx context.Context, title string) (WishItem, error) {
	if strings.TrimSpace(title) == "" {
		return WishItem{}, localErr(CodeTitleRequired)
	}
	req := struct {
		User  Identity `json:"user"`
		Title string   `json:"title"`
	}{c.identity, strings.TrimSpace(title)}
	var payload AddWishResponse
	if err := c.post(ctx, "/api/wishlist/add", req, &payload); err != nil {
		return WishItem{}, err
	}
	return payload.Item, nil
}

// DeleteWish removes one of the caller's wishlist entries.
func (c *Client) DeleteWish(ctx context.Context, itemID int64) error {
	req := struct {
		User   Identity `json:"user"`
		ItemID int64    `json:"item_id"`
	}{c.identity, itemID}
	return c.post(ctx, "/api/wishlist/delete", req, nil)
}

// SetWishLink attaches a link to one of the caller's wishlist entries.
func (c *Client) SetWishLink(ctx context.Context, itemID int64, link string) error {
	if strings.TrimSpace(link) == "" {
		return localErr(CodeInvalidURL)
	}
	req := struct {
		User   Identity `json:"user"`
		ItemID int64    `json:"item_id"`
		URL    string   `json:"url"`
	}{c.identity, itemID, strings.TrimSpace(link)}
	return c.post(ctx, "/api/wishlist/set_link", req, nil)
}

// SetWishDone flips the done flag on one of the caller's wishlist entries.
func (c *Client) SetWishDone(ctx context.Context, itemID int64, done bool) error {
	req := struct {
		User   Identity `json:"user"`
		ItemID int64    `json:"item_id"`
		Done   bool     `json:"done"`
	}{c.identity, itemID, done}
	return c.post(ctx, "/api/wishlist/toggle_done", req, nil)
}

// ClearWishlist deletes every entry in the caller's own wishlist.
func (c *Client) ClearWishlist(ctx context.Context) error {
	req := struct {
		User Identity `json:"user"`
	}{c.identity}
	return c.post(ctx, "/api/wishlist/clear", req, nil)
}

// SetStartDate sets the relationship start date (DD.MM.YYYY) and returns the
// freshly computed stats.
func (c *Client) SetStartDate(ctx context.Context, dateStr string) (*StartDateResponse, error) {
	if strings.TrimSpace(dateStr) == "" {
		return nil, localErr(CodeDateRequired)
	}
	req := struct {
		User    Identity `json:"user"`
		DateStr string   `json:"date_str"`
	}{c.identity, strings.TrimSpace(dateStr)}
	var payload StartDateResponse
	if err := c.post(ctx, "/api/startdate/set", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SetCloudURL sets the shared cloud link. An empty link clears it.
func (c *Client) SetCloudURL(ctx context.Context, link string) error {
	req := struct {
		User Identity `json:"user"`
		URL  string   `json:"url"`
	}{c.identity, strings.TrimSpace(link)}
	return c.post(ctx, "/api/cloud/set", req, nil)
}

// DeletePair dissolves the pairing and everything attached to it.
func (c *Client) DeletePair(ctx context.Context) error {
	req := struct {
		User Identity `json:"user"`
	}{c.identity}
	return c.post(ctx, "/api/pair/delete", req, nil)
}

// envelope is the normalized response wrapper. OK stays nil when the body
// carries no explicit ok field; older service builds omit it on success, so
// a missing field counts as success whenever the HTTP status itself does.
type envelope struct {
	OK    *bool  `json:"ok"`
	Error string `json:"error"`
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return transportErr(fmt.Errorf("encode request: %w", err))
	}

	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(raw))
	if err != nil {
		return transportErr(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return transportErr(fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportErr(fmt.Errorf("read response: %w", err))
	}

	statusOK := resp.StatusCode < 400

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		if !statusOK {
			// No decodable body, fall back to the HTTP status.
			return applicationErr(fmt.Sprintf("HTTP_%d", resp.StatusCode))
		}
		return transportErr(fmt.Errorf("decode response: %w", err))
	}

	ok := statusOK
	if env.OK != nil {
		ok = ok && *env.OK
	}
	if !ok {
		code := env.Error
		if code == "" {
			code = fmt.Sprintf("HTTP_%d", resp.StatusCode)
		}
		return applicationErr(code)
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return transportErr(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("api url is required")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
