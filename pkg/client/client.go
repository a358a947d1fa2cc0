package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pulseguard/pulseguard/pkg/domain"
)

// RegisterRequest is the payload for registering a new guardian.
type RegisterRequest struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// RenameRequest is the payload for changing a guardian's username.
type RenameRequest struct {
	Username string `json:"username"`
}

// BuyRequest is the payload for buying a shop upgrade.
type BuyRequest struct {
	UserID  int64  `json:"user_id"`
	ItemKey string `json:"item_key"`
}

// BuyResult is the server's confirmation of a purchase. GoldLeft is
// authoritative for currency after the purchase.
type BuyResult struct {
	Status   string `json:"status"`
	NewLevel int    `json:"new_level"`
	GoldLeft int    `json:"gold_left"`
}

// Client is the Pulse Guardian API client.
type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
}

// New creates a new API client. Each client carries a random session ID
// sent with every request so a client run can be correlated server-side.
func New(baseURL string) *Client {
	return &Client{
		baseURL:   baseURL,
		sessionID: uuid.NewString(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetUser fetches a guardian by ID. A 404 means "not registered";
// callers distinguish it with IsStatus(err, 404).
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, "/api/user/"+strconv.FormatInt(id, 10), &u); err != nil {
		return nil, fmt.Errorf("client.GetUser: %w", err)
	}
	return &u, nil
}

// Register creates a new guardian record. Registering an existing ID is
// not an error; the server returns the existing record.
func (c *Client) Register(ctx context.Context, id int64, username string) (*domain.User, error) {
	var u domain.User
	if err := c.post(ctx, "/api/user/register", RegisterRequest{ID: id, Username: username}, &u); err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	return &u, nil
}

// Rename changes a guardian's username and returns the updated record.
func (c *Client) Rename(ctx context.Context, id int64, username string) (*domain.User, error) {
	var u domain.User
	if err := c.doRequest(ctx, http.MethodPut, "/api/user/"+strconv.FormatInt(id, 10), RenameRequest{Username: username}, &u); err != nil {
		return nil, fmt.Errorf("client.Rename: %w", err)
	}
	return &u, nil
}

// GetRaid fetches the current shared raid snapshot.
func (c *Client) GetRaid(ctx context.Context) (*domain.RaidSnapshot, error) {
	var s domain.RaidSnapshot
	if err := c.get(ctx, "/api/raid/current", &s); err != nil {
		return nil, fmt.Errorf("client.GetRaid: %w", err)
	}
	return &s, nil
}

// Attack submits a validated workout and returns the server's damage
// resolution. A rejecting status surfaces as *HTTPError carrying the
// server's reason.
func (c *Client) Attack(ctx context.Context, req domain.AttackRequest) (*domain.AttackResult, error) {
	var res domain.AttackResult
	if err := c.post(ctx, "/api/attack", req, &res); err != nil {
		return nil, fmt.Errorf("client.Attack: %w", err)
	}
	return &res, nil
}

// GetShop fetches the upgrade catalog with the user's unlock state.
func (c *Client) GetShop(ctx context.Context, userID int64) ([]domain.ShopItem, error) {
	var items []domain.ShopItem
	if err := c.get(ctx, "/api/shop/"+strconv.FormatInt(userID, 10), &items); err != nil {
		return nil, fmt.Errorf("client.GetShop: %w", err)
	}
	return items, nil
}

// Buy purchases one level of an upgrade.
func (c *Client) Buy(ctx context.Context, userID int64, itemKey string) (*BuyResult, error) {
	var res BuyResult
	if err := c.post(ctx, "/api/shop/buy", BuyRequest{UserID: userID, ItemKey: itemKey}, &res); err != nil {
		return nil, fmt.Errorf("client.Buy: %w", err)
	}
	return &res, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Session-ID", c.sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		// The service reports failures as {"detail": "..."}; decode a
		// generic {"error": "..."} shape as a fallback.
		var apiErr struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil {
			if apiErr.Detail != "" {
				return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Detail}
			}
			if apiErr.Error != "" {
				return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
			}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
