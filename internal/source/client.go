// Package source fetches raw ledger entries from the ScrapCo backend REST
// API. Responses use a {success, error, ...} envelope; a false success
// flag surfaces the backend's message as an error. The client does no
// computation — entries go to the ledger engine as received.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/scrapco/scrapledger/internal/model"
)

// Client calls the backend REST API for one company/godown pair.
type Client struct {
	baseURL   string
	companyID uuid.UUID
	godownID  uuid.UUID
	http      *http.Client
}

// NewClient creates a Client. The company and godown IDs are appended to
// every request as query parameters, matching the backend's contract.
func NewClient(baseURL string, companyID, godownID uuid.UUID, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		companyID: companyID,
		godownID:  godownID,
		http:      &http.Client{Timeout: timeout},
	}
}

// Vendor is one counterparty row from the vendor balance listings.
type Vendor struct {
	VendorID    uuid.UUID `json:"vendor_id"`
	VendorName  string    `json:"vendor_name"`
	Outstanding float64   `json:"outstanding"`
}

// envelope is the backend's common response wrapper. Entry lists arrive
// under different keys per endpoint.
type envelope struct {
	Success      bool             `json:"success"`
	Error        string           `json:"error"`
	Transactions []model.RawEntry `json:"transactions"`
	Ledger       []model.RawEntry `json:"ledger"`
	Purchases    []model.RawEntry `json:"purchases"`
	Balances     []Vendor         `json:"balances"`
}

// entries returns whichever entry list the endpoint populated.
func (e envelope) entries() []model.RawEntry {
	switch {
	case e.Transactions != nil:
		return e.Transactions
	case e.Ledger != nil:
		return e.Ledger
	default:
		return e.Purchases
	}
}

// BankStatement fetches the bank register for the configured godown.
func (c *Client) BankStatement(ctx context.Context) ([]model.RawEntry, error) {
	env, err := c.get(ctx, "/api/bank/statement", nil)
	if err != nil {
		return nil, err
	}
	return env.entries(), nil
}

// VendorLedger fetches the feriwala ledger for one vendor.
func (c *Client) VendorLedger(ctx context.Context, vendorID uuid.UUID) ([]model.RawEntry, error) {
	env, err := c.get(ctx, "/api/feriwala/ledger", url.Values{"vendor_id": {vendorID.String()}})
	if err != nil {
		return nil, err
	}
	return env.entries(), nil
}

// KabadiwalaPurchases fetches the purchase history for one kabadiwala.
func (c *Client) KabadiwalaPurchases(ctx context.Context, vendorID uuid.UUID) ([]model.RawEntry, error) {
	env, err := c.get(ctx, "/api/kabadiwala/purchases", url.Values{"vendor_id": {vendorID.String()}})
	if err != nil {
		return nil, err
	}
	return env.entries(), nil
}

// LabourLedger fetches salary and payment entries for one worker.
func (c *Client) LabourLedger(ctx context.Context, labourID uuid.UUID) ([]model.RawEntry, error) {
	env, err := c.get(ctx, "/api/labour/ledger", url.Values{"labour_id": {labourID.String()}})
	if err != nil {
		return nil, err
	}
	return env.entries(), nil
}

// Vendors fetches the vendor balance listing for a ledger kind
// (feriwala or kabadiwala).
func (c *Client) Vendors(ctx context.Context, kind model.LedgerKind) ([]Vendor, error) {
	env, err := c.get(ctx, fmt.Sprintf("/api/%s/balances", kind), nil)
	if err != nil {
		return nil, err
	}
	return env.Balances, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (envelope, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("company_id", c.companyID.String())
	params.Set("godown_id", c.godownID.String())

	u := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return envelope{}, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, fmt.Errorf("reading %s response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return envelope{}, fmt.Errorf("%s returned %s", path, resp.Status)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, fmt.Errorf("decoding %s response: %w", path, err)
	}
	if !env.Success {
		if env.Error == "" {
			env.Error = "unknown backend error"
		}
		return envelope{}, fmt.Errorf("%s: backend error: %s", path, env.Error)
	}
	return env, nil
}
