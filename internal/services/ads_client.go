package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/campaign-studio/backend/internal/models"
	"go.uber.org/zap"
)

// Credential headers sent with every platform request. The pair is the one
// contract this service speaks; older endpoints that accepted a lone
// x-fb-access-token header are treated as legacy and never used.
const (
	headerAdAccountID = "act_ad_account_id"
	headerAccessToken = "fb_token"
)

// AdsClient talks to the remote ads-management backend. One request per
// workflow step; the client never retries on its own.
type AdsClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewAdsClient(baseURL string, timeout time.Duration, log *zap.Logger) *AdsClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AdsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// creationEnvelope covers the three response shapes the platform has been
// observed to return: {success,data:{id}}, {data:{id}} and {id}, checked
// in that order.
type creationEnvelope struct {
	Success *bool `json:"success,omitempty"`
	Data    *struct {
		ID string `json:"id"`
	} `json:"data,omitempty"`
	ID    string         `json:"id,omitempty"`
	Error *platformError `json:"error,omitempty"`
}

type platformError struct {
	Message      string `json:"message,omitempty"`
	ErrorUserMsg string `json:"error_user_msg,omitempty"`
	Code         int    `json:"code,omitempty"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
}

// extractID applies the envelope precedence; empty means malformed.
func (e *creationEnvelope) extractID() string {
	if e.Success != nil && e.Data != nil && e.Data.ID != "" {
		return e.Data.ID
	}
	if e.Data != nil && e.Data.ID != "" {
		return e.Data.ID
	}
	return e.ID
}

// CreateResource posts one creation payload and returns the new resource
// identifier. Errors follow the workflow taxonomy: SessionExpiredError for
// a dead token, RemoteRejectionError for other platform refusals,
// MalformedResponseError for a 2xx body without an id, and
// TransientNetworkError when the platform is unreachable.
func (c *AdsClient) CreateResource(ctx context.Context, endpoint string, payload map[string]any, creds models.PlatformCredentials) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAdAccountID, creds.AdAccountID)
	req.Header.Set(headerAccessToken, creds.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransientNetworkError{Err: err}
	}
	defer resp.Body.Close()

	var envelope creationEnvelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.rejectionError(resp.StatusCode, &envelope, decodeErr)
	}
	if decodeErr != nil {
		return "", &MalformedResponseError{Endpoint: endpoint}
	}

	id := envelope.extractID()
	if id == "" {
		c.log.Warn("creation response without identifier",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return "", &MalformedResponseError{Endpoint: endpoint}
	}

	c.log.Info("resource created",
		zap.String("endpoint", endpoint),
		zap.String("resource_id", id),
	)
	return id, nil
}

func (c *AdsClient) rejectionError(status int, envelope *creationEnvelope, decodeErr error) error {
	var perr platformError
	if decodeErr == nil && envelope.Error != nil {
		perr = *envelope.Error
	}

	if status == http.StatusUnauthorized && perr.Code == platformCodeAuth && perr.ErrorSubcode == platformSubcodeExpired {
		return &SessionExpiredError{Code: perr.Code, Subcode: perr.ErrorSubcode}
	}

	// Most specific message wins: platform user message, then the generic
	// platform message, then a fallback.
	msg := perr.ErrorUserMsg
	if msg == "" {
		msg = perr.Message
	}
	if msg == "" {
		msg = "the ads platform rejected the request"
	}
	return &RemoteRejectionError{
		StatusCode: status,
		Message:    msg,
		Code:       perr.Code,
		Subcode:    perr.ErrorSubcode,
	}
}

// CampaignSummary is one row in the post-creation listing view.
type CampaignSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Objective string `json:"objective"`
	Status    string `json:"status"`
}

// CampaignInsights is the per-campaign analytics block, nil-able per field
// because the platform omits metrics it has not accumulated yet.
type CampaignInsights struct {
	Impressions *int64   `json:"impressions,omitempty"`
	Clicks      *int64   `json:"clicks,omitempty"`
	Reach       *int64   `json:"reach,omitempty"`
	Spend       *float64 `json:"spend,omitempty"`
	CTR         *float64 `json:"ctr,omitempty"`
	CPC         *float64 `json:"cpc,omitempty"`
}

// ListCampaigns fetches the account's campaigns for the listing view.
func (c *AdsClient) ListCampaigns(ctx context.Context, creds models.PlatformCredentials, limit int) ([]CampaignSummary, error) {
	url := fmt.Sprintf("%s/campaigns?limit=%d", c.baseURL, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerAdAccountID, creds.AdAccountID)
	req.Header.Set(headerAccessToken, creds.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransientNetworkError{Err: err}
	}
	defer resp.Body.Close()

	var envelope struct {
		Data  []CampaignSummary `json:"data"`
		Error *platformError    `json:"error,omitempty"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)
	if resp.StatusCode != http.StatusOK {
		creation := &creationEnvelope{Error: envelope.Error}
		return nil, c.rejectionError(resp.StatusCode, creation, decodeErr)
	}
	if decodeErr != nil {
		return nil, &MalformedResponseError{Endpoint: "/campaigns"}
	}
	return envelope.Data, nil
}

// FetchInsights fetches analytics for one campaign.
func (c *AdsClient) FetchInsights(ctx context.Context, campaignID string, creds models.PlatformCredentials) (*CampaignInsights, error) {
	url := fmt.Sprintf("%s/campaigns/%s/insights", c.baseURL, campaignID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerAdAccountID, creds.AdAccountID)
	req.Header.Set(headerAccessToken, creds.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransientNetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("insights fetch for %s returned %d", campaignID, resp.StatusCode)
	}

	var envelope struct {
		Data *CampaignInsights `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, &MalformedResponseError{Endpoint: "/campaigns/" + campaignID + "/insights"}
	}
	return envelope.Data, nil
}
