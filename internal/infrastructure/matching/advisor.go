package matching

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
)

// HTTPAdvisor asks an external matching service whether a request fits a
// supplier's business profile. Implements domain.MatchAdvisor.
type HTTPAdvisor struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAdvisor(baseURL string, timeout time.Duration) *HTTPAdvisor {
	return &HTTPAdvisor{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type matchRequest struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	SupplierCategory    string `json:"supplier_category"`
	SupplierDescription string `json:"supplier_description"`
}

type matchResponse struct {
	Match bool `json:"match"`
}

func (a *HTTPAdvisor) IsMatch(ctx context.Context, query domain.MatchQuery) (bool, error) {
	body, err := json.Marshal(matchRequest{
		Title:               query.RequestTitle,
		Description:         query.RequestDescription,
		SupplierCategory:    query.SupplierCategory,
		SupplierDescription: query.SupplierDescription,
	})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/match", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("matching service returned %d", resp.StatusCode)
	}

	var result matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}
	return result.Match, nil
}
