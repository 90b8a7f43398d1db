package metaclient

import (
	"net/http"
	"net/url"

	metadomain "github.com/adlens/ad-confidence-api/infrastructure/integrator/meta/domain"
	"github.com/adlens/ad-confidence-api/internal/config"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

type Client interface {
	GetAdByID(adID string) (*metadomain.Ad, error)
	GetAdInsightsByID(adID string, filters *domain.InsightFilters) (*metadomain.AdInsight, error)
	GetAdDeviceImpressions(adID string, filters *domain.InsightFilters) ([]metadomain.DeviceImpression, error)
	GetAdAccountInsightsByID(accountID string, filters *domain.InsightFilters, params *url.Values) (*metadomain.AdAccountInsight, error)
	GetAdAccountsByBusinessID(businessID string) ([]metadomain.AdAccount, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken exchanges the current token for a new long-lived one
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken checks the current token and renews it when needed
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse processes the HTTP response and detects expired tokens
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
