package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adlens/ad-confidence-api/infrastructure/integrator/meta/domain"
	"github.com/adlens/ad-confidence-api/internal/config"
)

// tokenRenewedMsg signals callers that the token was refreshed mid-request
// and the original call should be retried.
const tokenRenewedMsg = "token expired and renewed, please retry"

// TokenManager manages Meta API access tokens
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
		stopRefresh:       make(chan struct{}),
	}
}

func (tm *TokenManager) InitToken() {
	if tm.cfg.Meta.LongLivedToken == "" {
		logrus.Info("Long-lived token not found. Starting exchange...")
		if err := tm.InitiateToken(); err != nil {
			logrus.Errorf("Failed to initialize long-lived token: %v", err)
			logrus.Warn("The Meta API may have limited functionality until the token is configured")
		}

		logrus.Info("Long-lived token initialized")
	} else if tm.cfg.Meta.TokenExpiresAt.IsZero() {
		// A long-lived token exists but we don't know when it expires, so
		// validate it and fetch the expiry.
		logrus.Info("Validating existing long-lived token...")
		if err := tm.ValidateExistingToken(); err != nil {
			logrus.Errorf("Failed to validate existing token: %v", err)
			logrus.Warn("Trying to renew the token...")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Failed to renew token: %v", err)
				logrus.Warn("The Meta API may have limited functionality until the token is renewed")
			}
		} else {
			logrus.Info("Long-lived token validated")
		}
	} else {
		if err := tm.EnsureValidToken(); err != nil {
			logrus.Errorf("Error checking token validity: %v", err)
		}
	}
}

// StartAutoRefresh runs a goroutine that refreshes the token periodically
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.InitiateToken(); err != nil {
		logrus.Errorf("Error initiating token: %v", err)
	}

	// Roughly daily, kept under 24h so renewal happens before expiry windows
	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Starting periodic Meta token renewal")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Error during periodic token renewal: %v", err)

				// On failure, retry on a shorter interval
				ticker.Reset(1 * time.Hour)
			} else {
				logrus.Info("Periodic token renewal completed")

				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Stopping periodic token renewal goroutine")
			return
		}
	}
}

// StopAutoRefresh stops the automatic renewal goroutine
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// InitiateToken exchanges the short-lived token for a long-lived one
func (tm *TokenManager) InitiateToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Another goroutine may have initialized it while we waited on the lock
	if tm.cfg.Meta.LongLivedToken != "" {
		return nil
	}

	tokenResponse, err := GetLongLivedToken(
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		return fmt.Errorf("error obtaining long-lived token: %w", err)
	}

	tm.cfg.Meta.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

	logrus.Infof("Long-lived token initialized. Expires at: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// ValidateExistingToken validates an existing token and updates its expiry
func (tm *TokenManager) ValidateExistingToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	isValid, err := CheckTokenValidity(tm.cfg.Meta.LongLivedToken, tm.cfg.Meta.URL)
	if err != nil {
		return fmt.Errorf("error checking long-lived token validity: %w", err)
	}

	if !isValid {
		return tm.refreshTokenInternal()
	}

	debugInfo, err := GetDebugTokenInfo(
		tm.cfg.Meta.LongLivedToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		return fmt.Errorf("error fetching token info: %w", err)
	}

	if data, ok := debugInfo["data"].(map[string]interface{}); ok {
		if expiresAt, ok := data["expires_at"].(float64); ok {
			tm.cfg.Meta.TokenExpiresAt = time.Unix(int64(expiresAt), 0)
			// Pull the expiry forward a day so renewal happens before the real one
			tm.cfg.Meta.TokenExpiresAt = tm.cfg.Meta.TokenExpiresAt.Add(-24 * time.Hour)

			logrus.Infof("Long-lived token is valid. Expires at: %s",
				tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

			tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

			return nil
		}
	}

	return fmt.Errorf("could not determine when the token expires")
}

// RefreshToken obtains a new long-lived token
func (tm *TokenManager) RefreshToken() error {
	return tm.refreshTokenInternal()
}

func (tm *TokenManager) refreshTokenInternal() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	if !tm.cfg.Meta.TokenExpiresAt.IsZero() && time.Until(tm.cfg.Meta.TokenExpiresAt) < 1*time.Hour {
		logrus.Warn("Token is very close to expiry or already expired - manual reauthorization may be required")
	}

	logrus.Info("Starting token renewal...")
	tokenResponse, err := GetLongLivedToken(
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		errMsg := err.Error()

		if strings.Contains(errMsg, "Error validating access token") ||
			strings.Contains(errMsg, "Session has expired") ||
			strings.Contains(errMsg, "The session has been invalidated") {

			logrus.Error("The access token expired and cannot be renewed automatically. Reauthorization is required")

			return fmt.Errorf("the access token expired and cannot be renewed automatically; "+
				"the application must be reauthorized through the OAuth flow: %w", err)
		}

		logrus.Errorf("Error renewing token: %v", err)
		return fmt.Errorf("error obtaining new long-lived token: %w", err)
	}

	oldToken := tm.cfg.Meta.LongLivedToken
	tm.cfg.Meta.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

	if oldToken != tm.cfg.Meta.LongLivedToken {
		logrus.Infof("Long-lived token updated. Expires at: %s",
			tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))
	} else {
		logrus.Info("Token renewed but unchanged. This may indicate a problem with the Meta API")
	}

	return nil
}

// EnsureValidToken checks the current token and renews it when needed
func (tm *TokenManager) EnsureValidToken() error {
	if tm.cfg.Meta.AccessToken == "" {
		logrus.Info("Token not initialized. Initializing...")
		return tm.InitiateToken()
	}

	// Renew proactively when less than 24 hours remain
	if time.Until(tm.cfg.Meta.TokenExpiresAt) < 24*time.Hour {
		logrus.Info("Token expires in less than 24 hours. Renewing proactively...")
		return tm.RefreshToken()
	}

	return nil
}

// ParseErrorResponse tries to parse a Meta API error body
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse processes the HTTP response and detects expired tokens
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return tm.handleErrorResponse(body)
}

func (tm *TokenManager) handleErrorResponse(body []byte) ([]byte, error) {
	errorResp, parseErr := ParseErrorResponse(body)

	// Expired token detected through the JSON error structure
	if parseErr == nil && errorResp.IsTokenExpired() {
		return tm.handleExpiredToken(errorResp)
	}

	// Expired token detected through the error message text
	bodyStr := string(body)
	if containsTokenExpirationMessage(bodyStr) {
		return tm.handleExpiredTokenByMessage(bodyStr)
	}

	return nil, fmt.Errorf("API response error. Status: %d, Body: %s", http.StatusBadRequest, string(body))
}

func (tm *TokenManager) handleExpiredToken(errorResp *metadomain.ErrorResponse) ([]byte, error) {
	logrus.Warnf("Expired token reported by the Meta API. Code: %d, Subcode: %d",
		errorResp.Error.Code, errorResp.Error.ErrorSubcode)

	if refreshErr := tm.RefreshToken(); refreshErr != nil {
		if strings.Contains(refreshErr.Error(), "must be reauthorized") {
			return nil, fmt.Errorf("token expired permanently and requires manual reauthorization: %w", refreshErr)
		}
		return nil, fmt.Errorf("error renewing expired token: %w", refreshErr)
	}

	return nil, fmt.Errorf(tokenRenewedMsg)
}

func (tm *TokenManager) handleExpiredTokenByMessage(bodyStr string) ([]byte, error) {
	logrus.Warnf("Expired token detected through error message: %s", bodyStr)

	if refreshErr := tm.RefreshToken(); refreshErr != nil {
		if strings.Contains(refreshErr.Error(), "must be reauthorized") {
			return nil, fmt.Errorf("token expired permanently and requires manual reauthorization: %w", refreshErr)
		}
		return nil, fmt.Errorf("error renewing expired token: %w", refreshErr)
	}

	return nil, fmt.Errorf(tokenRenewedMsg)
}

func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
