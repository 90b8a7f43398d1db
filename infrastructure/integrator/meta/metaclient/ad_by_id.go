package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adlens/ad-confidence-api/infrastructure/integrator/meta/domain"
)

// GetAdByID fetches the ad object itself, mainly for created_time, which the
// insights endpoints do not return.
func (c *MetaClient) GetAdByID(adID string) (*metadomain.Ad, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("error checking token validity: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, adID)

	params := url.Values{}
	params.Add("fields", "id,name,status,created_time")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Error creating request")
		return nil, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Error performing request")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		if err.Error() == tokenRenewedMsg {
			return c.GetAdByID(adID)
		}
		return nil, err
	}

	var ad metadomain.Ad
	if err := json.Unmarshal(body, &ad); err != nil {
		logrus.WithError(err).Error("Error decoding JSON")
		return nil, err
	}

	if ad.ID == "" {
		return nil, fmt.Errorf("ad %s not found", adID)
	}

	return &ad, nil
}
