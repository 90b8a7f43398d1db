package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adlens/ad-confidence-api/infrastructure/integrator/meta/domain"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

type ResponseDeviceImpressions struct {
	Data   []metadomain.DeviceImpression `json:"data"`
	Paging metadomain.Paging             `json:"paging"`
}

// GetAdDeviceImpressions fetches the ad's impressions broken down by device,
// the input for the iOS traffic share.
func (c *MetaClient) GetAdDeviceImpressions(adID string, filters *domain.InsightFilters) ([]metadomain.DeviceImpression, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("error checking token validity: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, adID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "impressions")
	params.Add("breakdowns", "impression_device")
	params.Add("level", "ad")
	params.Add("time_range", timeRange)
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
			return c.GetAdDeviceImpressions(adID, filters)
		}
		return nil, err
	}

	var response ResponseDeviceImpressions
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Error decoding JSON")
		return nil, err
	}

	// An ad with no delivery legitimately has no breakdown rows.
	return response.Data, nil
}
