package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adlens/ad-confidence-api/infrastructure/integrator/meta/domain"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

type ResponseAdAccountMetrics struct {
	Data []metadomain.AdAccountInsight `json:"data"`
}

func (c *MetaClient) GetAdAccountInsightsByID(accountID string, filters *domain.InsightFilters, params *url.Values) (*metadomain.AdAccountInsight, error) {
	// Make sure the token is valid before making the request
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("error checking token validity: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))

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
			return c.GetAdAccountInsightsByID(accountID, filters, params)
		}
		return nil, err
	}

	var response ResponseAdAccountMetrics
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Error decoding JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, errors.New("no data found")
	}

	return &response.Data[0], nil
}
