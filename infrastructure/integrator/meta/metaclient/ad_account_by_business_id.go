package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adlens/ad-confidence-api/infrastructure/integrator/meta/domain"
)

type ResponseAdAccounts struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// TODO follow paging cursors for businesses with more than 100 accounts
func (c *MetaClient) GetAdAccountsByBusinessID(businessID string) ([]metadomain.AdAccount, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("error checking token validity: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s/owned_ad_accounts", c.Cfg.Meta.URL, businessID)

	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("limit", "100")
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
			return c.GetAdAccountsByBusinessID(businessID)
		}
		return nil, err
	}

	var response ResponseAdAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Error decoding JSON")
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}
