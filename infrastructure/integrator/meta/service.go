package meta

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adlens/ad-confidence-api/infrastructure/integrator/meta/domain"
	"github.com/adlens/ad-confidence-api/infrastructure/integrator/meta/metaclient"
	"github.com/adlens/ad-confidence-api/internal/config"
	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/pkg/utils"
)

// metaCreatedTimeLayout is the timestamp format the Graph API uses for
// created_time.
const metaCreatedTimeLayout = "2006-01-02T15:04:05-0700"

// attributionTolerance is the relative difference between platform-attributed
// and pixel-reported conversions above which the two sources are considered
// to disagree.
const attributionTolerance = 0.10

// cpaLookbackDays is the trailing window for account-level CPA reads.
const cpaLookbackDays = 30

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAdMetricSnapshot assembles the delivery metrics the confidence gates
// evaluate: lifetime impressions, conversions from both attribution sources,
// iOS traffic share and spend, plus the ad's age taken from created_time.
func (s *MetaIntegrator) GetAdMetricSnapshot(accountID, adID string) (*domain.MetricSnapshot, error) {
	ad, err := s.Client.GetAdByID(adID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"ad_id":      adID,
			"error":      err.Error(),
		}).Error("snapshot: failed to get ad from API")
		return nil, err
	}

	createdTime, err := time.Parse(metaCreatedTimeLayout, ad.CreatedTime)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":        adID,
			"created_time": ad.CreatedTime,
			"error":        err.Error(),
		}).Error("snapshot: failed to parse ad created_time")
		return nil, fmt.Errorf("error parsing ad created_time: %w", err)
	}

	now := time.Now().UTC()
	filters := &domain.InsightFilters{
		StartDate: createdTime,
		EndDate:   now,
	}

	insight, err := s.Client.GetAdInsightsByID(adID, filters)
	if err != nil {
		// An ad that never delivered has no insight rows. That is an empty
		// snapshot, not a failure.
		if strings.Contains(err.Error(), "no data found") {
			return &domain.MetricSnapshot{
				AdID:       adID,
				AgeHours:   now.Sub(createdTime).Hours(),
				CapturedAt: now,
			}, nil
		}

		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"ad_id":      adID,
			"error":      err.Error(),
		}).Error("snapshot: failed to get ad insights from API")
		return nil, err
	}

	impressions, err := strconv.Atoi(insight.Impressions)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":             adID,
			"impressions_value": insight.Impressions,
			"error":             err.Error(),
		}).Warn("snapshot: error converting impressions to integer")
	}

	spend, err := strconv.ParseFloat(insight.Spend, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":       adID,
			"spend_value": insight.Spend,
			"error":       err.Error(),
		}).Warn("snapshot: error converting spend to float")
	}

	conversions := sumActionValues(insight.Actions, metadomain.ActionTypePurchase, metadomain.ActionTypeOmniPurchase)
	pixelConversions := sumActionValues(insight.Actions, metadomain.ActionTypePixelPurchase)

	iosShare, err := s.iosTrafficShare(adID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Warn("snapshot: failed to compute iOS traffic share, assuming zero")
		iosShare = 0
	}

	snapshot := &domain.MetricSnapshot{
		AdID:                adID,
		AgeHours:            now.Sub(createdTime).Hours(),
		Impressions:         impressions,
		Conversions:         conversions,
		PixelConversions:    pixelConversions,
		IOSTrafficShare:     iosShare,
		AttributionMismatch: attributionDisagrees(conversions, pixelConversions),
		Spend:               spend,
		CapturedAt:          now,
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"ad_id":       adID,
		"impressions": snapshot.Impressions,
		"conversions": snapshot.Conversions,
	}).Debug("snapshot: successfully assembled ad metric snapshot")

	return snapshot, nil
}

// GetAccountCPA computes the account's cost per purchase over the trailing
// window. Used as the baseline at follow time and the comparison value when
// outcomes resolve.
func (s *MetaIntegrator) GetAccountCPA(accountID string) (float64, error) {
	now := time.Now().UTC()
	filters := &domain.InsightFilters{
		StartDate: now.AddDate(0, 0, -cpaLookbackDays),
		EndDate:   now,
	}

	params := &url.Values{}
	params.Add("fields", "account_id,account_name,spend,actions")

	resp, err := s.Client.GetAdAccountInsightsByID(accountID, filters, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("snapshot: failed to get ad account insights from API")
		return 0, err
	}

	spend, err := strconv.ParseFloat(resp.Spend, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"spend_value": resp.Spend,
			"error":       err.Error(),
		}).Warn("snapshot: error converting spend to float")
	}

	purchases := sumActionValues(resp.Actions, metadomain.ActionTypePurchase, metadomain.ActionTypeOmniPurchase)
	if purchases == 0 {
		return 0, fmt.Errorf("account %s has no purchases in the last %d days, CPA is undefined", accountID, cpaLookbackDays)
	}

	return utils.RoundWithTwoDecimalPlace(spend / float64(purchases)), nil
}

func (s *MetaIntegrator) GetAdAccounts() ([]*domain.AdAccount, error) {
	bms, err := s.getBusinessManagers()
	if err != nil {
		logrus.WithError(err).Error("snapshot: failed to get business managers")
		return nil, err
	}

	allAdAccounts := make([]*domain.AdAccount, 0)
	for _, b := range bms {
		logrus.WithFields(logrus.Fields{
			"business_id":   b.ID,
			"business_name": b.Name,
		}).Debug("snapshot: fetching ad accounts for business")

		adAccounts, err := s.Client.GetAdAccountsByBusinessID(b.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": b.ID,
				"error":       err.Error(),
			}).Error("snapshot: failed to get ad accounts for business")
			continue
		}

		for _, adAccount := range adAccounts {
			allAdAccounts = append(allAdAccounts, &domain.AdAccount{
				ExternalID:          adAccount.ID,
				Name:                adAccount.Name,
				Nickname:            &adAccount.Name,
				Origin:              "meta",
				BusinessManagerID:   b.ID,
				BusinessManagerName: b.Name,
			})
		}
	}

	logrus.WithField("total_accounts", len(allAdAccounts)).Info("snapshot: successfully retrieved all ad accounts")

	return allAdAccounts, nil
}

func (s *MetaIntegrator) getBusinessManagers() ([]metadomain.BusinessManager, error) {
	if err := s.Client.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("error checking token validity: %w", err)
	}

	url := fmt.Sprintf("%s/me/businesses?limit=100&access_token=%s", s.cfg.Meta.URL, s.cfg.Meta.AccessToken)

	data, err := utils.MakeRequest(url)
	if err != nil {
		if strings.Contains(err.Error(), "Error on Request") {
			if refreshErr := s.Client.RefreshToken(); refreshErr != nil {
				return nil, fmt.Errorf("error renewing token: %w", refreshErr)
			}

			url = fmt.Sprintf("%s/me/businesses?limit=100&access_token=%s", s.cfg.Meta.URL, s.cfg.Meta.AccessToken)

			data, err = utils.MakeRequest(url)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	var response struct {
		Data []metadomain.BusinessManager `json:"data"`
	}
	err = json.Unmarshal(data, &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (s *MetaIntegrator) iosTrafficShare(adID string, filters *domain.InsightFilters) (float64, error) {
	rows, err := s.Client.GetAdDeviceImpressions(adID, filters)
	if err != nil {
		return 0, err
	}

	total := 0
	ios := 0
	for _, row := range rows {
		impressions, err := strconv.Atoi(row.Impressions)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id":             adID,
				"device":            row.Device,
				"impressions_value": row.Impressions,
				"error":             err.Error(),
			}).Warn("snapshot: error converting device impressions to integer")
			continue
		}

		total += impressions
		if isIOSDevice(row.Device) {
			ios += impressions
		}
	}

	if total == 0 {
		return 0, nil
	}

	return float64(ios) / float64(total), nil
}

func isIOSDevice(device string) bool {
	switch strings.ToLower(device) {
	case "iphone", "ipad", "ipod":
		return true
	}
	return false
}

// sumActionValues adds up the values of the given action types. Values come
// through as strings; unparseable entries are logged and skipped.
func sumActionValues(actions []metadomain.Action, actionTypes ...string) int {
	total := 0
	for _, action := range actions {
		for _, actionType := range actionTypes {
			if action.ActionType != actionType {
				continue
			}

			value, err := strconv.Atoi(action.Value)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"action_type":  action.ActionType,
					"action_value": action.Value,
					"error":        err.Error(),
				}).Warn("snapshot: error converting action value to integer")
				continue
			}

			total += value
		}
	}

	return total
}

// attributionDisagrees reports whether the platform-attributed and
// pixel-reported conversion counts differ by more than the tolerance,
// relative to the larger of the two.
func attributionDisagrees(conversions, pixelConversions int) bool {
	if conversions == 0 && pixelConversions == 0 {
		return false
	}

	larger := conversions
	if pixelConversions > larger {
		larger = pixelConversions
	}

	diff := conversions - pixelConversions
	if diff < 0 {
		diff = -diff
	}

	return float64(diff)/float64(larger) > attributionTolerance
}
