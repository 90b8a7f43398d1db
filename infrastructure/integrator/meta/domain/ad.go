package metadomain

// Action is a single action entry from the Meta insights API. Values arrive
// as strings regardless of their real type.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Action types relevant to conversion counting. Platform-attributed
// purchases and pixel-reported purchases come through as distinct entries.
const (
	ActionTypePurchase      = "purchase"
	ActionTypeOmniPurchase  = "omni_purchase"
	ActionTypePixelPurchase = "offsite_conversion.fb_pixel_purchase"
)

type Ad struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	CreatedTime string `json:"created_time"`
}

type AdInsight struct {
	AdID        string   `json:"ad_id"`
	AdName      string   `json:"ad_name"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Spend       string   `json:"spend"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

// DeviceImpression is one row of an insights query broken down by
// impression_device.
type DeviceImpression struct {
	Device      string `json:"impression_device"`
	Impressions string `json:"impressions"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}
