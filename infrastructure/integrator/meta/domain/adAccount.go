package metadomain

type BusinessManager struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdAccount struct {
	BusinessManagerID   string `json:"business_id"`
	BusinessManagerName string `json:"business_name"`
	ID                  string `json:"id"`
	Name                string `json:"name"`
}

type AdAccountInsight struct {
	AccountID      string   `json:"account_id"`
	Actions        []Action `json:"actions"`
	CostPerActions []Action `json:"cost_per_action_type"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
	Impressions    string   `json:"impressions"`
	Name           string   `json:"account_name"`
	Spend          string   `json:"spend"`
}
