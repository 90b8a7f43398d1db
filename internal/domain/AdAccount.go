package domain

type BusinessManager struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ExternalID string `json:"external_id"`
	Origin     string `json:"origin"`
}

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

type AdAccount struct {
	BusinessManagerID   string          `json:"business_id"`
	BusinessManagerName string          `json:"business_name"`
	ExternalID          string          `json:"external_id"`
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Nickname            *string         `json:"nickname"`
	Origin              string          `json:"origin"`
	Vertical            *string         `json:"vertical"`
	OwnerUserID         *int            `json:"owner_user_id"`
	Status              AdAccountStatus `json:"status"`
}

type AdAccountResponse struct {
	ExternalID string          `json:"external_id"`
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Vertical   *string         `json:"vertical"`
	Status     AdAccountStatus `json:"status"`
}

type UpdateAdAccountRequest struct {
	ID          string  `json:"id"`
	Nickname    *string `json:"nickname,omitempty"`
	Vertical    *string `json:"vertical,omitempty"`
	OwnerUserID *int    `json:"owner_user_id,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type UpdateAdAccountResponse struct {
	ID          string  `json:"id"`
	Nickname    *string `json:"nickname,omitempty"`
	Vertical    *string `json:"vertical,omitempty"`
	OwnerUserID *int    `json:"owner_user_id,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
