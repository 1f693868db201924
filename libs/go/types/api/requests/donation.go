package requests

// DonationItem is one gift transaction in an online donation batch.
type DonationItem struct {
	MasterCustomerID string  `json:"MasterCustomerID,omitempty"`
	Email            string  `json:"Email" binding:"required"`
	FirstName        string  `json:"FirstName,omitempty"`
	LastName         string  `json:"LastName,omitempty"`
	Amount           float64 `json:"Amount" binding:"required"`
	CampaignName     string  `json:"CampaignName" binding:"required"`
	GiftDate         string  `json:"GiftDate,omitempty"`
	SalesChannel     string  `json:"SalesChannel,omitempty"`
	ReceiptEmail     string  `json:"ReceiptEmail,omitempty"`
	SendReceipt      bool    `json:"SendReceipt"`
}

// CreateDonationRequest is the CreateOnlineDonationTransactionWS payload.
type CreateDonationRequest struct {
	DonationList []DonationItem `json:"DonationList" binding:"required,min=1,dive"`
}
