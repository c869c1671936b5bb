package rest

// PurchaseRequest is the body of POST /api/v1/purchase
type PurchaseRequest struct {
	Buyer    string `json:"buyer" binding:"required"`
	Quantity uint64 `json:"quantity" binding:"required"`
	// Payment is the supplied settlement-unit amount as a decimal string
	Payment string `json:"payment" binding:"required"`
}

// PresalePurchaseRequest is the body of POST /api/v1/presale-purchase
type PresalePurchaseRequest struct {
	Buyer       string `json:"buyer" binding:"required"`
	Quantity    uint64 `json:"quantity" binding:"required"`
	MaxQuantity uint64 `json:"max_quantity" binding:"required"`
	// PricePerItem is the allow-listed per-item price in reference units
	PricePerItem string `json:"price_per_item" binding:"required"`
	// Proof is the merkle sibling path, leaf-first, hex encoded
	Proof   []string `json:"proof"`
	Payment string   `json:"payment" binding:"required"`
}

// PurchaseResponse returns the first allocated identifier of the batch
type PurchaseResponse struct {
	FirstItemID uint64 `json:"first_item_id"`
}

// AdminMintRequest is the body of POST /api/v1/admin/mint
type AdminMintRequest struct {
	Caller    string `json:"caller" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	Quantity  uint64 `json:"quantity" binding:"required"`
}

// WithdrawRequest is the body of POST /api/v1/admin/withdraw
type WithdrawRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// WithdrawResponse reports the withdrawn settlement amount
type WithdrawResponse struct {
	Amount string `json:"amount"`
}

// FinalizeRequest is the body of POST /api/v1/admin/finalize
type FinalizeRequest struct {
	Caller string `json:"caller" binding:"required"`
}

// FinalizeResponse reports the new edition cap
type FinalizeResponse struct {
	EditionSize uint64 `json:"edition_size"`
}

// SalesConfigurationRequest is the body of PUT /api/v1/admin/sales-configuration.
// Window bounds are unix seconds; 0 leaves a bound unset.
type SalesConfigurationRequest struct {
	Caller            string `json:"caller" binding:"required"`
	PublicPrice       string `json:"public_price"`
	MaxPerAddress     uint32 `json:"max_per_address"`
	PresaleMerkleRoot string `json:"presale_merkle_root"`
	PublicStart       int64  `json:"public_start"`
	PublicEnd         int64  `json:"public_end"`
	PresaleStart      int64  `json:"presale_start"`
	PresaleEnd        int64  `json:"presale_end"`
}

// FundsRecipientRequest is the body of PUT /api/v1/admin/funds-recipient
type FundsRecipientRequest struct {
	Caller    string `json:"caller" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
}

// MetadataRendererRequest is the body of PUT /api/v1/admin/metadata-renderer
type MetadataRendererRequest struct {
	Caller      string `json:"caller" binding:"required"`
	BaseURI     string `json:"base_uri" binding:"required"`
	ContractURI string `json:"contract_uri"`
}

// WalletCountersResponse returns per-buyer mint counts
type WalletCountersResponse struct {
	Address       string `json:"address"`
	PresaleMinted uint64 `json:"presale_minted"`
	TotalMinted   uint64 `json:"total_minted"`
}

// SaleRecordResponse is one settled sale in the audit log
type SaleRecordResponse struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Buyer        string `json:"buyer"`
	Quantity     uint64 `json:"quantity"`
	PricePerItem string `json:"price_per_item"`
	FirstItemID  uint64 `json:"first_item_id"`
	CreatedAt    string `json:"created_at"`
}

// MetadataURIResponse carries a resolved metadata URI
type MetadataURIResponse struct {
	URI string `json:"uri"`
}
