package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/engine"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetStatus returns the read-only sale snapshot
	// GET /api/v1/status
	GetStatus(c *gin.Context)

	// Purchase executes a public-phase purchase
	// POST /api/v1/purchase
	Purchase(c *gin.Context)

	// PresalePurchase executes a presale purchase gated by a membership proof
	// POST /api/v1/presale-purchase
	PresalePurchase(c *gin.Context)

	// ListSales lists settled sales, newest first
	// GET /api/v1/sales?limit=<limit>&offset=<offset>
	ListSales(c *gin.Context)

	// GetWalletCounters returns per-buyer mint counts
	// GET /api/v1/wallets/:address/counters
	GetWalletCounters(c *gin.Context)

	// GetItemMetadataURI resolves one item's metadata URI
	// GET /api/v1/items/:id/metadata-uri
	GetItemMetadataURI(c *gin.Context)

	// GetCollectionMetadataURI resolves the collection metadata URI
	// GET /api/v1/collection/metadata-uri
	GetCollectionMetadataURI(c *gin.Context)

	// AdminMint mints items to a recipient, owner only, free of payment
	// POST /api/v1/admin/mint
	AdminMint(c *gin.Context)

	// Withdraw transfers the held balance to the funds recipient
	// POST /api/v1/admin/withdraw
	Withdraw(c *gin.Context)

	// Finalize converts an open edition into a capped one
	// POST /api/v1/admin/finalize
	Finalize(c *gin.Context)

	// SetSalesConfiguration replaces the sale parameters
	// PUT /api/v1/admin/sales-configuration
	SetSalesConfiguration(c *gin.Context)

	// SetFundsRecipient replaces the withdrawal destination
	// PUT /api/v1/admin/funds-recipient
	SetFundsRecipient(c *gin.Context)

	// SetMetadataRenderer swaps the metadata renderer
	// PUT /api/v1/admin/metadata-renderer
	SetMetadataRenderer(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	engine *engine.Engine
}

// NewHandler creates a new REST API handler over the engine
func NewHandler(eng *engine.Engine) Handler {
	return &handler{engine: eng}
}

func (h *handler) GetStatus(c *gin.Context) {
	status, err := h.engine.Status(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *handler) Purchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	buyer, ok := parseAddress(c, req.Buyer, "buyer")
	if !ok {
		return
	}
	payment, ok := parseAmount(c, req.Payment, "payment")
	if !ok {
		return
	}

	firstID, err := h.engine.Purchase(c.Request.Context(), buyer, req.Quantity, payment)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, PurchaseResponse{FirstItemID: firstID})
}

func (h *handler) PresalePurchase(c *gin.Context) {
	var req PresalePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	buyer, ok := parseAddress(c, req.Buyer, "buyer")
	if !ok {
		return
	}
	price, ok := parseAmount(c, req.PricePerItem, "price_per_item")
	if !ok {
		return
	}
	payment, ok := parseAmount(c, req.Payment, "payment")
	if !ok {
		return
	}

	proof := make([]common.Hash, len(req.Proof))
	for i, p := range req.Proof {
		proof[i] = common.HexToHash(p)
	}

	firstID, err := h.engine.PresalePurchase(
		c.Request.Context(), buyer, req.Quantity, req.MaxQuantity, price, proof, payment)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, PurchaseResponse{FirstItemID: firstID})
}

func (h *handler) ListSales(c *gin.Context) {
	limit := parseIntQuery(c, "limit", 50)
	offset := parseIntQuery(c, "offset", 0)

	records, err := h.engine.SaleRecords(c.Request.Context(), limit, offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	out := make([]SaleRecordResponse, len(records))
	for i, r := range records {
		out[i] = SaleRecordResponse{
			ID:           r.ID.String(),
			Kind:         string(r.Kind),
			Buyer:        r.Buyer,
			Quantity:     r.Quantity,
			PricePerItem: r.PricePerItem,
			FirstItemID:  r.FirstItemID,
			CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, gin.H{"sales": out})
}

func (h *handler) GetWalletCounters(c *gin.Context) {
	address, ok := parseAddress(c, c.Param("address"), "address")
	if !ok {
		return
	}

	counters, err := h.engine.WalletCounters(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, WalletCountersResponse{
		Address:       address.Hex(),
		PresaleMinted: counters.PresaleMinted,
		TotalMinted:   counters.TotalMinted,
	})
}

func (h *handler) GetItemMetadataURI(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid item id")
		return
	}
	c.JSON(http.StatusOK, MetadataURIResponse{URI: h.engine.ItemURI(id)})
}

func (h *handler) GetCollectionMetadataURI(c *gin.Context) {
	c.JSON(http.StatusOK, MetadataURIResponse{URI: h.engine.CollectionURI()})
}

func (h *handler) AdminMint(c *gin.Context) {
	var req AdminMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	caller, ok := parseAddress(c, req.Caller, "caller")
	if !ok {
		return
	}
	recipient, ok := parseAddress(c, req.Recipient, "recipient")
	if !ok {
		return
	}

	firstID, err := h.engine.AdminMint(c.Request.Context(), caller, recipient, req.Quantity)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, PurchaseResponse{FirstItemID: firstID})
}

func (h *handler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	caller, ok := parseAddress(c, req.Caller, "caller")
	if !ok {
		return
	}

	amount, err := h.engine.Withdraw(c.Request.Context(), caller)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, WithdrawResponse{Amount: amount.Dec()})
}

func (h *handler) Finalize(c *gin.Context) {
	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	caller, ok := parseAddress(c, req.Caller, "caller")
	if !ok {
		return
	}

	size, err := h.engine.FinalizeOpenEdition(c.Request.Context(), caller)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, FinalizeResponse{EditionSize: size})
}

func (h *handler) SetSalesConfiguration(c *gin.Context) {
	var req SalesConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	caller, ok := parseAddress(c, req.Caller, "caller")
	if !ok {
		return
	}
	price, ok := parseAmount(c, req.PublicPrice, "public_price")
	if !ok {
		return
	}

	cfg := &domain.SalesConfiguration{
		PublicPrice:       price,
		MaxPerAddress:     req.MaxPerAddress,
		PresaleMerkleRoot: common.HexToHash(req.PresaleMerkleRoot),
		PublicStart:       timeOrZero(req.PublicStart),
		PublicEnd:         timeOrZero(req.PublicEnd),
		PresaleStart:      timeOrZero(req.PresaleStart),
		PresaleEnd:        timeOrZero(req.PresaleEnd),
	}
	if err := h.engine.SetSalesConfiguration(c.Request.Context(), caller, cfg); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) SetFundsRecipient(c *gin.Context) {
	var req FundsRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	caller, ok := parseAddress(c, req.Caller, "caller")
	if !ok {
		return
	}
	recipient, ok := parseAddress(c, req.Recipient, "recipient")
	if !ok {
		return
	}

	if err := h.engine.SetFundsRecipient(c.Request.Context(), caller, recipient); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) SetMetadataRenderer(c *gin.Context) {
	var req MetadataRendererRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	caller, ok := parseAddress(c, req.Caller, "caller")
	if !ok {
		return
	}

	if err := h.engine.SetMetadataRenderer(c.Request.Context(), caller, req.BaseURI, req.ContractURI); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// parseAddress validates and parses a hex address field; on failure it writes
// the error response and returns false
func parseAddress(c *gin.Context, value, field string) (common.Address, bool) {
	if !common.IsHexAddress(value) {
		respondValidationError(c, field+" is not a valid address")
		return common.Address{}, false
	}
	return common.HexToAddress(value), true
}

// parseAmount parses a decimal u256 amount field; empty means zero
func parseAmount(c *gin.Context, value, field string) (*uint256.Int, bool) {
	if value == "" {
		return uint256.NewInt(0), true
	}
	amount, err := uint256.FromDecimal(value)
	if err != nil {
		respondValidationError(c, field+" is not a valid decimal amount")
		return nil, false
	}
	return amount, true
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func timeOrZero(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
