package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/middleware"
	"github.com/KilauLaundry/laundry_pos_app/internal/platform/config"
	"github.com/KilauLaundry/laundry_pos_app/internal/receipt"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	paymentService     portssvc.PaymentSvcFacade
	branchService      portssvc.BranchSvcFacade
	storeName          string
}

func newTransactionHandler(
	ts portssvc.TransactionSvcFacade,
	ps portssvc.PaymentSvcFacade,
	bs portssvc.BranchSvcFacade,
	storeName string,
) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		paymentService:     ps,
		branchService:      bs,
		storeName:          storeName,
	}
}

// registerTransactionRoutes wires up routes for the transaction lifecycle,
// the two-step payment flow, and receipt rendering.
func registerTransactionRoutes(
	rg *gin.RouterGroup,
	cfg *config.Config,
	ts portssvc.TransactionSvcFacade,
	ps portssvc.PaymentSvcFacade,
	bs portssvc.BranchSvcFacade,
) {
	h := newTransactionHandler(ts, ps, bs, cfg.StoreName)
	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:txnID", h.getTransactionByID)
		transactions.PUT("/:txnID/items", h.replaceLineItems)
		transactions.POST("/:txnID/pay/select", h.selectPaymentMethod)
		transactions.POST("/:txnID/pay", h.confirmPayment)
		transactions.GET("/:txnID/payment", h.getPaymentFlow)
		transactions.POST("/:txnID/cancel", h.cancelTransaction)
		transactions.GET("/:txnID/receipt", h.getReceipt)
	}
}

// createTransaction godoc
// @Summary Create a draft transaction
// @Description Opens a new draft transaction for a customer visit at a branch.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Draft created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Branch not found"
// @Router /transactions [post]
// @Security BearerAuth
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cashierID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		logger.Error("Employee ID missing from context in createTransaction")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create transaction request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	// Cashiers without an explicit shift inherit the one they logged in with.
	if req.Shift == "" {
		if claims, ok := middleware.GetSessionClaimsFromContext(c); ok {
			req.Shift = string(claims.Shift)
		}
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), req, cashierID)
	if err != nil {
		logger.Error("Failed to create transaction", "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// listTransactions godoc
// @Summary List transactions for a branch
// @Description Retrieves a keyset-paginated transaction listing, newest first, optionally filtered by status.
// @Tags transactions
// @Produce json
// @Param branchID query string true "Branch ID"
// @Param status query string false "Status filter" Enums(DRAFT, PAID, CANCELLED)
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse "Transaction page"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list transactions params", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list transactions", "branch_id", params.BranchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// getTransactionByID godoc
// @Summary Get a transaction
// @Description Retrieves a transaction with its line items by ID.
// @Tags transactions
// @Produce json
// @Param txnID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{txnID} [get]
// @Security BearerAuth
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID := c.Param("txnID")

	tx, err := h.transactionService.GetTransactionByID(c.Request.Context(), txnID)
	if err != nil {
		logger.Warn("Failed to get transaction", "transaction_id", txnID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// replaceLineItems godoc
// @Summary Replace a draft's line items
// @Description Swaps the full line-item set of a draft transaction and recomputes the total. Only drafts are editable.
// @Tags transactions
// @Accept json
// @Produce json
// @Param txnID path string true "Transaction ID"
// @Param items body dto.ReplaceLineItemsRequest true "New line items"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not a draft"
// @Router /transactions/{txnID}/items [put]
// @Security BearerAuth
func (h *transactionHandler) replaceLineItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID := c.Param("txnID")

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.ReplaceLineItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid replace line items request", "transaction_id", txnID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	tx, err := h.transactionService.ReplaceLineItems(c.Request.Context(), txnID, req, actorID)
	if err != nil {
		logger.Error("Failed to replace line items", "transaction_id", txnID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// selectPaymentMethod godoc
// @Summary Select a payment method
// @Description Records the chosen payment method for a draft (step one of two). Nothing is committed until confirm.
// @Tags payments
// @Accept json
// @Produce json
// @Param txnID path string true "Transaction ID"
// @Param selection body dto.SelectPaymentMethodRequest true "Chosen method"
// @Success 200 {object} domain.PaymentFlow "Current payment flow state"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not a draft"
// @Router /transactions/{txnID}/pay/select [post]
// @Security BearerAuth
func (h *transactionHandler) selectPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID := c.Param("txnID")

	var req dto.SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid select payment method request", "transaction_id", txnID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	flow, err := h.paymentService.SelectPaymentMethod(c.Request.Context(), txnID, req.Method)
	if err != nil {
		logger.Error("Failed to select payment method", "transaction_id", txnID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flow)
}

// confirmPayment godoc
// @Summary Confirm payment
// @Description Commits the Draft -> Paid transition (step two of two). The method must match the earlier selection and confirm must be true.
// @Tags payments
// @Accept json
// @Produce json
// @Param txnID path string true "Transaction ID"
// @Param confirmation body dto.ConfirmPaymentRequest true "Payment confirmation"
// @Success 200 {object} dto.TransactionResponse "Paid transaction"
// @Failure 400 {object} map[string]string "Invalid input or method mismatch"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction already settled elsewhere"
// @Router /transactions/{txnID}/pay [post]
// @Security BearerAuth
func (h *transactionHandler) confirmPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID := c.Param("txnID")

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid confirm payment request", "transaction_id", txnID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	tx, err := h.paymentService.ConfirmPayment(c.Request.Context(), txnID, req.Method, actorID)
	if err != nil {
		logger.Error("Failed to confirm payment", "transaction_id", txnID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// getPaymentFlow godoc
// @Summary Get the payment flow state
// @Description Returns the current two-step payment workflow state for a transaction.
// @Tags payments
// @Produce json
// @Param txnID path string true "Transaction ID"
// @Success 200 {object} domain.PaymentFlow "Payment flow state"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /transactions/{txnID}/payment [get]
// @Security BearerAuth
func (h *transactionHandler) getPaymentFlow(c *gin.Context) {
	txnID := c.Param("txnID")
	c.JSON(http.StatusOK, h.paymentService.GetFlow(txnID))
}

// cancelTransaction godoc
// @Summary Cancel a draft transaction
// @Description Transitions Draft -> Cancelled. The record is kept as an audit trail.
// @Tags transactions
// @Produce json
// @Param txnID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse "Cancelled transaction"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction already settled"
// @Router /transactions/{txnID}/cancel [post]
// @Security BearerAuth
func (h *transactionHandler) cancelTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID := c.Param("txnID")

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	tx, err := h.transactionService.CancelTransaction(c.Request.Context(), txnID, actorID)
	if err != nil {
		logger.Error("Failed to cancel transaction", "transaction_id", txnID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// getReceipt godoc
// @Summary Render a receipt
// @Description Renders the receipt for a paid transaction as an ESC/POS byte stream (base64) and an HTML fallback.
// @Tags transactions
// @Produce json
// @Param txnID path string true "Transaction ID"
// @Param width query string false "Paper width" Enums(58mm, 80mm) default(58mm)
// @Success 200 {object} dto.ReceiptResponse "Rendered receipt"
// @Failure 400 {object} map[string]string "Unknown paper width"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not paid"
// @Router /transactions/{txnID}/receipt [get]
// @Security BearerAuth
func (h *transactionHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID := c.Param("txnID")

	width, err := receipt.ParsePaperWidth(c.DefaultQuery("width", string(receipt.Width58)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.transactionService.GetTransactionByID(c.Request.Context(), txnID)
	if err != nil {
		logger.Warn("Failed to get transaction for receipt", "transaction_id", txnID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	branch, err := h.branchService.GetBranchByID(c.Request.Context(), tx.BranchID)
	if err != nil {
		logger.Error("Failed to get branch for receipt", "branch_id", tx.BranchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	out, err := receipt.Encode(*tx, receipt.Header{StoreName: h.storeName, BranchName: branch.Name}, width)
	if err != nil {
		logger.Warn("Failed to render receipt", "transaction_id", txnID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ReceiptResponse{
		TransactionID: tx.TransactionID,
		Code:          tx.Code,
		PaperWidth:    string(width),
		ESCPOS:        base64.StdEncoding.EncodeToString(out.ESCPOS),
		HTML:          out.HTML,
	})
}
