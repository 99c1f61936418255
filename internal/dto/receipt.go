package dto

// ReceiptResponse carries both renderings of a receipt. The ESC/POS stream is
// base64 encoded for transport; clients with a direct printer channel decode
// and forward it, others open the HTML in a print dialog.
type ReceiptResponse struct {
	TransactionID string `json:"transactionID"`
	Code          string `json:"code"`
	PaperWidth    string `json:"paperWidth"`
	ESCPOS        string `json:"escpos"` // base64
	HTML          string `json:"html"`
}
