package receipt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/KilauLaundry/laundry_pos_app/internal/utils"
)

// PaperWidth selects the thermal paper class the receipt is rendered for.
type PaperWidth string

const (
	Width58 PaperWidth = "58mm"
	Width80 PaperWidth = "80mm"
)

// Columns returns the printable column count for the paper class.
func (w PaperWidth) Columns() int {
	if w == Width80 {
		return 42
	}
	return 32
}

// ParsePaperWidth validates a width string from the API.
func ParsePaperWidth(s string) (PaperWidth, error) {
	switch PaperWidth(s) {
	case Width58:
		return Width58, nil
	case Width80:
		return Width80, nil
	}
	return "", fmt.Errorf("%w: unsupported paper width %q", apperrors.ErrValidation, s)
}

// Header carries the store identity printed at the top of every receipt.
type Header struct {
	StoreName  string
	BranchName string
}

// Output holds both renderings of one receipt. ESCPOS goes to a byte-stream
// printer channel; HTML is the fallback handed to a print dialog.
type Output struct {
	ESCPOS []byte
	HTML   string
}

type lineStyle int

const (
	styleLeft lineStyle = iota
	styleCenter
	styleCenterDouble
	styleDoubleLeft
)

type line struct {
	text  string
	style lineStyle
}

// Encode renders a paid transaction into both output formats. It is a pure
// function: identical input always yields byte-identical output, so reprints
// are safe to regenerate on demand. Only PAID transactions may be receipted.
func Encode(tx domain.Transaction, hdr Header, width PaperWidth) (Output, error) {
	if tx.Status != domain.StatusPaid || tx.PaidAt == nil {
		return Output{}, fmt.Errorf("%w: receipt requires a paid transaction, status is %s", apperrors.ErrConflict, tx.Status)
	}

	lines := buildLines(tx, hdr, width.Columns())
	return Output{
		ESCPOS: encodeESCPOS(lines),
		HTML:   encodeHTML(lines, width),
	}, nil
}

// buildLines lays out the receipt text once; both encoders consume the same
// lines so the printed totals can never disagree between formats.
func buildLines(tx domain.Transaction, hdr Header, cols int) []line {
	divider := strings.Repeat("-", cols)

	lines := []line{
		{hdr.StoreName, styleCenterDouble},
		{hdr.BranchName, styleCenter},
		{divider, styleLeft},
	}

	// Metadata rows wrap rather than clip so the full transaction code and
	// customer name survive on narrow paper.
	meta := []string{
		fmt.Sprintf("No      : %s", tx.Code),
		fmt.Sprintf("Tanggal : %s", tx.PaidAt.Format("02/01/2006 15:04")),
		fmt.Sprintf("Customer: %s", tx.CustomerName),
	}
	for _, m := range meta {
		for _, row := range wrap(m, cols) {
			lines = append(lines, line{row, styleLeft})
		}
	}
	lines = append(lines, line{divider, styleLeft})

	for _, item := range tx.LineItems {
		name := item.Name
		if item.Quantity > 1 {
			name = fmt.Sprintf("%s x%d", name, item.Quantity)
		}
		for _, row := range itemRows(name, utils.FormatRupiah(item.Subtotal), cols) {
			lines = append(lines, line{row, styleLeft})
		}
		if item.MachineLabel != nil {
			lines = append(lines, line{clip("  "+*item.MachineLabel, cols), styleLeft})
		}
	}

	lines = append(lines,
		line{divider, styleLeft},
		line{padRow("TOTAL", utils.FormatRupiah(tx.TotalAmount), cols), styleDoubleLeft},
		line{fmt.Sprintf("Bayar   : %s", methodLabel(tx.PaymentMethod)), styleLeft},
		line{divider, styleLeft},
		line{"Terima kasih!", styleCenter},
		line{"Simpan struk ini sebagai", styleCenter},
		line{"bukti pengambilan", styleCenter},
	)
	return lines
}

func methodLabel(m *domain.PaymentMethod) string {
	if m == nil {
		return "-"
	}
	if *m == domain.PaymentCash {
		return "Tunai"
	}
	return string(*m)
}

// itemRows renders a line item with the name left-justified and the amount
// right-justified. Long names wrap onto extra rows; the amount is never
// truncated and every row fits within cols.
func itemRows(name, amount string, cols int) []string {
	room := cols - utf8.RuneCountInString(amount) - 1
	if room < 1 {
		room = 1
	}

	segments := wrap(name, room)
	rows := make([]string, 0, len(segments))
	for i, seg := range segments {
		if i == len(segments)-1 {
			rows = append(rows, padRow(seg, amount, cols))
		} else {
			rows = append(rows, seg)
		}
	}
	return rows
}

// padRow joins a left and a right fragment with padding so the result is
// exactly cols wide. The left side yields when the two would collide.
func padRow(left, right string, cols int) string {
	gap := cols - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		keep := cols - utf8.RuneCountInString(right) - 1
		if keep < 0 {
			keep = 0
		}
		left = clip(left, keep)
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// wrap and clip slice on runes, not bytes, so multi-byte characters in item
// or customer names are never split mid-sequence.
func wrap(s string, width int) []string {
	runes := []rune(s)
	if len(runes) <= width {
		return []string{s}
	}
	var segments []string
	for len(runes) > width {
		segments = append(segments, string(runes[:width]))
		runes = runes[width:]
	}
	return append(segments, string(runes))
}

func clip(s string, cols int) string {
	runes := []rune(s)
	if len(runes) <= cols {
		return s
	}
	return string(runes[:cols])
}
