package receipt

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidTransaction() domain.Transaction {
	paidAt := time.Date(2026, 8, 29, 10, 15, 0, 0, time.UTC)
	method := domain.PaymentCash
	machineLabel := "Washer 3"
	machineID := "machine-1"
	return domain.Transaction{
		TransactionID: "tx-1",
		Code:          "TRX-JKT01-20260829-7KQ2",
		BranchID:      "branch-1",
		CashierID:     "cashier-1",
		CustomerName:  "Budi",
		Status:        domain.StatusPaid,
		PaymentMethod: &method,
		PaidAt:        &paidAt,
		Shift:         domain.ShiftMorning,
		LineItems: []domain.LineItem{
			{
				Kind:         domain.ItemService,
				Name:         "Cuci Reguler",
				UnitPrice:    decimal.NewFromInt(15000),
				Quantity:     1,
				Subtotal:     decimal.NewFromInt(15000),
				MachineID:    &machineID,
				MachineLabel: &machineLabel,
				Position:     0,
			},
		},
		TotalAmount: decimal.NewFromInt(15000),
	}
}

func testHeader() Header {
	return Header{StoreName: "Kilau Laundry", BranchName: "Cabang Tebet"}
}

func TestEncode_RequiresPaidTransaction(t *testing.T) {
	tx := paidTransaction()
	tx.Status = domain.StatusDraft

	_, err := Encode(tx, testHeader(), Width58)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestEncode_Deterministic(t *testing.T) {
	tx := paidTransaction()

	first, err := Encode(tx, testHeader(), Width58)
	require.NoError(t, err)
	second, err := Encode(tx, testHeader(), Width58)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first.ESCPOS, second.ESCPOS), "ESC/POS output must be byte-identical across calls")
	assert.Equal(t, first.HTML, second.HTML, "HTML output must be character-identical across calls")
}

func TestEncode_StreamStructure(t *testing.T) {
	tx := paidTransaction()

	out, err := Encode(tx, testHeader(), Width80)
	require.NoError(t, err)

	// Initialize first, partial cut last.
	assert.True(t, bytes.HasPrefix(out.ESCPOS, []byte{0x1b, 0x40}))
	assert.True(t, bytes.HasSuffix(out.ESCPOS, []byte{0x1d, 0x56, 0x42, 0x00}))
	// Centered double-height header and the styled total line are present.
	assert.True(t, bytes.Contains(out.ESCPOS, []byte{0x1b, 0x61, 0x01}))
	assert.True(t, bytes.Contains(out.ESCPOS, []byte{0x1d, 0x21, 0x01}))
	assert.True(t, bytes.Contains(out.ESCPOS, []byte("Kilau Laundry")))
	assert.True(t, bytes.Contains(out.ESCPOS, []byte("TRX-JKT01-20260829-7KQ2")))
	assert.True(t, bytes.Contains(out.ESCPOS, []byte("Washer 3")))
}

func TestEncode_ColumnInvariant(t *testing.T) {
	long := paidTransaction()
	long.CustomerName = "Raden Ajeng Sulastri Wulandari Pertiwi"
	long.LineItems[0].Name = "Cuci Komplit Express Antar Jemput Premium"
	long.TotalAmount = decimal.NewFromInt(1250000)
	long.LineItems[0].Subtotal = decimal.NewFromInt(1250000)

	for _, width := range []PaperWidth{Width58, Width80} {
		out, err := Encode(long, testHeader(), width)
		require.NoError(t, err)

		for _, l := range buildLines(long, testHeader(), width.Columns()) {
			assert.LessOrEqual(t, utf8.RuneCountInString(l.text), width.Columns(), "row %q exceeds %d columns", l.text, width.Columns())
		}
		// Price never truncated, even on wrapped rows.
		assert.Contains(t, string(out.ESCPOS), "Rp1.250.000")
	}
}

func TestEncode_MetadataWrapsOnNarrowPaper(t *testing.T) {
	tx := paidTransaction()

	// "No      : " plus the 23-char code is 33 runes, one over the 58mm
	// contract, so the code row must wrap instead of overflowing.
	rows := buildLines(tx, testHeader(), Width58.Columns())
	var joined strings.Builder
	for _, l := range rows {
		assert.LessOrEqual(t, utf8.RuneCountInString(l.text), 32, "row %q exceeds 32 columns", l.text)
		joined.WriteString(l.text)
	}
	// Nothing is clipped: the rows still carry every code character.
	assert.Contains(t, joined.String(), "TRX-JKT01-20260829-7KQ2")
}

func TestEncode_MultiByteNamesStayValid(t *testing.T) {
	tx := paidTransaction()
	tx.CustomerName = "Andréa Müller-Sørensen dari Menténg Jakarta"
	tx.LineItems[0].Name = "Parfum Lémon Sérénité Premium Wangi Tahan Lama"

	for _, width := range []PaperWidth{Width58, Width80} {
		out, err := Encode(tx, testHeader(), width)
		require.NoError(t, err)

		for _, l := range buildLines(tx, testHeader(), width.Columns()) {
			assert.True(t, utf8.ValidString(l.text), "row %q contains a split rune", l.text)
			assert.LessOrEqual(t, utf8.RuneCountInString(l.text), width.Columns())
		}
		assert.True(t, utf8.ValidString(out.HTML))
	}
}

func TestEncode_ItemRowLayout(t *testing.T) {
	tx := paidTransaction()
	out, err := Encode(tx, testHeader(), Width58)
	require.NoError(t, err)

	row := padRow("Cuci Reguler", "Rp15.000", 32)
	assert.Len(t, row, 32)
	assert.True(t, strings.HasPrefix(row, "Cuci Reguler"))
	assert.True(t, strings.HasSuffix(row, "Rp15.000"))
	assert.Contains(t, string(out.ESCPOS), row)
}

func TestEncode_TotalsAgreeAcrossFormats(t *testing.T) {
	tx := paidTransaction()
	out, err := Encode(tx, testHeader(), Width80)
	require.NoError(t, err)

	total := padRow("TOTAL", "Rp15.000", 42)
	assert.Contains(t, string(out.ESCPOS), total)
	assert.Contains(t, out.HTML, total)
}

func TestParsePaperWidth(t *testing.T) {
	w, err := ParsePaperWidth("58mm")
	require.NoError(t, err)
	assert.Equal(t, 32, w.Columns())

	w, err = ParsePaperWidth("80mm")
	require.NoError(t, err)
	assert.Equal(t, 42, w.Columns())

	_, err = ParsePaperWidth("a4")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
