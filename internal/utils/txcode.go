package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const txCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTransactionCode builds the human-readable receipt code, e.g.
// "TRX-JKT01-20260829-7KQ2". The branch short code is uppercased and the
// random suffix avoids ambiguous characters (0/O, 1/I).
func GenerateTransactionCode(branchCode string, t time.Time) (string, error) {
	suffix := make([]byte, 4)
	max := big.NewInt(int64(len(txCodeAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate code suffix: %w", err)
		}
		suffix[i] = txCodeAlphabet[n.Int64()]
	}
	return fmt.Sprintf("TRX-%s-%s-%s", strings.ToUpper(branchCode), t.Format("20060102"), suffix), nil
}
