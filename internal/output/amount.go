package output

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/dustin/go-humanize"
)

// LamportsPerSOL is the fixed scale between lamports and SOL.
const LamportsPerSOL = 1_000_000_000

// SOL converts lamports to SOL with all nine decimal places, using integer
// arithmetic so every command rounds identically.
func SOL(lamports uint64) string {
	return fmt.Sprintf("%d.%09d", lamports/LamportsPerSOL, lamports%LamportsPerSOL)
}

// SignedSOL is SOL for signed deltas such as rewards.
func SignedSOL(lamports int64) string {
	if lamports < 0 {
		return "-" + SOL(uint64(-lamports))
	}
	return SOL(uint64(lamports))
}

// Number formats n with thousands separators across the full uint64 range.
func Number(n uint64) string {
	if n <= math.MaxInt64 {
		return humanize.Comma(int64(n))
	}
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

// Percent formats a ratio (0.05) as "5.00%".
func Percent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}

// BlockTime formats a unix timestamp as an RFC 1123 UTC date plus its age.
func BlockTime(unix int64) string {
	t := time.Unix(unix, 0).UTC()
	return fmt.Sprintf("%s (%s)", t.Format(time.RFC1123), humanize.Time(t))
}

// Date formats an optional unix timestamp as YYYY-MM-DD, or N/A.
func Date(unix *int64) string {
	if unix == nil {
		return "N/A"
	}
	return time.Unix(*unix, 0).UTC().Format("2006-01-02")
}

// Timestamp formats an optional unix timestamp as "2006-01-02 15:04:05 UTC".
func Timestamp(unix int64) string {
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04:05 MST")
}
