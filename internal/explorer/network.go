package explorer

import (
	"context"
	"fmt"
	"math"

	"github.com/dmagro/solana-explorer/internal/output"
	"github.com/dmagro/solana-explorer/internal/stats"
)

// tpsSamples is how many performance samples the TPS report averages.
const tpsSamples = 5

// NetworkStatus prints version, epoch progress, slot and block height.
func (e *Explorer) NetworkStatus(ctx context.Context) error {
	epoch, err := e.q.GetEpochInfo(ctx)
	if err != nil {
		return err
	}
	ver, err := e.q.GetVersion(ctx)
	if err != nil {
		return err
	}
	height, err := e.q.GetBlockHeight(ctx)
	if err != nil {
		return err
	}

	output.Heading(e.w, "Network Status")
	output.Field(e.w, "Cluster Version", ver.SolanaCore)
	output.Field(e.w, "Current Epoch", epoch.Epoch)
	output.Field(e.w, "Epoch Progress", fmt.Sprintf("%d%% (%s / %s slots)",
		EpochProgress(epoch.SlotIndex, epoch.SlotsInEpoch),
		output.Number(epoch.SlotIndex), output.Number(epoch.SlotsInEpoch)))
	output.Field(e.w, "Current Slot", output.Number(epoch.AbsoluteSlot))
	output.Field(e.w, "Block Height", output.Number(height))
	if epoch.TransactionCount != nil {
		output.Field(e.w, "Transaction Count", output.Number(*epoch.TransactionCount))
	}
	return nil
}

// EpochProgress is slotIndex/slotsInEpoch as a rounded percentage, 0 for an
// empty epoch.
func EpochProgress(slotIndex, slotsInEpoch uint64) uint64 {
	if slotsInEpoch == 0 {
		return 0
	}
	return uint64(math.Round(float64(slotIndex) / float64(slotsInEpoch) * 100))
}

// Supply prints total, circulating and non-circulating supply.
func (e *Explorer) Supply(ctx context.Context) error {
	s, err := e.q.GetSupply(ctx)
	if err != nil {
		return err
	}
	output.Heading(e.w, "Supply")
	output.Field(e.w, "Total (SOL)", output.SOL(s.Total))
	output.Field(e.w, "Circulating (SOL)", output.SOL(s.Circulating))
	output.Field(e.w, "Non-Circulating (SOL)", output.SOL(s.NonCirculating))
	if s.Total > 0 {
		output.Field(e.w, "Circulating Share", output.Percent(float64(s.Circulating)/float64(s.Total)))
	}
	return nil
}

// Inflation prints the inflation governor and the current epoch's rates.
func (e *Explorer) Inflation(ctx context.Context) error {
	gov, err := e.q.GetInflationGovernor(ctx)
	if err != nil {
		return err
	}
	rate, err := e.q.GetInflationRate(ctx)
	if err != nil {
		return err
	}

	output.Heading(e.w, fmt.Sprintf("Inflation (epoch %d)", rate.Epoch))
	output.Field(e.w, "Total Rate", output.Percent(rate.Total))
	output.Field(e.w, "Validator Rate", output.Percent(rate.Validator))
	output.Field(e.w, "Foundation Rate", output.Percent(rate.Foundation))
	output.Field(e.w, "Initial Rate", output.Percent(gov.Initial))
	output.Field(e.w, "Terminal Rate", output.Percent(gov.Terminal))
	output.Field(e.w, "Taper", output.Percent(gov.Taper))
	return nil
}

// TPS prints the latest and average transaction throughput from recent
// performance samples.
func (e *Explorer) TPS(ctx context.Context) error {
	samples, err := e.q.GetRecentPerformanceSamples(ctx, tpsSamples)
	if err != nil {
		return err
	}

	output.Heading(e.w, "Transactions Per Second")
	if len(samples) == 0 {
		fmt.Fprintln(e.w, "No performance samples available.")
		return nil
	}

	first := samples[0]
	output.Field(e.w, "Current TPS", fmt.Sprintf("%.2f", rate(first.NumTransactions, uint64(first.SamplePeriodSecs))))

	var txs, secs uint64
	rates := make([]float64, 0, len(samples))
	for _, s := range samples {
		txs += s.NumTransactions
		secs += uint64(s.SamplePeriodSecs)
		rates = append(rates, rate(s.NumTransactions, uint64(s.SamplePeriodSecs)))
	}
	sum := stats.Summarize(rates)
	output.Field(e.w, "Average TPS", fmt.Sprintf("%.2f (%d samples)", rate(txs, secs), sum.Count))
	output.Field(e.w, "Median TPS", fmt.Sprintf("%.2f", sum.P50))
	output.Field(e.w, "P90 TPS", fmt.Sprintf("%.2f", sum.P90))
	output.Field(e.w, "Peak TPS", fmt.Sprintf("%.2f", sum.Max))

	if first.NumNonVoteTransactions != nil {
		output.Field(e.w, "Non-Vote TPS", fmt.Sprintf("%.2f", rate(*first.NumNonVoteTransactions, uint64(first.SamplePeriodSecs))))
	}
	output.Field(e.w, "Sample Slot", first.Slot)
	return nil
}

func rate(n, secs uint64) float64 {
	if secs == 0 {
		return 0
	}
	return float64(n) / float64(secs)
}
