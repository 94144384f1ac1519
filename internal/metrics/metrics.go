// Package metrics exposes the operational counters the distribution
// pipeline emits. The ledger-read degrade and ledger/chain divergence
// counters exist so store outages and unrecorded transfers are visible
// to operators instead of silently undercounting served recipients.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DistributionsRecorded counts ledger records committed successfully
	DistributionsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_airdrop",
		Name:      "distributions_recorded_total",
		Help:      "Number of distribution records committed to the ledger.",
	})

	// DuplicateRejections counts requests rejected because the recipient was already served
	DuplicateRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_airdrop",
		Name:      "duplicate_rejections_total",
		Help:      "Number of requests rejected because the recipient was already served.",
	})

	// SubmissionFailures counts failed on-chain transfer submissions
	SubmissionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_airdrop",
		Name:      "submission_failures_total",
		Help:      "Number of on-chain transfer submissions that failed.",
	})

	// StoreReadDegrades counts eligibility reads that degraded to "not served"
	// because the ledger was unreachable
	StoreReadDegrades = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_airdrop",
		Name:      "store_read_degrades_total",
		Help:      "Number of eligibility checks that degraded to not-served due to ledger read errors.",
	})

	// LedgerDivergences counts transfers that succeeded on chain but
	// whose ledger commit failed; each one needs operator attention
	LedgerDivergences = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_airdrop",
		Name:      "ledger_divergences_total",
		Help:      "Number of successful transfers whose ledger record failed to commit.",
	})
)
