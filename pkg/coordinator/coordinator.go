// Package coordinator sequences the gasless transfer flow: parse the
// instruction, check the relay's allowance, arrange gas funding for the
// approval when the user cannot pay for it, obtain the two wallet signatures
// and hand the signed intent to the relay service.
package coordinator

import (
	"context"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"

	"github.com/tanminhan00/GasZero-sub001/pkg/chainclient"
	"github.com/tanminhan00/GasZero-sub001/pkg/config"
	"github.com/tanminhan00/GasZero-sub001/pkg/faults"
	"github.com/tanminhan00/GasZero-sub001/pkg/intent"
	"github.com/tanminhan00/GasZero-sub001/pkg/logger"
	"github.com/tanminhan00/GasZero-sub001/pkg/metrics"
	"github.com/tanminhan00/GasZero-sub001/pkg/models"
	"github.com/tanminhan00/GasZero-sub001/pkg/poll"
	"github.com/tanminhan00/GasZero-sub001/pkg/signer"
)

// ChainReader is the read-only chain access the flow needs.
type ChainReader interface {
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
	NativeBalance(ctx context.Context, addr common.Address) (*big.Int, error)
	TransactionConfirmed(ctx context.Context, hash common.Hash) (bool, error)
}

// Funder requests gas funding from the external funding service.
type Funder interface {
	RequestFunding(ctx context.Context, user common.Address, reason models.FundingReason) error
}

// RelaySubmitter hands a signed intent to the relay service.
type RelaySubmitter interface {
	Submit(ctx context.Context, request models.RelayRequest) (string, error)
}

// Receipt is the result of a successful run.
type Receipt struct {
	RunID string
	// RelayHash is the relay-issued transaction handle for the transfer.
	RelayHash string
	// ApprovalHash is set when this run broadcast an approval transaction.
	ApprovalHash common.Hash
	// Funded reports whether third-party gas funding was used.
	Funded bool
}

// Coordinator runs the orchestration flow. Each Run is independent and
// carries no state between invocations, so a single Coordinator is safe to
// use concurrently for different users.
type Coordinator struct {
	network      config.Network
	pollInterval time.Duration
	pollAttempts int
	reserve      *big.Int
	minFunded    *big.Int
	reader       ChainReader
	funder       Funder
	relay        RelaySubmitter
	wallet       signer.Signer
	logger       logger.Logger
}

// New creates a coordinator for the chain selected in cfg.
func New(cfg *config.Config, reader ChainReader, funder Funder, relay RelaySubmitter,
	wallet signer.Signer, log logger.Logger,
) (*Coordinator, error) {
	network, err := cfg.Network()
	if err != nil {
		return nil, err
	}

	return &Coordinator{
		network:      network,
		pollInterval: cfg.PollInterval,
		pollAttempts: cfg.PollAttempts,
		reserve:      cfg.ReserveThreshold,
		minFunded:    cfg.MinFundedBalance,
		reader:       reader,
		funder:       funder,
		relay:        relay,
		wallet:       wallet,
		logger:       log,
	}, nil
}

// Run executes the full flow for one raw instruction. Every failure is
// returned as a *faults.Fault and aborts the run immediately; nothing is
// retried and no step is ever re-entered.
func (c *Coordinator) Run(ctx context.Context, rawInstruction string) (*Receipt, error) {
	runID := uuid.NewString()
	chainLabel := strconv.Itoa(c.network.ChainID)
	start := time.Now()
	defer func() {
		metrics.FlowDuration.WithLabelValues(chainLabel).Observe(time.Since(start).Seconds())
	}()

	user := c.wallet.Address()
	c.logger.InfoWithChain(c.network.ChainID, "Run %s: starting for %s", runID, user.Hex())

	receipt, err := c.run(ctx, runID, user, rawInstruction)
	if err != nil {
		metrics.FlowRuns.WithLabelValues(chainLabel, "failed").Inc()
		metrics.FlowFailures.WithLabelValues(chainLabel, string(faults.KindOf(err))).Inc()
		c.logger.ErrorWithChain(c.network.ChainID, "Run %s: failed: %v", runID, err)
		return nil, err
	}

	metrics.FlowRuns.WithLabelValues(chainLabel, "success").Inc()
	c.logger.NoticeWithChain(c.network.ChainID, "Run %s: transfer relayed: %s", runID, receipt.RelayHash)
	return receipt, nil
}

func (c *Coordinator) run(ctx context.Context, runID string, user common.Address, rawInstruction string) (*Receipt, error) {
	chainLabel := strconv.Itoa(c.network.ChainID)

	// Parsing
	ti, err := intent.Parse(rawInstruction, c.tokenDecimals(intent.TokenSymbol))
	if err != nil {
		return nil, err
	}

	token, exists := c.network.Tokens[ti.TokenSymbol]
	if !exists {
		return nil, faults.Errorf(faults.KindMalformedIntent,
			"token %s not configured for chain %d", ti.TokenSymbol, c.network.ChainID)
	}
	tokenAddress := common.HexToAddress(token.Address)
	routerAddress := common.HexToAddress(c.network.RelayRouter)

	c.logger.DebugWithChain(c.network.ChainID, "Run %s: transfer %s %s to %s",
		runID, ti.AmountDisplay, ti.TokenSymbol, ti.Recipient.Hex())

	// CheckingAllowance: evaluated exactly once per run, never from a cache
	allowance, err := c.reader.Allowance(ctx, tokenAddress, user, routerAddress)
	if err != nil {
		return nil, coerce(err, faults.KindChainRead)
	}
	needApproval := allowance.Cmp(ti.Amount) < 0

	receipt := &Receipt{RunID: runID}

	if !needApproval {
		metrics.ApprovalsSkipped.WithLabelValues(chainLabel).Inc()
		c.logger.DebugWithChain(c.network.ChainID, "Run %s: allowance %s sufficient, skipping approval",
			runID, allowance.String())
	} else {
		balance, err := c.reader.NativeBalance(ctx, user)
		if err != nil {
			return nil, coerce(err, faults.KindChainRead)
		}

		// Only request third-party funding when the user cannot pay for the
		// approval transaction themselves.
		if balance.Cmp(c.reserve) < 0 {
			if err := c.fundAndWait(ctx, runID, user); err != nil {
				return nil, err
			}
			receipt.Funded = true
		}

		approvalHash, err := c.submitApproval(ctx, runID, tokenAddress, routerAddress, ti.Amount, allowance)
		if err != nil {
			return nil, err
		}
		receipt.ApprovalHash = approvalHash
	}

	// SigningIntent: the signature binds the signer to the canonical intent text
	message := intent.Canonical(ti)
	signature, err := c.wallet.SignMessage(ctx, message)
	if err != nil {
		return nil, coerce(err, faults.KindSignerRejected)
	}

	// Relaying: constructed once, sent once
	relayHash, err := c.relay.Submit(ctx, models.RelayRequest{
		Chain:     c.network.ChainID,
		From:      user.Hex(),
		To:        ti.Recipient.Hex(),
		Token:     ti.TokenSymbol,
		Amount:    ti.AmountDisplay,
		Signature: hexutil.Encode(signature),
	})
	if err != nil {
		metrics.RelaySubmissions.WithLabelValues(chainLabel, "failed").Inc()
		return nil, coerce(err, faults.KindRelay)
	}
	metrics.RelaySubmissions.WithLabelValues(chainLabel, "success").Inc()

	receipt.RelayHash = relayHash
	return receipt, nil
}

// fundAndWait sends the single funding request of the run and polls the
// user's native balance until the funds land or the attempt budget runs out.
func (c *Coordinator) fundAndWait(ctx context.Context, runID string, user common.Address) error {
	chainLabel := strconv.Itoa(c.network.ChainID)

	c.logger.InfoWithChain(c.network.ChainID, "Run %s: requesting gas funding for %s", runID, user.Hex())
	if err := c.funder.RequestFunding(ctx, user, models.FundingReasonApproval); err != nil {
		metrics.FundingRequests.WithLabelValues(chainLabel, "rejected").Inc()
		return coerce(err, faults.KindFundingRejected)
	}
	metrics.FundingRequests.WithLabelValues(chainLabel, "accepted").Inc()

	polls := 0
	err := poll.Until(ctx, c.pollInterval, c.pollAttempts, func(ctx context.Context) (bool, error) {
		polls++
		balance, err := c.reader.NativeBalance(ctx, user)
		if err != nil {
			return false, coerce(err, faults.KindChainRead)
		}
		return balance.Cmp(c.minFunded) >= 0, nil
	})
	if err == poll.ErrBudgetExhausted {
		c.logger.ErrorWithChain(c.network.ChainID, "Run %s: funding wait %s after %d polls",
			runID, models.TimedOut, polls)
		return faults.Errorf(faults.KindFundingTimeout,
			"funding did not arrive after %d polls", polls)
	}
	if err != nil {
		return err
	}

	metrics.FundingWaitPolls.WithLabelValues(chainLabel).Observe(float64(polls))
	c.logger.InfoWithChain(c.network.ChainID, "Run %s: funding wait %s after %d polls",
		runID, models.Funded, polls)
	return nil
}

// submitApproval broadcasts the permission grant and waits for it to be
// mined before the flow proceeds. Relaying on an unconfirmed approval would
// race the relay's transfer against the approval's inclusion.
func (c *Coordinator) submitApproval(ctx context.Context, runID string,
	token, spender common.Address, requested, currentAllowance *big.Int,
) (common.Hash, error) {
	chainLabel := strconv.Itoa(c.network.ChainID)

	amount := approvalAmount(requested, currentAllowance)
	calldata, err := chainclient.PackApprove(spender, amount)
	if err != nil {
		return common.Hash{}, faults.Errorf(faults.KindSubmission, "failed to pack approve calldata: %v", err)
	}

	hash, err := c.wallet.SendTransaction(ctx, token, calldata)
	if err != nil {
		metrics.ApprovalsSubmitted.WithLabelValues(chainLabel, "failed").Inc()
		return common.Hash{}, coerce(err, faults.KindSubmission)
	}
	metrics.ApprovalsSubmitted.WithLabelValues(chainLabel, "sent").Inc()
	c.logger.InfoWithChain(c.network.ChainID, "Run %s: approval transaction sent: %s", runID, hash.Hex())

	err = poll.Until(ctx, c.pollInterval, c.pollAttempts, func(ctx context.Context) (bool, error) {
		return c.reader.TransactionConfirmed(ctx, hash)
	})
	if err == poll.ErrBudgetExhausted {
		return common.Hash{}, faults.Errorf(faults.KindSubmission,
			"approval %s not confirmed after %d attempts", hash.Hex(), c.pollAttempts)
	}
	if err != nil {
		return common.Hash{}, coerce(err, faults.KindSubmission)
	}

	c.logger.InfoWithChain(c.network.ChainID, "Run %s: approval confirmed: %s", runID, hash.Hex())
	return hash, nil
}

// tokenDecimals returns the decimal count of a configured token, falling back
// to the USDC default so parse failures report the pattern, not the config.
func (c *Coordinator) tokenDecimals(symbol string) int {
	if token, exists := c.network.Tokens[symbol]; exists {
		return token.Decimals
	}
	return config.USDCDecimals
}

// coerce ensures err carries a fault kind, wrapping untyped errors with the
// kind of the step that produced them.
func coerce(err error, kind faults.Kind) error {
	if faults.KindOf(err) != "" {
		return err
	}
	return faults.New(kind, err)
}
