package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Yuvraj-cyborg/Verdyce/src/config"
	"github.com/Yuvraj-cyborg/Verdyce/src/consensus"
	"github.com/Yuvraj-cyborg/Verdyce/src/data"
)

var (
	voteProposalID  string
	voteValidatorID string
	voteChoice      string
	voteRevision    int64
	voteReason      string
	voteTimestamp   string
)

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Cast a vote on a pending proposal",
	RunE:  runVote,
}

func init() {
	f := voteCmd.Flags()
	f.StringVarP(&voteProposalID, "proposal-id", "p", "", "Proposal id (UUID)")
	f.StringVarP(&voteValidatorID, "validator-id", "v", "", "Validator id (UUID)")
	f.StringVarP(&voteChoice, "choice", "c", "", "Vote choice: yes | no | abstain")
	f.Int64VarP(&voteRevision, "revision", "r", 0, "How many times this validator changed their vote")
	f.StringVar(&voteReason, "reason", "", "Optional reason for the vote")
	f.StringVar(&voteTimestamp, "timestamp", "", "Vote timestamp (RFC3339, default now)")
	_ = voteCmd.MarkFlagRequired("proposal-id")
	_ = voteCmd.MarkFlagRequired("validator-id")
	_ = voteCmd.MarkFlagRequired("choice")
}

func runVote(cmd *cobra.Command, args []string) error {
	proposalID, err := uuid.Parse(voteProposalID)
	if err != nil {
		return fmt.Errorf("invalid proposal id: %w", err)
	}
	validatorID, err := uuid.Parse(voteValidatorID)
	if err != nil {
		return fmt.Errorf("invalid validator id: %w", err)
	}
	choice, err := consensus.ParseChoice(voteChoice)
	if err != nil {
		return err
	}

	ts := time.Now().UTC()
	if voteTimestamp != "" {
		ts, err = time.Parse(time.RFC3339, voteTimestamp)
		if err != nil {
			return fmt.Errorf("invalid timestamp, want RFC3339: %w", err)
		}
	}

	ctx := context.Background()
	rdb := data.MustRedis(config.Load().RedisURL)

	p, err := data.LoadProposal(ctx, rdb, proposalID)
	if err != nil {
		return fmt.Errorf("load proposal: %w", err)
	}
	if p == nil {
		return fmt.Errorf("proposal %s not found", proposalID)
	}
	if p.Status != consensus.StatusPending {
		return fmt.Errorf("proposal is %s, votes are no longer accepted", p.Status)
	}
	if p.Window.Elapsed(ts) > p.Window.TotalDuration()+p.Window.GracePeriod {
		return fmt.Errorf("voting window has ended")
	}

	p.AddVote(consensus.Vote{
		ValidatorID: validatorID,
		Choice:      choice,
		Timestamp:   ts,
		Revision:    voteRevision,
		Reason:      voteReason,
	})

	if err := data.SaveProposal(ctx, rdb, p); err != nil {
		return fmt.Errorf("save proposal: %w", err)
	}

	color.Green("Vote by validator %s recorded", validatorID)
	return nil
}
