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

var evaluateID string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a proposal's status at the current time",
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateID, "id", "i", "", "Proposal id (UUID)")
	_ = evaluateCmd.MarkFlagRequired("id")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(evaluateID)
	if err != nil {
		return fmt.Errorf("invalid proposal id: %w", err)
	}

	ctx := context.Background()
	rdb := data.MustRedis(config.Load().RedisURL)

	p, err := data.LoadProposal(ctx, rdb, id)
	if err != nil {
		return fmt.Errorf("load proposal: %w", err)
	}
	if p == nil {
		return fmt.Errorf("proposal %s not found", id)
	}

	p.Evaluate(time.Now().UTC())
	if err := data.SaveProposal(ctx, rdb, p); err != nil {
		return fmt.Errorf("save proposal: %w", err)
	}

	fmt.Println("Proposal evaluated")
	fmt.Printf("  ID             : %s\n", p.ID)
	fmt.Printf("  Status         : %s\n", statusStyle(p.Status).Sprint(p.Status))
	fmt.Printf("  Approval ratio : %.3f\n", p.ApprovalRatio())
	return nil
}

func statusStyle(s consensus.Status) *color.Color {
	switch s {
	case consensus.StatusAccepted:
		return color.New(color.FgGreen)
	case consensus.StatusRejected:
		return color.New(color.FgRed)
	case consensus.StatusExpired:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
