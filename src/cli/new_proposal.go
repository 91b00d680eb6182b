package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Yuvraj-cyborg/Verdyce/src/config"
	"github.com/Yuvraj-cyborg/Verdyce/src/consensus"
	"github.com/Yuvraj-cyborg/Verdyce/src/data"
	"github.com/Yuvraj-cyborg/Verdyce/src/decay"
	"github.com/Yuvraj-cyborg/Verdyce/src/threshold"
)

var (
	newTitle          string
	newDescription    string
	newDuration       int64
	newDecay          string
	newDecayRate      float64
	newThreshold      string
	newThresholdRate  float64
	newThresholdStart float64
)

var newProposalCmd = &cobra.Command{
	Use:   "new-proposal",
	Short: "Create a proposal and open its voting window",
	RunE:  runNewProposal,
}

func init() {
	f := newProposalCmd.Flags()
	f.StringVarP(&newTitle, "title", "t", "", "Proposal title")
	f.StringVarP(&newDescription, "description", "d", "", "Proposal description")
	f.Int64VarP(&newDuration, "duration", "u", 0, "Voting window duration in seconds")
	f.StringVar(&newDecay, "decay", "exponential", "Decay model: linear | exponential | stepped")
	f.Float64Var(&newDecayRate, "decay-rate", 0.1, "Rate parameter for exponential decay")
	f.StringVar(&newThreshold, "threshold", "linear", "Threshold model: linear | exponential | sigmoid")
	f.Float64Var(&newThresholdRate, "threshold-rate", 0.0, "Threshold rate parameter")
	f.Float64Var(&newThresholdStart, "threshold-start", 0.5, "Threshold start / base / floor parameter")
	_ = newProposalCmd.MarkFlagRequired("title")
	_ = newProposalCmd.MarkFlagRequired("description")
	_ = newProposalCmd.MarkFlagRequired("duration")
}

func runNewProposal(cmd *cobra.Command, args []string) error {
	if newDuration <= 0 {
		return fmt.Errorf("duration must be a positive number of seconds")
	}

	decayKind, err := decay.ParseKind(newDecay)
	if err != nil {
		return err
	}
	thresholdKind, err := threshold.ParseKind(newThreshold)
	if err != nil {
		return err
	}

	p := consensus.NewProposal(
		newTitle,
		newDescription,
		newDuration,
		decay.Model{Kind: decayKind, Rate: newDecayRate},
		threshold.Model{Kind: thresholdKind, Rate: newThresholdRate, Start: newThresholdStart},
	)

	cfg := config.Load()
	p.Window.MaxExtension = cfg.MaxExtension

	rdb := data.MustRedis(cfg.RedisURL)
	if err := data.SaveProposal(context.Background(), rdb, p); err != nil {
		return fmt.Errorf("save proposal: %w", err)
	}

	color.Green("Proposal created")
	fmt.Printf("  ID         : %s\n", p.ID)
	fmt.Printf("  Title      : %s\n", p.Title)
	fmt.Printf("  Duration   : %d seconds\n", newDuration)
	fmt.Printf("  Expires at : %s\n", p.CreatedAt.Add(time.Duration(newDuration)*time.Second).Format(time.RFC3339))
	return nil
}
