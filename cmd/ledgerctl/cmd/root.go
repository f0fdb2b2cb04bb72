package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/transitops/cardledger/cmd/setup"
	"github.com/transitops/cardledger/internal/common/graceful"
	"github.com/transitops/cardledger/internal/common/log"
	"github.com/transitops/cardledger/internal/models"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operational tool for checking and repairing card ledger balances",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(recalculateCmd)
	rootCmd.AddCommand(undoCmd)

	for _, c := range []*cobra.Command{checkCmd, recalculateCmd} {
		c.Flags().StringP(flagCard, "c", "", "card IDm, 16 hex digits")
		c.MarkFlagRequired(flagCard)
		c.Flags().String(flagFrom, "", "window start date, YYYY-MM-DD")
		c.Flags().String(flagTo, "", "window end date, YYYY-MM-DD")
	}
	recalculateCmd.Flags().StringP(flagOperator, "o", "", "operator name for the audit trail")

	undoCmd.Flags().StringP(flagFile, "f", "", "corrections JSON file produced by recalculate")
	undoCmd.MarkFlagRequired(flagFile)
	undoCmd.Flags().StringP(flagOperator, "o", "", "operator name for the audit trail")
}

var (
	flagCard     = "card"
	flagFrom     = "from"
	flagTo       = "to"
	flagFile     = "file"
	flagOperator = "operator"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Report entries whose balance breaks the running chain",
	Long:    ``,
	Example: "ledgerctl check -c={card-idm} --from=2024-04-01 --to=2024-04-30",
	Run:     runCheck,
}

func runCheck(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	req := balanceRequest(ccmd)

	s, stoppers := mustSetup(ctx)
	defer closeAll(ctx, stoppers)

	out, err := s.Service.Balance.Check(ctx, req)
	if err != nil {
		log.Fatalf(ctx, "check failed: %v", err)
	}

	printJSON(out)
}

var recalculateCmd = &cobra.Command{
	Use:     "recalculate",
	Short:   "Rewrite inconsistent balances so the chain adds up again",
	Long:    ``,
	Example: "ledgerctl recalculate -c={card-idm} -o={operator}",
	Run:     runRecalculate,
}

func runRecalculate(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	req := balanceRequest(ccmd)
	req.Operator, _ = ccmd.Flags().GetString(flagOperator)

	s, stoppers := mustSetup(ctx)
	defer closeAll(ctx, stoppers)

	out, err := s.Service.Balance.Recalculate(ctx, req)
	if err != nil {
		log.Fatalf(ctx, "recalculate failed: %v", err)
	}

	// keep the output, it is the input for a later undo
	printJSON(out)
}

var undoCmd = &cobra.Command{
	Use:     "undo",
	Short:   "Restore the balances a recalculate run overwrote",
	Long:    ``,
	Example: "ledgerctl undo -f=corrections.json -o={operator}",
	Run:     runUndo,
}

func runUndo(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	file, _ := ccmd.Flags().GetString(flagFile)
	operator, _ := ccmd.Flags().GetString(flagOperator)

	raw, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf(ctx, "failed to read corrections file: %v", err)
	}

	var out models.BalanceCheckOut
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Fatalf(ctx, "failed to parse corrections file: %v", err)
	}

	s, stoppers := mustSetup(ctx)
	defer closeAll(ctx, stoppers)

	err = s.Service.Balance.UndoRecalculate(ctx, models.UndoRecalculateRequest{
		Corrections: out.Corrections,
		Operator:    operator,
	})
	if err != nil {
		log.Fatalf(ctx, "undo failed: %v", err)
	}

	log.Info(ctx, "balances restored")
}

func balanceRequest(ccmd *cobra.Command) models.BalanceCheckRequest {
	card, _ := ccmd.Flags().GetString(flagCard)
	from, _ := ccmd.Flags().GetString(flagFrom)
	to, _ := ccmd.Flags().GetString(flagTo)

	return models.BalanceCheckRequest{
		CardIDm:  card,
		DateFrom: from,
		DateTo:   to,
	}
}

func mustSetup(ctx context.Context) (*setup.Setup, []graceful.ProcessStopper) {
	s, stopperContract, err := setup.Init("ledgerctl")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}
	return s, stopperContract
}

func closeAll(ctx context.Context, stoppers []graceful.ProcessStopper) {
	for i := len(stoppers) - 1; i >= 0; i-- {
		if err := stoppers[i](ctx); err != nil {
			log.Errorf(ctx, "shutdown step failed: %v", err)
		}
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
