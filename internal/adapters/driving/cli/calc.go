package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathop-labs/mathop-cli/internal/core/domain"
)

var (
	calcJSON        bool
	calcShowHistory bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <operation> <num1> <num2> [<operation> <num1> <num2> ...]",
	Short: "Run arithmetic operations",
	Long: `Runs one or more validated arithmetic operations in-process and prints
each result. Operations: add, subtract, multiply, divide.

Examples:
  mathop calc add 2 3
  mathop calc add 1 1 multiply 2 2 --history`,
	Args: validateCalcArgs,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "output results as JSON")
	calcCmd.Flags().BoolVar(&calcShowHistory, "history", false, "print the operation history after computing")
	rootCmd.AddCommand(calcCmd)
}

// validateCalcArgs requires one or more <operation> <num1> <num2> triples.
func validateCalcArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 || len(args)%3 != 0 {
		return errors.New("expected one or more <operation> <num1> <num2> triples")
	}
	return nil
}

// parseOperation maps a CLI verb (or full label) to a domain operation.
func parseOperation(verb string) (domain.Operation, error) {
	switch verb {
	case "add", "addition":
		return domain.OperationAddition, nil
	case "subtract", "sub", "subtraction":
		return domain.OperationSubtraction, nil
	case "multiply", "mul", "multiplication":
		return domain.OperationMultiplication, nil
	case "divide", "div", "division":
		return domain.OperationDivision, nil
	default:
		return "", fmt.Errorf("unknown operation %q (want add, subtract, multiply or divide)", verb)
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	ctx := context.Background()

	results := make([]domain.OperationResult, 0, len(args)/3)
	for i := 0; i < len(args); i += 3 {
		op, err := parseOperation(args[i])
		if err != nil {
			return err
		}

		num1, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", args[i+1], err)
		}
		num2, err := strconv.ParseFloat(args[i+2], 64)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", args[i+2], err)
		}

		result, err := compute(ctx, op, num1, num2)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if calcJSON {
		return outputResultsJSON(cmd, results)
	}
	outputResultsTable(cmd, results)

	if calcShowHistory {
		history, err := calculatorService.History(ctx)
		if err != nil {
			return err
		}
		cmd.Println()
		outputHistoryTable(cmd, history)
	}

	return nil
}

// compute dispatches one operation to the calculator service.
func compute(ctx context.Context, op domain.Operation, num1, num2 float64) (domain.OperationResult, error) {
	switch op {
	case domain.OperationAddition:
		return calculatorService.Add(ctx, num1, num2)
	case domain.OperationSubtraction:
		return calculatorService.Subtract(ctx, num1, num2)
	case domain.OperationMultiplication:
		return calculatorService.Multiply(ctx, num1, num2)
	case domain.OperationDivision:
		return calculatorService.Divide(ctx, num1, num2)
	default:
		return domain.OperationResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, op)
	}
}

func outputResultsJSON(cmd *cobra.Command, results []domain.OperationResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsTable(cmd *cobra.Command, results []domain.OperationResult) {
	for i := range results {
		cmd.Printf("%s %s\n",
			styled(labelStyle, results[i].Operation.String()+" ="),
			styled(resultStyle, strconv.FormatFloat(results[i].Result, 'g', -1, 64)))
	}
}

func outputHistoryTable(cmd *cobra.Command, history []domain.OperationResult) {
	if len(history) == 0 {
		cmd.Println("No operations recorded.")
		return
	}

	cmd.Println("History:")
	for i := range history {
		cmd.Printf("  [%d] %s %s %s\n",
			i+1,
			styled(labelStyle, history[i].Timestamp.Format(time.RFC3339)),
			history[i].Operation,
			styled(resultStyle, strconv.FormatFloat(history[i].Result, 'g', -1, 64)))
	}
}
