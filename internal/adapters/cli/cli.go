package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"bill-generator/internal/app"
	"bill-generator/internal/core"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "generate", "gen", "g":
		req, out := parseBillFlags(args[1:], "generate")
		result, err := svc.GenerateDocuments(ctx, req)
		if err != nil {
			log.Fatalf("Bill generation failed: %v", err)
		}
		if out == "" {
			out = result.ArchiveName
		}
		if err := os.WriteFile(out, result.Archive, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", out, err)
		}
		printBillSummary(result.Bill)
		fmt.Printf("\nDocuments written to %s\n", out)

	case "summary", "sum", "s":
		req, _ := parseBillFlags(args[1:], "summary")
		result, err := svc.GenerateBill(ctx, req)
		if err != nil {
			log.Fatalf("Bill computation failed: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result.Bill)

	case "runs", "history":
		result, err := svc.ListRuns(ctx, 50)
		if err != nil {
			log.Fatalf("Failed to list runs: %v", err)
		}
		printRuns(result)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: generate, summary, runs", args[0])
	}
}

// parseBillFlags parses the shared workbook/premium flags for the generate
// and summary subcommands. It opens the workbook; the returned reader is the
// open file, left for the process exit to close.
func parseBillFlags(args []string, name string) (app.GenerateBillRequest, string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	file := fs.String("file", "", "path to the work order workbook (.xlsx)")
	premium := fs.String("premium", "0", "tender premium percent")
	direction := fs.String("direction", "add", "premium direction: add or deduct")
	prior := fs.String("prior", "", "amount paid in previous bills (blank for first and final)")
	out := fs.String("out", "", "output path for the document archive")
	fs.Parse(args)

	if *file == "" {
		log.Fatalf("Usage: app %s -file <workbook.xlsx> [-premium N] [-direction add|deduct] [-prior N]", name)
	}
	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open workbook: %v", err)
	}

	return app.GenerateBillRequest{
		FileName:         *file,
		Workbook:         f,
		PremiumPercent:   *premium,
		PremiumDirection: *direction,
		PriorBillAmount:  *prior,
	}, *out
}

func printBillSummary(bill *core.BillResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-58s\n", "BILL SUMMARY")
	if bill.Meta.AgreementNo != "" {
		fmt.Printf("  Agreement : %s\n", bill.Meta.AgreementNo)
	}
	fmt.Println(strings.Repeat("=", 62))
	row := func(label string, amount decimal.Decimal) {
		fmt.Printf("  %-40s %19s\n", label, amount.StringFixed(0))
	}
	row("Work order amount", bill.Totals.WorkOrderSubtotal)
	row("Tender premium on work order", bill.Totals.WorkOrderPremium)
	row("Extra items amount", bill.Totals.ExtraItemsSubtotal)
	row("Tender premium on extra items", bill.Totals.ExtraItemsPremium)
	fmt.Println(strings.Repeat("-", 62))
	row("Grand total", bill.Totals.GrandTotal)
	row("Net payable", bill.Totals.PayableAmount)
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %s\n", bill.PayableInWords)
}

func printRuns(result *app.RunListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-74s\n", "RECORDED BILL RUNS")
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-5s %-28s %-20s %8s %15s\n", "ID", "FILE", "CREATED", "PREMIUM", "PAYABLE")
	fmt.Println(strings.Repeat("-", 78))
	for _, r := range result.Runs {
		premium := fmt.Sprintf("%s%% %s", r.PremiumPercent.String(), r.PremiumDir)
		fmt.Printf("  %-5d %-28s %-20s %8s %15s\n",
			r.ID, truncate(r.SourceFile, 28), r.CreatedAt.Format("2006-01-02 15:04"), premium, r.PayableAmount.StringFixed(0))
	}
	fmt.Println(strings.Repeat("=", 78))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
