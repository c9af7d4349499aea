package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/euphoricair7/stockpile/internal/config"
	"github.com/euphoricair7/stockpile/internal/doctor"
	"github.com/euphoricair7/stockpile/internal/inventory"
	"github.com/euphoricair7/stockpile/internal/report"
	"github.com/euphoricair7/stockpile/pkg/version"
)

func main() {
	fileFlag := flag.String("file", "", "Snapshot file (overrides config)")
	thresholdFlag := flag.Int("threshold", 0, "Low-stock threshold (overrides config)")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error")
	plainFlag := flag.Bool("plain", false, "Disable styled output")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("stockpile %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("failed to load config: %v", err)
	}
	if *fileFlag != "" {
		cfg.File = *fileFlag
	}
	if *thresholdFlag > 0 {
		cfg.LowStockThreshold = *thresholdFlag
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
	}
	if err := cfg.Validate(); err != nil {
		fatal("%v", err)
	}
	plain = *plainFlag || cfg.Theme == "plain"

	rep, err := report.NewZap(cfg.LogLevel)
	if err != nil {
		fatal("failed to set up logging: %v", err)
	}
	defer rep.Sync()

	args := flag.Args()
	if len(args) == 0 {
		showHelp()
		os.Exit(0)
	}

	switch args[0] {
	case "add":
		item, qty := parseItemQty(args, "add")
		cmdAdd(cfg, rep, item, qty)
	case "remove":
		item, qty := parseItemQty(args, "remove")
		cmdRemove(cfg, rep, item, qty)
	case "qty":
		if len(args) < 2 {
			fatal("usage: stockpile qty <item>")
		}
		cmdQty(cfg, rep, args[1])
	case "low":
		cmdLow(cfg, rep)
	case "report":
		cmdReport(cfg, rep)
	case "demo":
		cmdDemo(cfg, rep)
	case "doctor":
		cmdDoctor(cfg)
	case "init":
		cmdInit()
	case "help":
		showHelp()
	default:
		fatal("unknown command %q (run 'stockpile help')", args[0])
	}
}

func parseItemQty(args []string, cmd string) (string, int) {
	if len(args) < 3 {
		fatal("usage: stockpile %s <item> <qty>", cmd)
	}
	qty, err := strconv.Atoi(args[2])
	if err != nil {
		fatal("%s: qty must be an integer (got %q)", cmd, args[2])
	}
	return args[1], qty
}

// openStore loads the snapshot into a fresh store. A missing snapshot is
// fine (the store starts empty); a corrupt one aborts so a later save cannot
// clobber it.
func openStore(cfg *config.Config, rep report.Reporter) *inventory.Store {
	store := inventory.New(rep)
	if err := store.Load(cfg.File); err != nil {
		fatal("cannot load %s: %v", cfg.File, err)
	}
	return store
}

func cmdAdd(cfg *config.Config, rep report.Reporter, item string, qty int) {
	store := openStore(cfg, rep)
	var j inventory.Journal
	store.Add(item, qty, &j)
	if err := store.Save(cfg.File); err != nil {
		os.Exit(1)
	}
	for _, entry := range j.Entries {
		fmt.Println(entry)
	}
}

func cmdRemove(cfg *config.Config, rep report.Reporter, item string, qty int) {
	store := openStore(cfg, rep)
	summary := removeAndSummarize(store, item, qty)
	if err := store.Save(cfg.File); err != nil {
		os.Exit(1)
	}
	fmt.Println(summary)
}

// removeAndSummarize removes qty of item and returns the line the CLI
// prints. An item that was never in stock must not read as removed to zero.
func removeAndSummarize(store *inventory.Store, item string, qty int) string {
	present := slices.Contains(store.Names(), item)
	store.Remove(item, qty)
	if !present {
		return fmt.Sprintf("no %s in stock", item)
	}
	return fmt.Sprintf("%s: %d left", item, store.QuantityOf(item))
}

func cmdQty(cfg *config.Config, rep report.Reporter, item string) {
	store := openStore(cfg, rep)
	fmt.Println(store.QuantityOf(item))
}

func cmdLow(cfg *config.Config, rep report.Reporter) {
	store := openStore(cfg, rep)
	low := store.LowStock(cfg.LowStockThreshold)
	if len(low) == 0 {
		fmt.Printf("no items below %d\n", cfg.LowStockThreshold)
		return
	}
	fmt.Println(render(headerStyle, fmt.Sprintf("Low stock (below %d):", cfg.LowStockThreshold)))
	for _, name := range low {
		fmt.Printf("  %s %s\n",
			render(lowStyle, name),
			render(qtyStyle, fmt.Sprintf("(%d)", store.QuantityOf(name))))
	}
}

func cmdReport(cfg *config.Config, rep report.Reporter) {
	store := openStore(cfg, rep)
	store.Report()

	fmt.Println(render(headerStyle, fmt.Sprintf("Inventory (%d items):", store.Len())))
	for _, name := range store.Names() {
		fmt.Printf("  %s %s\n",
			render(itemStyle, name),
			render(qtyStyle, fmt.Sprintf("-> %d", store.QuantityOf(name))))
	}
}

// cmdDemo exercises the whole API in sequence against the configured
// snapshot file.
func cmdDemo(cfg *config.Config, rep report.Reporter) {
	store := inventory.New(rep)
	var j inventory.Journal

	store.Add("apple", 10, &j)
	store.Add("banana", 2, &j)
	store.Add("orange", 5, &j)
	store.Remove("apple", 3)
	store.Remove("orange", 1)

	fmt.Printf("Apple stock: %d\n", store.QuantityOf("apple"))
	fmt.Printf("Low items: %v\n", store.LowStock(inventory.DefaultLowStockThreshold))

	if err := store.Save(cfg.File); err != nil {
		os.Exit(1)
	}
	if err := store.Load(cfg.File); err != nil {
		os.Exit(1)
	}
	store.Report()

	for _, entry := range j.Entries {
		fmt.Println(entry)
	}
}

func cmdDoctor(cfg *config.Config) {
	findings, err := doctor.CheckFile(cfg.File)
	if err != nil {
		fatal("%v", err)
	}
	if len(findings) == 0 {
		fmt.Printf("%s is well formed\n", cfg.File)
		return
	}
	fmt.Println(render(errorStyle, fmt.Sprintf("%s has %d problem(s):", cfg.File, len(findings))))
	for _, f := range findings {
		fmt.Println("  - " + f)
	}
	os.Exit(1)
}

func cmdInit() {
	path := filepath.Join(config.Dir(), "config.yaml")
	if err := config.WriteDefault(path); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("wrote %s\n", path)
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, render(errorStyle, "error: "+msg))
	os.Exit(1)
}

func showHelp() {
	help := `
` + render(headerStyle, "stockpile") + ` - track stock quantities in a JSON snapshot

` + render(itemStyle, "USAGE:") + `
  stockpile <command> [args] [flags]

` + render(itemStyle, "COMMANDS:") + `
  add <item> <qty>            Add stock for an item
  remove <item> <qty>         Remove stock (entry deleted at zero)
  qty <item>                  Print the quantity on hand
  low                         List items below the low-stock threshold
  report                      Print the full inventory
  doctor                      Verify the snapshot file's shape
  demo                        Run the demonstration sequence
  init                        Write a default config.yaml
  help                        Show this help

` + render(itemStyle, "FLAGS:") + `
  -file <path>                Snapshot file (default inventory.json)
  -threshold <n>              Low-stock threshold (default 5)
  -log-level <level>          debug, info, warn, error
  -plain                      Disable styled output
  -version                    Show version
  -help, -h                   Show this help
`
	fmt.Println(help)
}
