package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RichardKnop/minidb/internal/core/minidb"
	"github.com/RichardKnop/minidb/internal/core/parser"
	"github.com/RichardKnop/minidb/internal/pkg/config"
	"github.com/RichardKnop/minidb/internal/pkg/logging"
	"github.com/RichardKnop/minidb/internal/storage/filestore"
	"github.com/RichardKnop/minidb/internal/storage/memstore"
)

const cliName = "minidb"

var configPath string

var rootCmd = &cobra.Command{
	Use:   cliName,
	Short: "Minimal relational data engine",
	Long:  "A minimal relational data engine with hash indexes and per-table snapshot persistence.",
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive shell",
	RunE:  runRepl,
}

var execCmd = &cobra.Command{
	Use:   "exec <query>",
	Short: "Execute a single statement",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExec,
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables and their schemas",
	RunE:  runTables,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(tablesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newDatabase(ctx context.Context) (*minidb.Database, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var aStorage minidb.Storage
	switch cfg.Storage {
	case "memory":
		aStorage = memstore.New()
	case "file":
		aStorage, err = filestore.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown storage mode %q", cfg.Storage)
	}

	aDatabase, err := minidb.NewDatabase(ctx, logger, parser.New(), aStorage)
	if err != nil {
		return nil, nil, err
	}
	return aDatabase, logger, nil
}

func runExec(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	aDatabase, logger, err := newDatabase(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()

	aResult, err := aDatabase.Execute(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	printResult(aResult)
	return nil
}

func runTables(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	aDatabase, logger, err := newDatabase(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()

	for _, tableName := range aDatabase.ListTableNames(ctx) {
		info, err := aDatabase.TableInfo(ctx, tableName)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d rows)\n", tableName, info.RowCount)
		for _, aColumn := range info.Schema {
			constraints := ""
			if aColumn.IsPrimary {
				constraints = " PRIMARY KEY"
			} else if aColumn.IsUnique {
				constraints = " UNIQUE"
			}
			fmt.Printf("  %s %s%s\n", aColumn.Name, aColumn.Type, constraints)
		}
	}
	return nil
}

func printPrompt() {
	fmt.Print(cliName, "> ")
}

type metaCommand int

const (
	Unknown metaCommand = iota + 1
	Help
	Exit
	ListTables
)

func isMetaCommand(inputBuffer string) bool {
	return len(inputBuffer) > 0 && inputBuffer[:1] == "."
}

func doMetaCommand(inputBuffer string) metaCommand {
	switch inputBuffer {
	case "help":
		return Help
	case "exit":
		return Exit
	case "tables":
		return ListTables
	default:
		return Unknown
	}
}

func runRepl(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	aDatabase, logger, err := newDatabase(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()

	reader := bufio.NewScanner(os.Stdin)
	printPrompt()

	// REPL (Read-eval-print loop) start
	for reader.Scan() {
		inputBuffer := strings.TrimSpace(reader.Text())
		if isMetaCommand(inputBuffer) {
			switch doMetaCommand(inputBuffer[1:]) {
			case Help:
				fmt.Println(".help    - Show available commands")
				fmt.Println(".exit    - Closes program")
				fmt.Println(".tables  - List all tables in the current database")
			case Exit:
				return nil
			case ListTables:
				for _, tableName := range aDatabase.ListTableNames(ctx) {
					fmt.Println(tableName)
				}
			case Unknown:
				fmt.Printf("Unrecognized meta command: %s\n", inputBuffer)
			}
		} else if inputBuffer != "" {
			aResult, err := aDatabase.Execute(ctx, inputBuffer)
			if err != nil {
				fmt.Printf("Error: %s\n", err)
			} else {
				printResult(aResult)
			}
		}
		printPrompt()
	}
	// Print an additional line if we encountered an EOF character
	fmt.Println()
	return nil
}

func printResult(aResult minidb.StatementResult) {
	switch {
	case aResult.Message != "":
		fmt.Println(aResult.Message)
	case aResult.RowID > 0:
		fmt.Printf("Row ID: %d\n", aResult.RowID)
	case aResult.Rows != nil:
		printRows(aResult)
	default:
		fmt.Printf("Rows affected: %d\n", aResult.RowsAffected)
	}
}

func printRows(aResult minidb.StatementResult) {
	for _, aRow := range aResult.Rows {
		parts := make([]string, 0, len(aRow))
		for _, columnName := range aResult.Columns {
			if value, ok := aRow[columnName]; ok {
				parts = append(parts, fmt.Sprintf("%s=%v", columnName, value))
			}
		}
		if len(parts) == 0 {
			// Join rows are keyed "<table>.<column>" and ignore the
			// projection, print every merged column instead.
			for columnName, value := range aRow {
				parts = append(parts, fmt.Sprintf("%s=%v", columnName, value))
			}
		}
		fmt.Println(strings.Join(parts, "\t"))
	}
	fmt.Printf("(%d rows)\n", len(aResult.Rows))
}
