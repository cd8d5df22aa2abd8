// Package main provides the CLI entry point for xlshape-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/hsaito/xlshape-go/pkg/xlshape"
	"github.com/hsaito/xlshape-go/pkg/xlshape/output"
	"github.com/hsaito/xlshape-go/pkg/xlshape/schema"
	_ "github.com/hsaito/xlshape-go/pkg/xlshape/table"
)

var (
	sheetName  string
	headerRow  int
	headerCol  int
	numCols    int
	headerRows int

	outputPath string
	format     string
	pretty     bool

	dataSheet string
	dataRow   int
	dataCol   int

	rowCount int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlshape",
		Short: "Extract and check table-shape schemas from Excel template headers",
		Long: `xlshape-go reads the header region of an Excel template, extracts its
column structure (including multi-level group headers), and can validate
data sheets against it or materialize empty table shells.`,
	}

	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "Sheet1", "Template sheet name")
	rootCmd.PersistentFlags().IntVar(&headerRow, "row", 1, "Top row of the header region (1-based)")
	rootCmd.PersistentFlags().IntVar(&headerCol, "col", 1, "Leftmost column of the header region (1-based)")
	rootCmd.PersistentFlags().IntVar(&numCols, "cols", 0, "Header width (0 = auto-detect)")
	rootCmd.PersistentFlags().IntVar(&headerRows, "header-rows", 1, "Header rows: 1 (flat) or 2 (grouped)")

	schemaCmd := &cobra.Command{
		Use:   "schema [template.xlsx]",
		Short: "Extract a template's header schema and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  runSchema,
	}
	schemaCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	schemaCmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	schemaCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	checkCmd := &cobra.Command{
		Use:   "check [template.xlsx] [data.xlsx]",
		Short: "Check that a data sheet's columns match a template's schema",
		Args:  cobra.ExactArgs(2),
		RunE:  runCheck,
	}
	checkCmd.Flags().StringVar(&dataSheet, "data-sheet", "Sheet1", "Data sheet name")
	checkCmd.Flags().IntVar(&dataRow, "data-row", 1, "Header row of the data sheet (1-based)")
	checkCmd.Flags().IntVar(&dataCol, "data-col", 1, "Leftmost header column of the data sheet (1-based)")

	emptyCmd := &cobra.Command{
		Use:   "empty [template.xlsx] [out.xlsx]",
		Short: "Write an empty table shell matching a template's schema",
		Args:  cobra.ExactArgs(2),
		RunE:  runEmpty,
	}
	emptyCmd.Flags().IntVar(&rowCount, "rows", 0, "Number of empty rows to pre-allocate")

	rootCmd.AddCommand(schemaCmd, checkCmd, emptyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func headerOptions() xlshape.HeaderOptions {
	return xlshape.HeaderOptions{
		Sheet:      sheetName,
		Row:        headerRow,
		Col:        headerCol,
		NumCols:    numCols,
		HeaderRows: headerRows,
	}
}

func extractSchema(path string) (*schema.Schema, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	s, err := xlshape.ExtractHeaderSchema(path, headerOptions())
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	return s, nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	s, err := extractSchema(args[0])
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "json":
		data, err = output.ToJSON(s, pretty)
	case "yaml":
		data, err = output.ToYAML(s)
	default:
		return fmt.Errorf("invalid format: %s (must be json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := extractSchema(args[0])
	if err != nil {
		return err
	}

	dataPath := args[1]
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", dataPath)
	}

	got, err := xlshape.ExtractHeaderSchema(dataPath, xlshape.HeaderOptions{
		Sheet: dataSheet,
		Row:   dataRow,
		Col:   dataCol,
	})
	if err != nil {
		return fmt.Errorf("reading data header failed: %w", err)
	}

	cols := got.Columns()
	if !s.Validate(schema.ColumnList(cols)) {
		return fmt.Errorf("column mismatch: template expects %v, data has %v", s.Columns(), cols)
	}

	fmt.Printf("OK: %d columns match\n", s.Size())
	return nil
}

func runEmpty(cmd *cobra.Command, args []string) error {
	s, err := extractSchema(args[0])
	if err != nil {
		return err
	}

	tbl, err := s.MakeEmptyTable(rowCount)
	if err != nil {
		return fmt.Errorf("building table failed: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := xlshape.WriteTable(f, "Sheet1", tbl, 1, 1, true); err != nil {
		return fmt.Errorf("writing table failed: %w", err)
	}

	if err := f.SaveAs(args[1]); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("wrote %s (%d columns, %d rows)\n", args[1], s.Size(), tbl.RowCount())
	return nil
}
