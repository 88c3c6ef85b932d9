package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/device42-community/d42-client/pkg/d42client"
	"github.com/device42-community/d42-client/pkg/device42"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

const defaultJSONIndent = "  "

// createClient builds an API client from the active configuration.
func createClient() (device42.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, device42.ErrAPIEndpointRequired
	}

	config := &device42.Config{
		APIEndpoint:   endpoint,
		Username:      viper.GetString("username"),
		Password:      viper.GetString("password"),
		PageSize:      viper.GetInt("page_size"),
		SkipTLSVerify: viper.GetBool("insecure"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newLogrusLogger()
	}

	return d42client.New(config)
}

// outputResult renders any value as JSON or YAML per the output setting.
func outputResult(value interface{}) error {
	switch viper.GetString("output") {
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(value)
	default:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(value)
	}
}

// renderRecords prints records either structured (json/yaml) or as a table
// restricted to the given columns. Records are schemaless, so table cells
// fall back to empty strings for absent keys.
func renderRecords(records []device42.Record, columns []string) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return outputResult(records)
	}

	if len(records) == 0 {
		fmt.Println("No records found")

		return nil
	}

	if len(columns) == 0 {
		columns = recordColumns(records[0])
	}

	table := tablewriter.NewWriter(os.Stdout)

	headers := make([]string, len(columns))
	copy(headers, columns)
	table.Header(headers)

	for _, record := range records {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = formatCell(record[column])
		}

		table.Append(row)
	}

	table.Render()

	return nil
}

// recordColumns derives a stable column order from one record.
func recordColumns(record device42.Record) []string {
	columns := make([]string, 0, len(record))
	for key := range record {
		columns = append(columns, key)
	}

	sort.Strings(columns)

	return columns
}

// formatCell renders one schemaless record value for table output.
func formatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}

		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "yes"
		}

		return "no"
	default:
		return fmt.Sprint(v)
	}
}

// collectRecords drains a listing iterator.
func collectRecords(it *device42.RecordIterator) ([]device42.Record, error) {
	records, err := it.All()
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}

	return records, nil
}

// printMutationResult reports a create/update outcome.
func printMutationResult(result *device42.MutationResult) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return outputResult(result)
	}

	if result.Message != "" {
		fmt.Printf("OK: %s", result.Message)

		if result.ID != 0 {
			fmt.Printf(" (id %d)", result.ID)
		}

		fmt.Println()

		return nil
	}

	fmt.Println("OK")

	return nil
}
