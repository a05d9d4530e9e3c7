package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// InputFormat represents the encoding of range input read by the CLI.
	InputFormat string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All input formats supported.
const (
	JSONIn    InputFormat = "json" // default
	CSVIn     InputFormat = "csv"
	ParquetIn InputFormat = "parquet"
)

// Labels attached to merged intervals in table and CSV output.
const (
	MergedLabel = "merged" // more than one input folded into the interval
	SingleLabel = "single" // interval came from exactly one input
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidInputFormats lists all valid input formats.
var ValidInputFormats = map[InputFormat]struct{}{
	JSONIn:    {},
	CSVIn:     {},
	ParquetIn: {},
}
