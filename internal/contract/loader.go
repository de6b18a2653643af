package contract

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/logbook/schema"
)

// DefaultColumnMapping maps the source export's column headers to the
// normalized record field names. Headers not present in the mapping are
// normalized mechanically (lowercased, spaces to underscores), so an
// already-normalized export round-trips unchanged.
var DefaultColumnMapping = map[string]string{
	"Student Number":       "student_number",
	"Student Name":         "student_name",
	"Grade Level":          "grade_level",
	"Entry Author":         "entry_author",
	"Entry Date":           "entry_date",
	"Entry Hour":           "entry_hour",
	"Entry Minute":         "entry_minute",
	"Entry Meridiem":       "entry_meridiem",
	"Incident Date":        "incident_date",
	"Incident Time":        "incident_time",
	"Category":             "category",
	"Subject":              "subject",
	"Entry":                "entry",
	"Submitted By Teacher": "submitted_by_teacher",
	"Log Type":             "log_type",
	"Subtype Name":         "subtype_name",
	"Consequence":          "consequence",
	"Consequence Name":     "consequence_name",
	"Incident Location":    "incident_location",
	"Student School":       "student_school",
}

// CSVLoader reads a discipline-log CSV export and normalizes its column
// headers into IncidentRecord fields. Columns the record model does not know
// are ignored; missing columns leave their fields empty, to be defaulted by
// the metric functions.
type CSVLoader struct {
	Path    string
	Mapping map[string]string // source header -> normalized name; nil uses DefaultColumnMapping
}

var _ RecordLoader = (*CSVLoader)(nil) // Compile-time check

// NewCSVLoader creates a loader for the given file using the default mapping.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{Path: path}
}

// Load reads the whole file into a normalized record slice.
func (l *CSVLoader) Load(ctx context.Context) ([]schema.IncidentRecord, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; short rows default to Unknown downstream

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("input file %q is empty", l.Path)
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	fields := l.normalizeHeader(header)

	var records []schema.IncidentRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+2, err)
		}

		var record schema.IncidentRecord
		for i, value := range row {
			if i >= len(fields) {
				break
			}
			setRecordField(&record, fields[i], value)
		}
		records = append(records, record)
	}

	return records, nil
}

// normalizeHeader resolves each source header to its normalized field name.
func (l *CSVLoader) normalizeHeader(header []string) []string {
	mapping := l.Mapping
	if mapping == nil {
		mapping = DefaultColumnMapping
	}

	fields := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if mapped, ok := mapping[h]; ok {
			fields[i] = mapped
			continue
		}
		fields[i] = strings.ReplaceAll(strings.ToLower(h), " ", "_")
	}
	return fields
}

// setRecordField assigns a cell value to the record field named by the
// normalized column name. Unrecognized columns are dropped.
func setRecordField(r *schema.IncidentRecord, field, value string) {
	switch field {
	case "student_number":
		r.StudentNumber = value
	case "student_name":
		r.StudentName = value
	case "grade_level":
		r.GradeLevel = value
	case "entry_author":
		r.EntryAuthor = value
	case "entry_date":
		r.EntryDate = value
	case "entry_hour":
		r.EntryHour = value
	case "entry_minute":
		r.EntryMinute = value
	case "entry_meridiem":
		r.EntryMeridiem = value
	case "incident_date":
		r.IncidentDate = value
	case "incident_time":
		r.IncidentTime = value
	case "category":
		r.Category = value
	case "subject":
		r.Subject = value
	case "entry":
		r.Entry = value
	case "submitted_by_teacher":
		r.SubmittedByTeacher = value
	case "log_type":
		r.LogType = value
	case "subtype_name":
		r.SubtypeName = value
	case "consequence":
		r.Consequence = value
	case "consequence_name":
		r.ConsequenceName = value
	case "incident_location":
		r.IncidentLocation = value
	case "student_school":
		r.StudentSchool = value
	}
}
