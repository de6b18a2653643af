// Package parquet provides data structures and functions for exporting raw
// incident records to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/logbook/schema"
	"github.com/parquet-go/parquet-go"
)

// IncidentRow mirrors schema.IncidentRecord with Parquet struct tags.
// One row per discipline-log entry; every column is a free-text string as
// it arrived from the source.
type IncidentRow struct {
	StudentNumber      string `parquet:"student_number,snappy"`
	StudentName        string `parquet:"student_name,snappy"`
	GradeLevel         string `parquet:"grade_level,snappy"`
	EntryAuthor        string `parquet:"entry_author,snappy"`
	EntryDate          string `parquet:"entry_date,snappy"`
	EntryHour          string `parquet:"entry_hour,snappy"`
	EntryMinute        string `parquet:"entry_minute,snappy"`
	EntryMeridiem      string `parquet:"entry_meridiem,snappy"`
	IncidentDate       string `parquet:"incident_date,snappy"`
	IncidentTime       string `parquet:"incident_time,snappy"`
	Category           string `parquet:"category,snappy"`
	Subject            string `parquet:"subject,snappy"`
	Entry              string `parquet:"entry,snappy"`
	SubmittedByTeacher string `parquet:"submitted_by_teacher,snappy"`
	LogType            string `parquet:"log_type,snappy"`
	SubtypeName        string `parquet:"subtype_name,snappy"`
	Consequence        string `parquet:"consequence,snappy"`
	ConsequenceName    string `parquet:"consequence_name,snappy"`
	IncidentLocation   string `parquet:"incident_location,snappy"`
	StudentSchool      string `parquet:"student_school,snappy"`
}

// FromRecord converts a normalized record to its Parquet row form.
func FromRecord(r schema.IncidentRecord) IncidentRow {
	return IncidentRow{
		StudentNumber:      r.StudentNumber,
		StudentName:        r.StudentName,
		GradeLevel:         r.GradeLevel,
		EntryAuthor:        r.EntryAuthor,
		EntryDate:          r.EntryDate,
		EntryHour:          r.EntryHour,
		EntryMinute:        r.EntryMinute,
		EntryMeridiem:      r.EntryMeridiem,
		IncidentDate:       r.IncidentDate,
		IncidentTime:       r.IncidentTime,
		Category:           r.Category,
		Subject:            r.Subject,
		Entry:              r.Entry,
		SubmittedByTeacher: r.SubmittedByTeacher,
		LogType:            r.LogType,
		SubtypeName:        r.SubtypeName,
		Consequence:        r.Consequence,
		ConsequenceName:    r.ConsequenceName,
		IncidentLocation:   r.IncidentLocation,
		StudentSchool:      r.StudentSchool,
	}
}

// WriteRecords writes a record subset to a Parquet file.
func WriteRecords(outputPath string, records []schema.IncidentRecord) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	rows := make([]IncidentRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, FromRecord(r))
	}

	// The schema is automatically derived from the IncidentRow struct tags
	writer := parquet.NewGenericWriter[IncidentRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
