// Package schema has configs, models and shared constants for all parts of logbook.
package schema

// IncidentRecord is one normalized discipline-log entry. Every field is a
// free-text string as it arrived from the source; absent or malformed values
// are empty and resolved to the Unknown sentinel at read time by the metric
// functions, never mutated in place.
type IncidentRecord struct {
	StudentNumber      string `json:"student_number"`
	StudentName        string `json:"student_name"`
	GradeLevel         string `json:"grade_level"`
	EntryAuthor        string `json:"entry_author"`
	EntryDate          string `json:"entry_date"`
	EntryHour          string `json:"entry_hour"`
	EntryMinute        string `json:"entry_minute"`
	EntryMeridiem      string `json:"entry_meridiem"`
	IncidentDate       string `json:"incident_date"`
	IncidentTime       string `json:"incident_time"`
	Category           string `json:"category"`
	Subject            string `json:"subject"`
	Entry              string `json:"entry"`
	SubmittedByTeacher string `json:"submitted_by_teacher"`
	LogType            string `json:"log_type"`
	SubtypeName        string `json:"subtype_name"`
	Consequence        string `json:"consequence"`
	ConsequenceName    string `json:"consequence_name"`
	IncidentLocation   string `json:"incident_location"`
	StudentSchool      string `json:"student_school"`
}

// RecordColumns lists the normalized column names of an IncidentRecord in
// their canonical order, used for the raw-records passthrough listing.
var RecordColumns = []string{
	"student_number",
	"student_name",
	"grade_level",
	"entry_author",
	"entry_date",
	"entry_hour",
	"entry_minute",
	"entry_meridiem",
	"incident_date",
	"incident_time",
	"category",
	"subject",
	"entry",
	"submitted_by_teacher",
	"log_type",
	"subtype_name",
	"consequence",
	"consequence_name",
	"incident_location",
	"student_school",
}

// Values returns the record's fields in RecordColumns order.
func (r IncidentRecord) Values() []string {
	return []string{
		r.StudentNumber,
		r.StudentName,
		r.GradeLevel,
		r.EntryAuthor,
		r.EntryDate,
		r.EntryHour,
		r.EntryMinute,
		r.EntryMeridiem,
		r.IncidentDate,
		r.IncidentTime,
		r.Category,
		r.Subject,
		r.Entry,
		r.SubmittedByTeacher,
		r.LogType,
		r.SubtypeName,
		r.Consequence,
		r.ConsequenceName,
		r.IncidentLocation,
		r.StudentSchool,
	}
}
