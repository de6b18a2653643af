package core

import (
	"fmt"
	"sync"

	"github.com/huangsam/logbook/internal/contract"
	"github.com/huangsam/logbook/schema"
)

// GroupByBuilding partitions records by student_school, defaulting missing
// values to the Unknown Building sentinel. It returns the distinct building
// names in first-seen order along with each subset; every record lands in
// exactly one subset, so the union of all subsets is the input collection.
func GroupByBuilding(records []schema.IncidentRecord) ([]string, map[string][]schema.IncidentRecord) {
	groups := make(map[string][]schema.IncidentRecord)
	var order []string
	for _, r := range records {
		building := schema.BuildingOrUnknown(r.StudentSchool)
		if _, ok := groups[building]; !ok {
			order = append(order, building)
		}
		groups[building] = append(groups[building], r)
	}
	return order, groups
}

// BuildReports produces the district-wide report followed by one report per
// building in first-seen order. Per-partition metric computation fans out
// across cfg.Workers goroutines; partitions are independent, so the only
// coordination is collecting results back into deterministic order.
func BuildReports(records []schema.IncidentRecord, cfg *contract.Config) []schema.Report {
	buildings, groups := GroupByBuilding(records)

	type job struct {
		idx     int
		label   string
		records []schema.IncidentRecord
	}

	jobs := make([]job, 0, len(buildings)+1)
	jobs = append(jobs, job{idx: 0, label: schema.DistrictLabel, records: records})
	for i, building := range buildings {
		jobs = append(jobs, job{idx: i + 1, label: building, records: groups[building]})
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	reports := make([]schema.Report, len(jobs))
	jobCh := make(chan job)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				reports[j.idx] = schema.Report{
					Label:   j.label,
					Records: j.records,
					Metrics: CalculateSummaryMetrics(j.records, cfg.TopStudents, cfg.TopAuthors),
				}
			}
		}()
	}
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)
	wg.Wait()

	return reports
}

// Run builds all reports for the collection and hands each one to the sink:
// the district-wide report first, then buildings in first-seen order.
func Run(records []schema.IncidentRecord, cfg *contract.Config, sink contract.ReportSink) error {
	reports := BuildReports(records, cfg)
	for i := range reports {
		if err := sink.WriteReport(&reports[i]); err != nil {
			return fmt.Errorf("write report %q: %w", reports[i].Label, err)
		}
	}
	return nil
}
