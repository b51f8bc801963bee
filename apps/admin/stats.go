package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/trezcool/elimu/core/curriculum"
	"github.com/trezcool/elimu/core/school"
)

func (cli *commandLine) stats(level curriculum.Level) error {
	d := cli.store.Snapshot()
	dash := school.DashboardStats(d, level)
	fees := school.FeeTotals(d)
	lib := school.LibraryStats(d)

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "students\t%d\n", dash.Students)
	for _, lc := range dash.StudentsPerLevel {
		fmt.Fprintf(w, "  %s\t%d\n", lc.Level, lc.Count)
	}
	fmt.Fprintf(w, "classes\t%d\n", dash.Classes)
	fmt.Fprintf(w, "subjects\t%d\n", dash.Subjects)
	fmt.Fprintf(w, "teachers\t%d\n", dash.Teachers)
	fmt.Fprintf(w, "events\t%d\n", dash.Events)
	fmt.Fprintf(w, "fees pending\t%.0f\n", fees.Pending)
	fmt.Fprintf(w, "fees collected\t%.0f\n", fees.Collected)
	fmt.Fprintf(w, "fees outstanding\t%.0f\n", fees.Outstanding)
	fmt.Fprintf(w, "payroll\t%.0f\n", school.PayrollTotal(d))
	fmt.Fprintf(w, "books\t%d titles, %d copies, %d available\n", lib.Titles, lib.TotalCopies, lib.Available)
	fmt.Fprintf(w, "loans\t%d active, %d overdue\n", lib.OnLoan, lib.Overdue)
	return w.Flush()
}
