package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rhyrak/exam-registry/pkg/model"
)

const menu = `     --------< Exam Seat Reservation >--------
    |                                         |
    |  1. Reserve an exam seat                |
    |  2. Cancel reservations                 |
    |  3. Search an applicant                 |
    |  4. List all reservations               |
    |  5. Exit                                |
     -----------------------------------------
`

var separator = strings.Repeat("-", 60)

// printReservation writes one record, dated in the given year.
func printReservation(w io.Writer, r model.Reservation, year int) {
	fmt.Fprintf(w, "Seat #%d\n", r.ID)
	fmt.Fprintf(w, "%-9s: %s\n", "Name", r.Name)
	fmt.Fprintf(w, "%-9s: %s\n", "Subject", r.Subject)
	fmt.Fprintf(w, "%-9s: %s\n", "Location", r.Location)
	fmt.Fprintf(w, "%d-%02d-%02d %02d:%02d\n", year, r.Month, r.Day, r.Hour, r.Minute)
}
