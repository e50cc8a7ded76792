package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/exam-registry/pkg/model"
)

// WriteReservations marshals the reservations as CSV rows with a header,
// using delim between fields.
func WriteReservations(w io.Writer, reservations iter.Seq[model.Reservation], delim rune) error {
	rows := slices.Collect(reservations)
	if rows == nil {
		rows = []model.Reservation{}
	}

	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("marshal reservations: %w", err)
	}
	return nil
}

// ExportReservations writes the reservations to the CSV file at path,
// replacing any previous content, and returns the path.
func ExportReservations(path string, reservations iter.Seq[model.Reservation], delim rune) (string, error) {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open export file: %w", err)
	}

	if err := WriteReservations(out, reservations, delim); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}
