package report

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gostonefire/phonedirectory"
	"io"
)

// WriteRecords - Writes every record of the directory, one per line, in insertion order
func WriteRecords(w io.Writer, d *phonedirectory.Directory) error {
	return d.ForEachRecord(func(record phonedirectory.Record) error {
		_, err := fmt.Fprintln(w, record.String())
		return err
	})
}

// WriteRecord - Writes one record on a line
func WriteRecord(w io.Writer, record phonedirectory.Record) (err error) {
	_, err = fmt.Fprintln(w, record.String())
	return
}

// WriteStatistics - Writes the number of entries and the collision statistics of both indices
func WriteStatistics(w io.Writer, d *phonedirectory.Directory) (err error) {
	_, err = fmt.Fprintf(w, "entries: %s\n", humanize.Comma(int64(d.Count())))
	if err != nil {
		return
	}

	for _, index := range []phonedirectory.Index{phonedirectory.NameIndex, phonedirectory.PhoneIndex} {
		stats, statErr := d.CollisionStats(index)
		if statErr != nil {
			return statErr
		}
		_, err = fmt.Fprintf(w, "%s index: buckets %s, collision ratio %.4f, collisions %s, max collisions in one insertion %d\n",
			index, humanize.Comma(int64(stats.Buckets)), stats.CollisionRatio, humanize.Comma(int64(stats.Collisions)), stats.MaxCollisionsInOneInsertion)
		if err != nil {
			return
		}
	}

	return
}
