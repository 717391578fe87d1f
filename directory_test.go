//go:build unit

package phonedirectory

import (
	"errors"
	"fmt"
	"github.com/gostonefire/phonedirectory/hashfunc"
	"github.com/gostonefire/phonedirectory/hashtable"
	"github.com/gostonefire/phonedirectory/internal/conf"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"testing"
)

func testRecords() []Record {
	return []Record{
		{LastName: "Abplanalp", FirstName: "Hans", FixedPhone: "5367521366", MobilePhone: "5367521367", Email: "habplanalp@ucdavis.edu"},
		{LastName: "Doe", FirstName: "John", FixedPhone: "1234567890", MobilePhone: "0987654321", Email: "john.doe@example.com"},
		{LastName: "Tremblay", FirstName: "Marie", FixedPhone: "4186562131", MobilePhone: "4185551234", Email: "marie.tremblay@ulaval.ca"},
	}
}

func TestNew(t *testing.T) {
	t.Run("creates an empty directory with default buckets", func(t *testing.T) {
		// Execute
		d, err := New(Conf{})

		// Check
		assert.NoError(t, err, "creates directory")
		assert.Equal(t, 0, d.Count(), "directory is empty")
		stats, err := d.CollisionStats(NameIndex)
		assert.NoError(t, err, "gets name statistics")
		assert.Equal(t, conf.DefaultTableSize, stats.Buckets, "default name buckets")
		stats, err = d.CollisionStats(PhoneIndex)
		assert.NoError(t, err, "gets phone statistics")
		assert.Equal(t, conf.DefaultTableSize, stats.Buckets, "default phone buckets")
	})

	t.Run("creates a directory with given buckets and hash algorithm", func(t *testing.T) {
		// Prepare
		h, err := hashfunc.ByName(conf.XXHash)
		assert.NoError(t, err, "gets hash algorithm")

		// Execute
		d, err := New(Conf{NameBuckets: 7, PhoneBuckets: 13, HashAlgorithm: h})

		// Check
		assert.NoError(t, err, "creates directory")
		stats, _ := d.CollisionStats(NameIndex)
		assert.Equal(t, 7, stats.Buckets, "name buckets preserved")
		stats, _ = d.CollisionStats(PhoneIndex)
		assert.Equal(t, 13, stats.Buckets, "phone buckets preserved")
	})

	t.Run("error when supplying a negative bucket count", func(t *testing.T) {
		// Execute
		_, err := New(Conf{NameBuckets: -1})

		// Check
		assert.ErrorIs(t, err, hashtable.InvalidConfiguration{}, "get correct error")

		// Execute
		_, err = New(Conf{PhoneBuckets: -5})

		// Check
		assert.ErrorIs(t, err, hashtable.InvalidConfiguration{}, "get correct error")
	})
}

func TestNewFromRecords(t *testing.T) {
	t.Run("loads all records", func(t *testing.T) {
		// Execute
		d, loaded, err := NewFromRecords(Conf{NameBuckets: 100, PhoneBuckets: 100}, testRecords(), AbortOnError)

		// Check
		assert.NoError(t, err, "loads records")
		assert.Equal(t, 3, loaded, "all records loaded")
		assert.Equal(t, 3, d.Count(), "count matches")

		record, err := d.FindByName("Abplanalp", "Hans")
		assert.NoError(t, err, "finds by name")
		assert.Equal(t, "habplanalp@ucdavis.edu", record.Email, "correct record")

		record, err = d.FindByPhone("5367521366")
		assert.NoError(t, err, "finds by phone")
		assert.Equal(t, "Abplanalp", record.LastName, "correct last name")
		assert.Equal(t, "Hans", record.FirstName, "correct first name")
	})

	t.Run("error when configuration is invalid", func(t *testing.T) {
		// Execute
		d, _, err := NewFromRecords(Conf{NameBuckets: -1}, testRecords(), AbortOnError)

		// Check
		assert.ErrorIs(t, err, hashtable.InvalidConfiguration{}, "get correct error")
		assert.Nil(t, d, "no directory")
	})
}

func TestDirectory_BulkLoad(t *testing.T) {
	t.Run("aborts at the first failing record", func(t *testing.T) {
		// Prepare
		d, err := New(Conf{})
		assert.NoError(t, err, "creates directory")
		records := testRecords()
		records[1].FixedPhone = "123"

		// Execute
		loaded, err := d.BulkLoad(records, AbortOnError)

		// Check
		assert.ErrorIs(t, err, InvalidInput{}, "get correct error")
		assert.Contains(t, err.Error(), "record 1 (Doe, John)", "error names the record")
		assert.Equal(t, 1, loaded, "records before the failing one are loaded")
		assert.Equal(t, 1, d.Count(), "count matches")
		_, err = d.FindByName("Tremblay", "Marie")
		assert.ErrorIs(t, err, NotFound{}, "records after the failing one are not loaded")
	})

	t.Run("skips failing records and collects the errors", func(t *testing.T) {
		// Prepare
		d, err := New(Conf{})
		assert.NoError(t, err, "creates directory")
		records := append(testRecords(),
			Record{LastName: "Doe", FirstName: "John", FixedPhone: "1122334455", MobilePhone: "5566778899", Email: "john.duplicate@example.com"},
			Record{LastName: "Roe", FirstName: "", FixedPhone: "2222222222", MobilePhone: "3333333333", Email: "roe@example.com"},
		)

		// Execute
		loaded, err := d.BulkLoad(records, SkipOnError)

		// Check
		assert.Equal(t, 3, loaded, "valid records loaded")
		assert.Equal(t, 3, d.Count(), "count matches")
		assert.ErrorIs(t, err, DuplicateEntry{}, "duplicate reported")
		assert.ErrorIs(t, err, InvalidInput{}, "invalid input reported")

		var merr *multierror.Error
		assert.True(t, errors.As(err, &merr), "errors are collected")
		assert.Len(t, merr.Errors, 2, "one error per skipped record")
	})

	t.Run("returns no error when nothing is skipped", func(t *testing.T) {
		// Prepare
		d, err := New(Conf{})
		assert.NoError(t, err, "creates directory")

		// Execute
		loaded, err := d.BulkLoad(testRecords(), SkipOnError)

		// Check
		assert.NoError(t, err, "loads records")
		assert.Equal(t, 3, loaded, "all records loaded")
	})
}

func TestDirectory_CollisionStats(t *testing.T) {
	t.Run("delegates to the index tables", func(t *testing.T) {
		// Prepare
		everything := hashfunc.Func[string](func(key string) uint64 { return 0 })
		d, err := New(Conf{NameBuckets: 10, PhoneBuckets: 10, HashAlgorithm: everything})
		assert.NoError(t, err, "creates directory")
		_, err = d.BulkLoad(testRecords(), AbortOnError)
		assert.NoError(t, err, "loads records")

		// Execute
		nameStats, err := d.CollisionStats(NameIndex)
		assert.NoError(t, err, "gets name statistics")
		phoneStats, err := d.CollisionStats(PhoneIndex)
		assert.NoError(t, err, "gets phone statistics")

		// Check
		for _, stats := range []hashtable.Statistics{nameStats, phoneStats} {
			assert.Equal(t, 3, stats.Entries, "three entries")
			assert.Equal(t, 3, stats.Collisions, "0 + 1 + 2 collisions")
			assert.Equal(t, 2, stats.MaxCollisionsInOneInsertion, "correct max")
			assert.InDelta(t, 1.0, stats.CollisionRatio, 1e-9, "correct ratio")
		}
	})

	t.Run("error when index is unknown", func(t *testing.T) {
		// Prepare
		d, err := New(Conf{})
		assert.NoError(t, err, "creates directory")

		// Execute
		_, err = d.CollisionStats(Index(7))

		// Check
		assert.ErrorIs(t, err, InvalidInput{}, "get correct error")
	})
}

func TestIndex_String(t *testing.T) {
	t.Run("names the indices", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, "name", NameIndex.String())
		assert.Equal(t, "phone", PhoneIndex.String())
		assert.Equal(t, "Index(7)", fmt.Sprint(Index(7)))
	})
}
