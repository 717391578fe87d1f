package phonedirectory

import (
	"fmt"
	"github.com/gostonefire/phonedirectory/hashfunc"
	"github.com/gostonefire/phonedirectory/hashtable"
	"github.com/gostonefire/phonedirectory/internal/conf"
	"github.com/hashicorp/go-multierror"
)

// Index - Identifies one of the two indices of a Directory
type Index int

const (
	// NameIndex - The index keyed by last name followed by first name
	NameIndex Index = iota
	// PhoneIndex - The index keyed by fixed phone number
	PhoneIndex
)

// String - Returns the name of the index
func (I Index) String() string {
	switch I {
	case NameIndex:
		return "name"
	case PhoneIndex:
		return "phone"
	default:
		return fmt.Sprintf("Index(%d)", int(I))
	}
}

// LoadPolicy - Decides what BulkLoad does with a record that can't be inserted
type LoadPolicy int

const (
	// AbortOnError - Stop at the first record that fails and return its error
	AbortOnError LoadPolicy = iota
	// SkipOnError - Skip failing records and return all their errors together once done
	SkipOnError
)

// Conf - Is a struct used in the call to New holding configuration for the indices.
//   - NameBuckets is the number of buckets in the name index, 0 (zero) gives conf.DefaultTableSize
//   - PhoneBuckets is the number of buckets in the phone index, 0 (zero) gives conf.DefaultTableSize
//   - HashAlgorithm is an optional hash algorithm used by both indices, nil gives the internal crc32 algorithm
type Conf struct {
	NameBuckets   int
	PhoneBuckets  int
	HashAlgorithm hashfunc.HashAlgorithm[string]
}

// Directory - In memory phone directory holding an append only sequence of records, indexed both by name and by
// fixed phone number. The indices hold positions in the sequence, not the records themselves.
//
// A Directory is not safe for concurrent use, see SyncDirectory.
type Directory struct {
	records []Record
	byName  *hashtable.HashTable[string, int]
	byPhone *hashtable.HashTable[string, int]
}

// New - Returns a new empty directory.
//   - dirConf is a Conf struct with bucket counts and hash algorithm for the indices
//
// It returns:
//   - directory is a pointer to a Directory struct
//   - err is of type hashtable.InvalidConfiguration if a bucket count is negative
func New(dirConf Conf) (directory *Directory, err error) {
	if dirConf.NameBuckets == 0 {
		dirConf.NameBuckets = conf.DefaultTableSize
	}
	if dirConf.PhoneBuckets == 0 {
		dirConf.PhoneBuckets = conf.DefaultTableSize
	}
	if dirConf.HashAlgorithm == nil {
		dirConf.HashAlgorithm = hashfunc.Default()
	}

	byName, err := hashtable.NewHashTable[string, int](dirConf.NameBuckets, dirConf.HashAlgorithm)
	if err != nil {
		err = fmt.Errorf("error while creating name index: %w", err)
		return
	}
	byPhone, err := hashtable.NewHashTable[string, int](dirConf.PhoneBuckets, dirConf.HashAlgorithm)
	if err != nil {
		err = fmt.Errorf("error while creating phone index: %w", err)
		return
	}

	directory = &Directory{
		byName:  byName,
		byPhone: byPhone,
	}

	return
}

// NewFromRecords - Returns a new directory bulk loaded with records.
//   - dirConf is a Conf struct with bucket counts and hash algorithm for the indices
//   - records is the records to load, in order
//   - policy decides whether a failing record aborts the load or is skipped
//
// It returns:
//   - directory is a pointer to a Directory struct, it is nil only if the configuration was invalid
//   - loaded is the number of records inserted
//   - err is the error from New, or the error(s) from BulkLoad
func NewFromRecords(dirConf Conf, records []Record, policy LoadPolicy) (directory *Directory, loaded int, err error) {
	directory, err = New(dirConf)
	if err != nil {
		return
	}

	loaded, err = directory.BulkLoad(records, policy)

	return
}

// BulkLoad - Inserts records one by one in the given order.
// With AbortOnError the records before the failing one stay inserted; with SkipOnError every failure is
// collected in a *multierror.Error, each of them still matching its kind with errors.Is.
//   - records is the already parsed records to insert
//   - policy decides whether a failing record aborts the load or is skipped
//
// It returns:
//   - loaded is the number of records inserted by this call
//   - err describes the failing record(s), nil if all were inserted
func (D *Directory) BulkLoad(records []Record, policy LoadPolicy) (loaded int, err error) {
	var skipped *multierror.Error
	for i, r := range records {
		insErr := D.Insert(r.LastName, r.FirstName, r.FixedPhone, r.MobilePhone, r.Email)
		if insErr != nil {
			insErr = fmt.Errorf("record %d (%s, %s): %w", i, r.LastName, r.FirstName, insErr)
			if policy == AbortOnError {
				err = insErr
				return
			}
			skipped = multierror.Append(skipped, insErr)
			continue
		}
		loaded++
	}

	err = skipped.ErrorOrNil()

	return
}

// Count - Returns the number of records in the directory
func (D *Directory) Count() int {
	return len(D.records)
}

// CollisionStats - Returns the collision statistics of one of the indices
//   - index is either NameIndex or PhoneIndex
//
// It returns:
//   - statistics is a snapshot of the index statistics
//   - err is of type InvalidInput if index is unknown
func (D *Directory) CollisionStats(index Index) (statistics hashtable.Statistics, err error) {
	switch index {
	case NameIndex:
		statistics = D.byName.Statistics()
	case PhoneIndex:
		statistics = D.byPhone.Statistics()
	default:
		err = InvalidInput{msg: fmt.Sprintf("unknown index %s", index)}
	}

	return
}
