package phonedirectory

// RecordIterator - Is used to iterate over the records of a directory one by one, in insertion order.
// It sees the records present when it was created; get a new one from Directory.Records to start over.
type RecordIterator struct {
	records  []Record
	position int
}

// Records - Returns a pointer to a new RecordIterator positioned before the first record
func (D *Directory) Records() *RecordIterator {
	return &RecordIterator{
		records: D.records[:len(D.records):len(D.records)],
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *RecordIterator) HasNext() bool {
	return R.position < len(R.records)
}

// Next - Returns record.
// It returns:
//   - record is the next record.
//   - err is of type NotFound if there are no more records when calling this function.
func (R *RecordIterator) Next() (record Record, err error) {
	if R.position >= len(R.records) {
		err = NotFound{msg: "no more records"}
		return
	}

	record = R.records[R.position]
	R.position++

	return
}
