package stops

import "github.com/travigo/stopfinder/pkg/stoperrors"

// Corpus is a source of stop records already held in memory. Scan calls fn for
// each record in corpus order and stops as soon as fn returns false.
type Corpus interface {
	Scan(fn func(StopRecord) bool) error
}

// Records is a corpus of records that have already been normalised.
type Records []StopRecord

func (r Records) Scan(fn func(StopRecord) bool) error {
	if len(r) == 0 {
		return stoperrors.NewParseError("records", 0, "corpus contains no stop records")
	}

	for _, record := range r {
		if !fn(record) {
			return nil
		}
	}

	return nil
}

// Collect drains a corpus into a Records slice
func Collect(corpus Corpus) (Records, error) {
	var records Records

	err := corpus.Scan(func(record StopRecord) bool {
		records = append(records, record)
		return true
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
