package gallery

import (
	"errors"
	"fmt"
)

// ErrNoRecords is returned when pagination is asked to split an empty
// record list. An empty gallery is not a valid terminal state.
var ErrNoRecords = errors.New("no records to paginate")

// Page is one contiguous slice of the ordered record sequence plus its
// link topology. Pages are derived on every run and never persisted.
type Page struct {
	// Number is the 1-indexed page ordinal.
	Number int

	// Records holds the page's slice of the ordered record sequence.
	Records []ImageRecord

	// TotalPages is the page count for the whole sequence.
	TotalPages int

	HasPrev bool
	HasNext bool
	Prev    int
	Next    int
}

// Ordinals returns every page number in order, for building the numbered
// page links.
func (p Page) Ordinals() []int {
	nums := make([]int, p.TotalPages)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// IsFirst reports whether this is the first page.
func (p Page) IsFirst() bool { return p.Number == 1 }

// IsLast reports whether this is the last page.
func (p Page) IsLast() bool { return p.Number == p.TotalPages }

// Paginate splits records into fixed-size pages. Page i (1-indexed)
// contains records [(i-1)*pageSize, i*pageSize); the last page holds the
// remainder. Concatenating the pages in order reproduces records exactly.
func Paginate(records []ImageRecord, pageSize int) ([]Page, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("page size must be at least 1, got %d", pageSize)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	totalPages := (len(records) + pageSize - 1) / pageSize

	pages := make([]Page, 0, totalPages)
	for number := 1; number <= totalPages; number++ {
		start := (number - 1) * pageSize
		end := start + pageSize
		if end > len(records) {
			end = len(records)
		}

		page := Page{
			Number:     number,
			Records:    records[start:end],
			TotalPages: totalPages,
		}
		if number > 1 {
			page.HasPrev = true
			page.Prev = number - 1
		}
		if number < totalPages {
			page.HasNext = true
			page.Next = number + 1
		}
		pages = append(pages, page)
	}

	return pages, nil
}
