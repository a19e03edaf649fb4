package gallery

import (
	"errors"
	"fmt"
	"testing"
)

func makeRecords(n int) []ImageRecord {
	records := make([]ImageRecord, n)
	for i := range records {
		records[i] = ImageRecord{Filename: fmt.Sprintf("shot_%03d.png", i)}
	}
	return records
}

func TestPaginateEmptyRecords(t *testing.T) {
	if _, err := Paginate(nil, 20); !errors.Is(err, ErrNoRecords) {
		t.Errorf("Paginate(nil) error = %v, want ErrNoRecords", err)
	}
}

func TestPaginateInvalidPageSize(t *testing.T) {
	if _, err := Paginate(makeRecords(5), 0); err == nil {
		t.Error("Paginate with pageSize 0 should fail")
	}
	if _, err := Paginate(makeRecords(5), -3); err == nil {
		t.Error("Paginate with negative pageSize should fail")
	}
}

func TestPaginatePageCounts(t *testing.T) {
	tests := []struct {
		records   int
		pageSize  int
		wantPages int
	}{
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
		{100, 1, 100},
		{7, 3, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_records_%d_per_page", tt.records, tt.pageSize), func(t *testing.T) {
			pages, err := Paginate(makeRecords(tt.records), tt.pageSize)
			if err != nil {
				t.Fatalf("Paginate() error: %v", err)
			}
			if len(pages) != tt.wantPages {
				t.Fatalf("got %d pages, want %d", len(pages), tt.wantPages)
			}
			for i, page := range pages {
				if page.TotalPages != tt.wantPages {
					t.Errorf("page %d TotalPages = %d, want %d", i+1, page.TotalPages, tt.wantPages)
				}
				wantLen := tt.pageSize
				if i == len(pages)-1 {
					wantLen = tt.records - (len(pages)-1)*tt.pageSize
				}
				if len(page.Records) != wantLen {
					t.Errorf("page %d has %d records, want %d", i+1, len(page.Records), wantLen)
				}
			}
		})
	}
}

func TestPaginateLosslessPartition(t *testing.T) {
	for _, pageSize := range []int{1, 2, 3, 7, 20, 50} {
		records := makeRecords(45)
		pages, err := Paginate(records, pageSize)
		if err != nil {
			t.Fatalf("Paginate(pageSize=%d) error: %v", pageSize, err)
		}

		var recombined []ImageRecord
		for _, page := range pages {
			recombined = append(recombined, page.Records...)
		}
		if len(recombined) != len(records) {
			t.Fatalf("pageSize=%d: recombined %d records, want %d", pageSize, len(recombined), len(records))
		}
		for i := range records {
			if recombined[i].Filename != records[i].Filename {
				t.Fatalf("pageSize=%d: record %d is %q, want %q",
					pageSize, i, recombined[i].Filename, records[i].Filename)
			}
		}
	}
}

func TestPaginateTopology(t *testing.T) {
	// 45 records at 20 per page: three pages of 20, 20, and 5.
	pages, err := Paginate(makeRecords(45), 20)
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}

	first, middle, last := pages[0], pages[1], pages[2]

	if first.HasPrev || !first.IsFirst() {
		t.Error("page 1 must have no prev link")
	}
	if !first.HasNext || first.Next != 2 {
		t.Errorf("page 1 next = %d (has=%v), want 2", first.Next, first.HasNext)
	}

	if !middle.HasPrev || middle.Prev != 1 {
		t.Errorf("page 2 prev = %d (has=%v), want 1", middle.Prev, middle.HasPrev)
	}
	if !middle.HasNext || middle.Next != 3 {
		t.Errorf("page 2 next = %d (has=%v), want 3", middle.Next, middle.HasNext)
	}

	if last.HasNext || !last.IsLast() {
		t.Error("last page must have no next link")
	}
	if !last.HasPrev || last.Prev != 2 {
		t.Errorf("page 3 prev = %d (has=%v), want 2", last.Prev, last.HasPrev)
	}
	if len(last.Records) != 5 {
		t.Errorf("page 3 has %d records, want 5", len(last.Records))
	}
}

func TestPageOrdinals(t *testing.T) {
	pages, err := Paginate(makeRecords(45), 20)
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}

	ordinals := pages[1].Ordinals()
	want := []int{1, 2, 3}
	if len(ordinals) != len(want) {
		t.Fatalf("Ordinals() = %v, want %v", ordinals, want)
	}
	for i := range want {
		if ordinals[i] != want[i] {
			t.Errorf("Ordinals()[%d] = %d, want %d", i, ordinals[i], want[i])
		}
	}
}

func TestPaginateSinglePage(t *testing.T) {
	pages, err := Paginate(makeRecords(5), 20)
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	page := pages[0]
	if !page.IsFirst() || !page.IsLast() {
		t.Error("a single page must be both first and last")
	}
	if page.HasPrev || page.HasNext {
		t.Error("a single page must have no prev or next links")
	}
}
