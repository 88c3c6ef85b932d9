package device42

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/device42-community/d42-client/internal/constants"
)

// PageSource issues a single GET request and returns the raw response body.
// It is implemented by the internal HTTP client; tests supply fakes.
type PageSource interface {
	GetPage(ctx context.Context, path string, query url.Values) ([]byte, error)
}

// PaginationOptions configures paginated fetching.
type PaginationOptions struct {
	// PageSize is the number of records requested per page. Zero means
	// constants.DefaultPageSize. Caller-supplied limit/offset query values
	// are always overwritten; the page size is only controlled here.
	PageSize int

	// MaxPages bounds the number of page requests issued, guarding against
	// servers that report a total_count they never converge on. Zero means
	// no bound.
	MaxPages int

	// Logger receives per-page progress traces during multi-page listings.
	Logger Logger
}

// DefaultPaginationOptions returns the default pagination options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: constants.DefaultPageSize,
	}
}

// PageIterator walks a paginated listing one page at a time. It is pull-based
// and forward-only: each page request is issued only when the caller asks for
// it, at strictly increasing offsets, with no prefetching. Iterators hold
// mutable cursor state and must not be shared across goroutines; distinct
// iterators are fully independent.
type PageIterator struct {
	ctx    context.Context
	source PageSource
	path   string
	query  url.Values
	logger Logger

	pageSize int
	maxPages int

	pageNum    int
	totalCount int
	processed  int
	started    bool
	done       bool
}

// NewPageIterator creates an iterator over the pages of a listing endpoint.
func NewPageIterator(ctx context.Context, source PageSource, path string, query url.Values, options *PaginationOptions) *PageIterator {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	pageSize := options.PageSize
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	return &PageIterator{
		ctx:      ctx,
		source:   source,
		path:     path,
		query:    query,
		logger:   options.Logger,
		pageSize: pageSize,
		maxPages: options.MaxPages,
	}
}

// HasNext returns true if more pages may be available.
func (it *PageIterator) HasNext() bool {
	if it.done {
		return false
	}

	if !it.started {
		return true
	}

	if it.maxPages > 0 && it.pageNum >= it.maxPages {
		return false
	}

	return it.processed < it.totalCount
}

// NextPage fetches and returns the next page of records. It returns
// ErrNoMorePages once the listing is exhausted. An empty first page ends the
// sequence with zero pages produced; an empty later page is a contract
// violation and fails with ErrShortPage.
func (it *PageIterator) NextPage() ([]Record, error) {
	if !it.HasNext() {
		it.done = true

		return nil, ErrNoMorePages
	}

	offset := it.pageNum * it.pageSize

	body, err := it.source.GetPage(it.ctx, it.path, it.pageQuery(offset))
	if err != nil {
		it.done = true

		return nil, fmt.Errorf("fetching page %d: %w", it.pageNum+1, err)
	}

	envelope, err := ParseListEnvelope(body)
	if err != nil {
		it.done = true

		return nil, fmt.Errorf("page %d: %w", it.pageNum+1, err)
	}

	it.pageNum++

	if !it.started {
		it.started = true
		it.totalCount = envelope.TotalCount

		// Endpoints with no matching records return an empty payload on
		// the first page; end the sequence without producing a page.
		if len(envelope.Records) == 0 {
			it.done = true

			return nil, ErrNoMorePages
		}
	} else if len(envelope.Records) == 0 {
		it.done = true

		return nil, fmt.Errorf("%w: %d of %d records after %d pages",
			ErrShortPage, it.processed, it.totalCount, it.pageNum)
	}

	it.processed += len(envelope.Records)

	if it.logger != nil && it.pageNum > 1 {
		it.logger.Debug("fetched page", map[string]interface{}{
			"page":        it.pageNum,
			"offset":      offset,
			"limit":       it.pageSize,
			"processed":   it.processed,
			"total_count": it.totalCount,
		})
	}

	return envelope.Records, nil
}

// pageQuery merges the cursor into the caller-supplied parameters. Any
// caller-supplied limit/offset values are overwritten.
func (it *PageIterator) pageQuery(offset int) url.Values {
	query := url.Values{}
	for key, values := range it.query {
		query[key] = values
	}

	query.Set("limit", strconv.Itoa(it.pageSize))
	query.Set("offset", strconv.Itoa(offset))

	return query
}

// RecordIterator flattens a PageIterator into one logical sequence of
// records, preserving page order and in-page order. Page requests are still
// issued lazily, one at a time, as the caller pulls records.
type RecordIterator struct {
	pages   *PageIterator
	current []Record
	index   int
}

// NewRecordIterator creates a flattening iterator over a page iterator.
func NewRecordIterator(pages *PageIterator) *RecordIterator {
	return &RecordIterator{pages: pages}
}

// HasNext returns true if more records may be available.
func (it *RecordIterator) HasNext() bool {
	return it.index < len(it.current) || it.pages.HasNext()
}

// Next returns the next record, fetching the next page when the current one
// is consumed. It returns ErrNoMoreItems once the listing is exhausted.
func (it *RecordIterator) Next() (Record, error) {
	for it.index >= len(it.current) {
		if !it.pages.HasNext() {
			return nil, ErrNoMoreItems
		}

		page, err := it.pages.NextPage()
		if err != nil {
			if errors.Is(err, ErrNoMorePages) {
				return nil, ErrNoMoreItems
			}

			return nil, err
		}

		it.current = page
		it.index = 0
	}

	record := it.current[it.index]
	it.index++

	return record, nil
}

// ForEach applies fn to every remaining record, stopping on the first error.
func (it *RecordIterator) ForEach(fn func(Record) error) error {
	for {
		record, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		if err := fn(record); err != nil {
			return err
		}
	}
}

// All collects every remaining record into a slice.
func (it *RecordIterator) All() ([]Record, error) {
	var records []Record

	err := it.ForEach(func(record Record) error {
		records = append(records, record)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// FetchAllRecords fetches every page of a listing and returns the flattened
// records. Convenience wrapper over the two iterator layers.
func FetchAllRecords(ctx context.Context, source PageSource, path string, query url.Values, options *PaginationOptions) ([]Record, error) {
	return NewRecordIterator(NewPageIterator(ctx, source, path, query, options)).All()
}
