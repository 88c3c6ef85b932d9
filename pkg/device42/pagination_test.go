package device42_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device42-community/d42-client/pkg/device42"
)

// fakePageSource serves a fixed set of records through the standard list
// envelope and records every request it sees.
type fakePageSource struct {
	payloadKey string
	records    []device42.Record
	totalCount int

	requests []url.Values
	err      error
}

func (f *fakePageSource) GetPage(_ context.Context, _ string, query url.Values) ([]byte, error) {
	f.requests = append(f.requests, query)

	if f.err != nil {
		return nil, f.err
	}

	offset, _ := strconv.Atoi(query.Get("offset"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	end := offset + limit
	if end > len(f.records) {
		end = len(f.records)
	}

	page := []device42.Record{}
	if offset < len(f.records) {
		page = f.records[offset:end]
	}

	envelope := map[string]interface{}{
		"offset":      offset,
		"limit":       limit,
		"total_count": f.totalCount,
		f.payloadKey:  page,
	}

	return json.Marshal(envelope)
}

func makeRecords(n int) []device42.Record {
	records := make([]device42.Record, n)
	for i := range records {
		records[i] = device42.Record{"device_id": i, "name": fmt.Sprintf("host-%03d", i)}
	}

	return records
}

func TestPageIterator_WalksAllPages(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", records: makeRecords(125), totalCount: 125}
	it := device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil)

	var total int
	var pages int

	for it.HasNext() {
		page, err := it.NextPage()
		require.NoError(t, err)

		total += len(page)
		pages++
	}

	// 125 records at the default page size of 50 is exactly three requests.
	assert.Equal(t, 3, pages)
	assert.Equal(t, 125, total)
	require.Len(t, source.requests, 3)
	assert.Equal(t, "0", source.requests[0].Get("offset"))
	assert.Equal(t, "50", source.requests[1].Get("offset"))
	assert.Equal(t, "100", source.requests[2].Get("offset"))

	for _, request := range source.requests {
		assert.Equal(t, "50", request.Get("limit"))
	}

	// Exhausted iterators stay exhausted.
	assert.False(t, it.HasNext())
	_, err := it.NextPage()
	assert.ErrorIs(t, err, device42.ErrNoMorePages)
}

func TestPageIterator_EmptyFirstPage(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", totalCount: 0}
	it := device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil)

	require.True(t, it.HasNext())

	_, err := it.NextPage()
	assert.ErrorIs(t, err, device42.ErrNoMorePages)

	// No matches is one request, not zero and not two.
	assert.Len(t, source.requests, 1)
	assert.False(t, it.HasNext())
}

func TestPageIterator_CustomPageSize(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "ips", records: makeRecords(10), totalCount: 10}
	it := device42.NewPageIterator(context.Background(), source, "/api/1.0/ips/", nil,
		&device42.PaginationOptions{PageSize: 4})

	var pages int
	for it.HasNext() {
		_, err := it.NextPage()
		require.NoError(t, err)
		pages++
	}

	assert.Equal(t, 3, pages)
	require.Len(t, source.requests, 3)
	assert.Equal(t, "4", source.requests[0].Get("limit"))
	assert.Equal(t, "8", source.requests[2].Get("offset"))
}

func TestPageIterator_OverridesCallerCursorParams(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", records: makeRecords(3), totalCount: 3}

	query := url.Values{}
	query.Set("type", "physical")
	query.Set("limit", "9999")
	query.Set("offset", "7")

	it := device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", query, nil)

	_, err := it.NextPage()
	require.NoError(t, err)

	require.Len(t, source.requests, 1)
	assert.Equal(t, "physical", source.requests[0].Get("type"))
	assert.Equal(t, "50", source.requests[0].Get("limit"))
	assert.Equal(t, "0", source.requests[0].Get("offset"))

	// The caller's query must not be mutated.
	assert.Equal(t, "9999", query.Get("limit"))
}

func TestPageIterator_ShortPage(t *testing.T) {
	t.Parallel()

	// The server claims 100 records but runs dry after 50; the iterator
	// must fail instead of spinning on empty pages.
	source := &fakePageSource{payloadKey: "devices", records: makeRecords(50), totalCount: 100}
	it := device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil)

	_, err := it.NextPage()
	require.NoError(t, err)

	_, err = it.NextPage()
	require.ErrorIs(t, err, device42.ErrShortPage)
	assert.True(t, device42.IsMalformedEnvelope(err))
	assert.False(t, it.HasNext())
}

func TestPageIterator_MaxPages(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", records: makeRecords(500), totalCount: 500}
	it := device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil,
		&device42.PaginationOptions{MaxPages: 2})

	var pages int
	for it.HasNext() {
		_, err := it.NextPage()
		require.NoError(t, err)
		pages++
	}

	assert.Equal(t, 2, pages)
	assert.Len(t, source.requests, 2)
}

func TestPageIterator_SourceError(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", err: assert.AnError}
	it := device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil)

	_, err := it.NextPage()
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, it.HasNext())
}

func TestRecordIterator_FlattensInOrder(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", records: makeRecords(125), totalCount: 125}
	it := device42.NewRecordIterator(
		device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil))

	var seen []device42.Record
	for it.HasNext() {
		record, err := it.Next()
		require.NoError(t, err)

		seen = append(seen, record)
	}

	require.Len(t, seen, 125)
	assert.Len(t, source.requests, 3)

	// Page order and in-page order are both preserved.
	for i, record := range seen {
		assert.Equal(t, fmt.Sprintf("host-%03d", i), record["name"])
	}

	_, err := it.Next()
	assert.ErrorIs(t, err, device42.ErrNoMoreItems)
}

func TestRecordIterator_LazyFetch(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", records: makeRecords(500), totalCount: 500}
	it := device42.NewRecordIterator(
		device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil))

	// Construction issues no requests.
	assert.Empty(t, source.requests)

	// Consuming ten records from a 500-record listing touches one page.
	for i := 0; i < 10; i++ {
		_, err := it.Next()
		require.NoError(t, err)
	}

	assert.Len(t, source.requests, 1)
}

func TestRecordIterator_ForEachStopsOnError(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", records: makeRecords(10), totalCount: 10}
	it := device42.NewRecordIterator(
		device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil))

	var visited int
	err := it.ForEach(func(device42.Record) error {
		visited++
		if visited == 3 {
			return assert.AnError
		}

		return nil
	})

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 3, visited)
}

func TestRecordIterator_AllEmpty(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", totalCount: 0}
	it := device42.NewRecordIterator(
		device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil))

	records, err := it.All()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchAllRecords(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "rooms", records: makeRecords(75), totalCount: 75}

	records, err := device42.FetchAllRecords(context.Background(), source, "/api/1.0/rooms/", nil, nil)
	require.NoError(t, err)
	assert.Len(t, records, 75)
	assert.Len(t, source.requests, 2)
}

func TestPageIterator_IndependentIterators(t *testing.T) {
	t.Parallel()

	source := &fakePageSource{payloadKey: "devices", records: makeRecords(5), totalCount: 5}
	first := device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil)
	second := device42.NewPageIterator(context.Background(), source, "/api/1.0/devices/", nil, nil)

	_, err := first.NextPage()
	require.NoError(t, err)

	// Draining one iterator does not advance the other.
	assert.True(t, second.HasNext())

	page, err := second.NextPage()
	require.NoError(t, err)
	assert.Len(t, page, 5)
}
