package decoder

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"marvel-metadata/core/jsonvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, doc string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Parse([]byte(doc))
	require.NoError(t, err)
	return v
}

func wrapPool(pool string) string {
	return `{"type":"data","nodes":[{"type":"skip"},null,{"type":"data","data":` + pool + `}]}`
}

func TestDecode_EndToEnd(t *testing.T) {
	pool := `["Avengers","(2012)","#1","https://www.marvel.com/comics/issue/12345",` +
		`{"title":0,"year":1},12345,null,true,{"id":12345,"title":0,"detailUrl":3}]`

	res, err := Decode(strings.NewReader(wrapPool(pool)), nil, Options{})
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)

	issue := res.Issues[0]
	assert.Equal(t, "Avengers", issue.Title)
	assert.Equal(t, "https://www.marvel.com/comics/issue/12345", issue.DetailURL)
	assert.Nil(t, issue.YearPage)

	assert.Equal(t, 9, res.Diagnostics.PoolSize)
	assert.Equal(t, 1, res.Diagnostics.Candidates)
	assert.Equal(t, 1, res.Diagnostics.Decoded)
	assert.Equal(t, 0, res.Diagnostics.Dropped)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"nodes": [`), nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse payload")
}

func TestDecodePayload_PoolNotFound(t *testing.T) {
	_, err := DecodePayload(parse(t, `{"nodes":[],"other":[1,2,3]}`), nil, Options{})
	assert.ErrorIs(t, err, ErrPoolNotFound)
}

func TestExtractIssues_FullRecord(t *testing.T) {
	pool := parse(t, `[
		{"id":1,"digitalId":2,"title":3,"detailUrl":4,"issue":5,"description":6,"pageCount":7,
		 "series":8,"dates":9,"creators":10,"cover":11},
		42,
		7001,
		"Avengers (2012) #1",
		"http://marvel.com/comics/issue/42/avengers_2012_1",
		"1",
		"Earth's mightiest.",
		32,
		{"id":16450,"name":3},
		{"onSale":12,"unlimited":null},
		{"items":[{"id":13,"name":14,"role":15},{"id":13,"name":14,"role":"editor"},{"id":13,"name":14,"role":18}]},
		{"path":16,"extension":17},
		"2012-05-02",
		24,
		"Jonathan Hickman",
		3,
		"http://i.annihil.us/u/prod/marvel/i/mg/1/2",
		"jpg",
		99
	]`)
	year := 2012

	res := ExtractIssues(pool, &year, Options{})
	require.Len(t, res.Issues, 1)
	issue := res.Issues[0]

	assert.Equal(t, int64(42), issue.ID)
	require.NotNil(t, issue.DigitalID)
	assert.Equal(t, int64(7001), *issue.DigitalID)
	assert.Equal(t, "Avengers (2012) #1", issue.Title)
	assert.Equal(t, "https://www.marvel.com/comics/issue/42/avengers_2012_1", issue.DetailURL)
	require.NotNil(t, issue.Issue)
	assert.Equal(t, "1", *issue.Issue)
	require.NotNil(t, issue.PageCount)
	assert.Equal(t, int64(32), *issue.PageCount)

	require.NotNil(t, issue.Series)
	assert.Equal(t, "Avengers (2012) #1", issue.Series.Name)

	require.NotNil(t, issue.Dates)
	require.NotNil(t, issue.Dates.OnSale)
	assert.Equal(t, "2012-05-02", *issue.Dates.OnSale)
	assert.Nil(t, issue.Dates.Unlimited)

	require.Len(t, issue.Creators, 3)
	assert.Equal(t, "Jonathan Hickman", issue.Creators[0].Name)
	assert.Equal(t, "writer", issue.Creators[0].Role)
	assert.Equal(t, "editor", issue.Creators[1].Role)
	assert.Equal(t, "unknown (99)", issue.Creators[2].Role)

	require.NotNil(t, issue.Cover)
	require.NotNil(t, issue.Cover.Ext)
	assert.Equal(t, "jpg", *issue.Cover.Ext)

	require.NotNil(t, issue.YearPage)
	assert.Equal(t, 2012, *issue.YearPage)
}

func TestExtractIssues_RejectsNonReferenceCandidates(t *testing.T) {
	pool := parse(t, `["x", {"detailUrl":"not_int","title":1}, {"detailUrl":0}, {"detailUrl":1.5,"title":0}]`)

	res := ExtractIssues(pool, nil, Options{})
	assert.Empty(t, res.Issues)
	assert.Equal(t, 0, res.Diagnostics.Candidates)
}

func TestExtractIssues_DropsWhenFieldsAreNotStrings(t *testing.T) {
	pool := parse(t, `[5, "https://www.marvel.com/comics/issue/1", {"title":0,"detailUrl":1}, {"title":1,"detailUrl":1}]`)

	res := ExtractIssues(pool, nil, Options{})
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "https://www.marvel.com/comics/issue/1", res.Issues[0].Title)
	assert.Equal(t, 2, res.Diagnostics.Candidates)
	assert.Equal(t, 1, res.Diagnostics.Dropped)
	assert.Equal(t, 0, res.Diagnostics.DepthExceeded)
}

func TestExtractIssues_OutOfRangeReference(t *testing.T) {
	pool := parse(t, `["A #1", "https://www.marvel.com/comics/issue/1", {"title":0,"detailUrl":1,"description":99}]`)

	res := ExtractIssues(pool, nil, Options{})
	require.Len(t, res.Issues, 1)
	assert.Nil(t, res.Issues[0].Description)
	assert.Equal(t, 1, res.Diagnostics.OutOfRangeRefs)
}

func TestExtractIssues_OutOfRangeRequiredFieldDrops(t *testing.T) {
	pool := parse(t, `["A #1", {"title":0,"detailUrl":50}]`)

	res := ExtractIssues(pool, nil, Options{})
	assert.Empty(t, res.Issues)
	assert.Equal(t, 1, res.Diagnostics.Dropped)
}

func TestExtractIssues_CycleHitsDepthCeiling(t *testing.T) {
	pool := parse(t, `[[0], "https://www.marvel.com/comics/issue/1", {"title":0,"detailUrl":1}, "B #2", {"title":3,"detailUrl":1}]`)

	res := ExtractIssues(pool, nil, Options{MaxDepth: 16})
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "B #2", res.Issues[0].Title)
	assert.Equal(t, 1, res.Diagnostics.Dropped)
	assert.Equal(t, 1, res.Diagnostics.DepthExceeded)
}

func TestExtractIssues_KeepsDuplicatesInPoolOrder(t *testing.T) {
	pool := parse(t, `["A #1", "B #1", "https://www.marvel.com/x",
		{"id":2,"title":1,"detailUrl":2}, {"id":2,"title":0,"detailUrl":2}]`)

	res := ExtractIssues(pool, nil, Options{})
	require.Len(t, res.Issues, 2)
	assert.Equal(t, "B #1", res.Issues[0].Title)
	assert.Equal(t, "A #1", res.Issues[1].Title)
}

func TestLocatePool_Conventional(t *testing.T) {
	pool, err := LocatePool(parse(t, wrapPool(`[1,2,3]`)), Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, pool.Len())
}

func TestLocatePool_FallbackPicksLongest(t *testing.T) {
	payload := parse(t, `{
		"a": {"inner": [{"detailUrl":0,"title":0}]},
		"b": ["u", {"detailUrl":0,"title":0}, "x"],
		"c": ["no", "refs", "here", "at", "all"]
	}`)

	pool, err := LocatePool(payload, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, pool.Len())
	first, _ := pool.Index(0)
	s, _ := first.AsString()
	assert.Equal(t, "u", s)
}

func TestLocatePool_FallbackTieKeepsFirst(t *testing.T) {
	payload := parse(t, `{"nodes":[{"data":{"x":["first",{"detailUrl":1}]}},{"data":["second",{"detailUrl":1}]}]}`)

	pool, err := LocatePool(payload, Options{})
	require.NoError(t, err)
	first, _ := pool.Index(0)
	s, _ := first.AsString()
	assert.Equal(t, "first", s)
}

func TestLocatePool_NotFound(t *testing.T) {
	_, err := LocatePool(parse(t, `{"nodes":[{"data":["a",{"detailUrl":"resolved"}]}]}`), Options{})
	assert.ErrorIs(t, err, ErrPoolNotFound)
}

func TestLocatePool_DepthCeiling(t *testing.T) {
	doc := strings.Repeat("[", 40) + strings.Repeat("]", 40)

	_, err := LocatePool(parse(t, doc), Options{MaxDepth: 10})
	assert.ErrorIs(t, err, ErrResolutionDepthExceeded)
}

func TestResolver_Primitives(t *testing.T) {
	pool := []jsonvalue.Value{jsonvalue.String("zero"), jsonvalue.Int(0)}
	r := NewResolver(pool, Options{})

	for _, v := range []jsonvalue.Value{jsonvalue.Null(), jsonvalue.Bool(true), jsonvalue.String("s"), jsonvalue.Float(1.5)} {
		got, err := r.Resolve(v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := r.Resolve(jsonvalue.Int(0))
	require.NoError(t, err)
	s, _ := got.AsString()
	assert.Equal(t, "zero", s)

	// A primitive pool entry is final even when it is itself an integer.
	got, err = r.Resolve(jsonvalue.Int(1))
	require.NoError(t, err)
	i, _ := got.AsInt()
	assert.Equal(t, int64(0), i)

	got, err = r.Resolve(jsonvalue.Int(-1))
	require.NoError(t, err)
	assert.True(t, got.IsNull())
	assert.Equal(t, 1, r.OutOfRange())
}

func TestResolver_NestedContainers(t *testing.T) {
	pool := parse(t, `["a", [0, 3], {"k": 1}]`).Items()
	r := NewResolver(pool, Options{})

	got, err := r.Resolve(jsonvalue.Int(2))
	require.NoError(t, err)

	out, err := got.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":["a",null]}`, string(out))
	assert.Equal(t, 1, r.OutOfRange())
}

func TestExtractIssues_SharedReferenceChain(t *testing.T) {
	// Every entry references the next one twice: [[1,1],[2,2],...,[40,40],"leaf",...].
	const links = 40
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < links; i++ {
		sb.WriteString("[" + strconv.Itoa(i+1) + "," + strconv.Itoa(i+1) + "],")
	}
	sb.WriteString(`"leaf","https://www.marvel.com/comics/issue/1",`)
	sb.WriteString(`{"title":0,"detailUrl":` + strconv.Itoa(links+1) + `},`)
	sb.WriteString(`{"title":` + strconv.Itoa(links) + `,"detailUrl":` + strconv.Itoa(links+1) + `}]`)
	pool := parse(t, sb.String())

	done := make(chan Result, 1)
	go func() { done <- ExtractIssues(pool, nil, Options{}) }()

	var res Result
	select {
	case res = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("resolution did not finish")
	}

	// The chain resolves to a non-string title; the direct reference keeps the leaf.
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "leaf", res.Issues[0].Title)
	assert.Equal(t, 2, res.Diagnostics.Candidates)
	assert.Equal(t, 1, res.Diagnostics.Dropped)
	assert.Equal(t, 0, res.Diagnostics.DepthExceeded)
}

func TestResolver_SharedEntryCountsEveryReference(t *testing.T) {
	pool := parse(t, `[[99], {"a":0,"b":0}]`).Items()
	r := NewResolver(pool, Options{})

	got, err := r.Resolve(jsonvalue.Int(1))
	require.NoError(t, err)

	out, err := got.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[null],"b":[null]}`, string(out))
	assert.Equal(t, 2, r.OutOfRange())
}

func TestResolver_SharedEntryStillBoundedByDepth(t *testing.T) {
	// pool[0] is four levels deep; pool[1] wraps it once more.
	pool := parse(t, `[[[[[1.5]]]], [0]]`).Items()
	r := NewResolver(pool, Options{MaxDepth: 4})

	_, err := r.Resolve(jsonvalue.Int(0))
	require.NoError(t, err)

	// Reused at depth one, its deepest level would sit at depth four.
	_, err = r.Resolve(jsonvalue.Int(1))
	assert.ErrorIs(t, err, ErrResolutionDepthExceeded)

	// A fresh resolver reaches the same verdict without the cache.
	_, err = NewResolver(pool, Options{MaxDepth: 4}).Resolve(jsonvalue.Int(1))
	assert.ErrorIs(t, err, ErrResolutionDepthExceeded)
}

func TestResolver_SelfReference(t *testing.T) {
	pool := parse(t, `[{"next":1}, [0]]`).Items()
	r := NewResolver(pool, Options{})

	_, err := r.Resolve(jsonvalue.Int(0))
	assert.ErrorIs(t, err, ErrResolutionDepthExceeded)
}

func TestRoleName(t *testing.T) {
	assert.Equal(t, "penciler", RoleName(jsonvalue.Int(1)))
	assert.Equal(t, "penciler (cover)", RoleName(jsonvalue.Int(8)))
	assert.Equal(t, "unknown (0)", RoleName(jsonvalue.Int(0)))
	assert.Equal(t, "Writer", RoleName(jsonvalue.String("Writer")))
	assert.Equal(t, "", RoleName(jsonvalue.Null()))
}
