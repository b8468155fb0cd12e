package benchmark

import (
	"encoding/json"
	"testing"

	"github.com/Jeffail/gabs/v2"
	"github.com/akshaybharambe14/ijson"
	"github.com/itchyny/gojq"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/valyala/fastjson"

	"github.com/go-jdoc/jdoc"
)

var (
	smallJSONParsed  any
	mediumJSONParsed any
	largeJSONData    []byte
	largeJSONParsed  any

	smallDoc  *jdoc.Document
	mediumDoc *jdoc.Document
	largeDoc  *jdoc.Document

	gojqUserName *gojq.Code
)

func init() {
	largeJSONData = generateLargeJSON(10000)

	if err := json.Unmarshal(smallJSON, &smallJSONParsed); err != nil {
		panic(err)
	}
	if err := json.Unmarshal(mediumJSON, &mediumJSONParsed); err != nil {
		panic(err)
	}
	if err := json.Unmarshal(largeJSONData, &largeJSONParsed); err != nil {
		panic(err)
	}

	var err error
	if smallDoc, err = jdoc.FromJSON(smallJSON); err != nil {
		panic(err)
	}
	if mediumDoc, err = jdoc.FromJSON(mediumJSON); err != nil {
		panic(err)
	}
	if largeDoc, err = jdoc.FromJSON(largeJSONData); err != nil {
		panic(err)
	}

	q, err := gojq.Parse(".users[5000].name")
	if err != nil {
		panic(err)
	}
	if gojqUserName, err = gojq.Compile(q); err != nil {
		panic(err)
	}
}

// Simple field access, small document

func BenchmarkGet_SimpleSmall_JDOC(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		smallDoc.Get("name")
	}
}

func BenchmarkGet_SimpleSmall_GJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gjson.GetBytes(smallJSON, "name")
	}
}

func BenchmarkGet_SimpleSmall_GABS(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		parsed, _ := gabs.ParseJSON(smallJSON)
		parsed.Path("name")
	}
}

func BenchmarkGet_SimpleSmall_FASTJSON(b *testing.B) {
	b.ReportAllocs()
	var p fastjson.Parser
	for i := 0; i < b.N; i++ {
		v, _ := p.ParseBytes(smallJSON)
		v.GetStringBytes("name")
	}
}

func BenchmarkGet_SimpleSmall_IJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ijson.Get(smallJSONParsed, "name")
	}
}

// Nested and array access, medium document

func BenchmarkGet_NestedMedium_JDOC(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		mediumDoc.Get("address:city")
		mediumDoc.Get("phones[1]:number")
		mediumDoc.Get("scores[2]")
	}
}

func BenchmarkGet_NestedMedium_GJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gjson.GetBytes(mediumJSON, "address.city")
		gjson.GetBytes(mediumJSON, "phones.1.number")
		gjson.GetBytes(mediumJSON, "scores.2")
	}
}

func BenchmarkGet_NestedMedium_GABS(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		parsed, _ := gabs.ParseJSON(mediumJSON)
		parsed.Path("address.city")
		parsed.Path("phones.1.number")
		parsed.Path("scores.2")
	}
}

func BenchmarkGet_NestedMedium_IJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ijson.Get(mediumJSONParsed, "address.city")
		ijson.Get(mediumJSONParsed, "phones.1.number")
		ijson.Get(mediumJSONParsed, "scores.2")
	}
}

// Deep access in a large pre-parsed document

func BenchmarkGet_LargeParsed_JDOC(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		largeDoc.Get("users[5000]:name")
	}
}

func BenchmarkGet_LargeParsed_GOJQ(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		iter := gojqUserName.Run(largeJSONParsed)
		iter.Next()
	}
}

func BenchmarkGet_LargeBytes_GJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gjson.GetBytes(largeJSONData, "users.5000.name")
	}
}

// Mutation

func BenchmarkSet_Nested_JDOC(b *testing.B) {
	b.ReportAllocs()
	d := jdoc.New()
	for i := 0; i < b.N; i++ {
		d.Set("user:profile:city", "Oslo")
		d.Set("user:tags[3]", "x")
	}
}

func BenchmarkSet_Nested_SJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		raw, _ := sjson.SetBytes([]byte(`{}`), "user.profile.city", "Oslo")
		sjson.SetBytes(raw, "user.tags.3", "x")
	}
}

func BenchmarkSet_Nested_GABS(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		parsed := gabs.New()
		parsed.SetP("Oslo", "user.profile.city")
		parsed.ArrayP("user.tags")
	}
}

func BenchmarkDelete_JDOC(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		d, _ := jdoc.FromJSON(mediumJSON)
		b.StartTimer()
		d.Delete("phones[0]")
		d.Delete("address:zip")
	}
}

func BenchmarkDelete_SJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		raw, _ := sjson.DeleteBytes(mediumJSON, "phones.0")
		sjson.DeleteBytes(raw, "address.zip")
	}
}

// Flattening

func BenchmarkFlatten_JDOC(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		mediumDoc.ListPaths()
	}
}

func BenchmarkFlatten_GABS(b *testing.B) {
	b.ReportAllocs()
	parsed, _ := gabs.ParseJSON(mediumJSON)
	for i := 0; i < b.N; i++ {
		parsed.Flatten()
	}
}

// Decode and encode round trip

func BenchmarkDecode_Medium_JDOC(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		jdoc.FromJSON(mediumJSON)
	}
}

func BenchmarkDecode_Medium_STDLIB(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v any
		json.Unmarshal(mediumJSON, &v)
	}
}

func BenchmarkEncode_Medium_JDOC(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		mediumDoc.Compact()
	}
}
