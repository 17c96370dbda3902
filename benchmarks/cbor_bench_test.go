// Package benchmarks compares this module's cbor package against
// fxamacker/cbor, encoding/json and tinylib/msgp on a representative
// payload shape, mirroring the teacher's own benchmark_comparison layout.
package benchmarks

import (
	"encoding/json"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/jwolf02/boron-go/cbor"
	cborjson "github.com/jwolf02/boron-go/cbor/json"
	msgp "github.com/tinylib/msgp/msgp"
)

// testData mirrors the shape used to compare encode/decode costs across
// libraries: a flat struct with a string, numeric, bool, float, and two
// collection fields.
type testData struct {
	Name    string         `cbor:"name" json:"name" msg:"name"`
	Age     int64          `cbor:"age" json:"age" msg:"age"`
	Email   string         `cbor:"email" json:"email" msg:"email"`
	Active  bool           `cbor:"active" json:"active" msg:"active"`
	Balance float64        `cbor:"balance" json:"balance" msg:"balance"`
	Tags    []string       `cbor:"tags" json:"tags" msg:"tags"`
	Scores  map[string]int `cbor:"scores" json:"scores" msg:"scores"`
}

func sampleData() testData {
	return testData{
		Name:    "Alice",
		Age:     42,
		Email:   "alice@example.com",
		Active:  true,
		Balance: 1234.5,
		Tags:    []string{"admin", "beta"},
		Scores:  map[string]int{"math": 95, "art": 88},
	}
}

// buildItem materialises d as a tree under m, the way a caller of this
// module's arena-based API would: one map field at a time.
func buildItem(m *cbor.Model, d testData) cbor.Item {
	root, _ := m.CreateRoot(cbor.MapType)

	name, _ := root.AddChild(cbor.StringType)
	_ = name.SetString(d.Name)
	nameKey, _ := name.AddKey(cbor.StringType)
	_ = nameKey.SetString("name")

	age, _ := root.AddChild(cbor.IntegerType)
	_ = age.SetInt(d.Age)
	ageKey, _ := age.AddKey(cbor.StringType)
	_ = ageKey.SetString("age")

	email, _ := root.AddChild(cbor.StringType)
	_ = email.SetString(d.Email)
	emailKey, _ := email.AddKey(cbor.StringType)
	_ = emailKey.SetString("email")

	active, _ := root.AddChild(cbor.BoolType)
	_ = active.SetBool(d.Active)
	activeKey, _ := active.AddKey(cbor.StringType)
	_ = activeKey.SetString("active")

	balance, _ := root.AddChild(cbor.FloatType)
	_ = balance.SetFloat(d.Balance)
	balanceKey, _ := balance.AddKey(cbor.StringType)
	_ = balanceKey.SetString("balance")

	tags, _ := root.AddChild(cbor.ArrayType)
	tagsKey, _ := tags.AddKey(cbor.StringType)
	_ = tagsKey.SetString("tags")
	for _, tag := range d.Tags {
		c, _ := tags.AddChild(cbor.StringType)
		_ = c.SetString(tag)
	}

	scores, _ := root.AddChild(cbor.MapType)
	scoresKey, _ := scores.AddKey(cbor.StringType)
	_ = scoresKey.SetString("scores")
	for k, v := range d.Scores {
		c, _ := scores.AddChild(cbor.IntegerType)
		_ = c.SetInt(int64(v))
		ck, _ := c.AddKey(cbor.StringType)
		_ = ck.SetString(k)
	}

	return root
}

func BenchmarkBoron_Encode(b *testing.B) {
	d := sampleData()
	m := cbor.NewDynamicModel()
	root := buildItem(m, d)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := cbor.NewGrowingOutputBuffer()
		if err := cbor.Encode(root, out); err != nil {
			b.Fatalf("Encode: %v", err)
		}
	}
}

func BenchmarkBoron_Decode(b *testing.B) {
	d := sampleData()
	m := cbor.NewDynamicModel()
	root := buildItem(m, d)
	out := cbor.NewGrowingOutputBuffer()
	if err := cbor.Encode(root, out); err != nil {
		b.Fatalf("Encode (warmup): %v", err)
	}
	enc := out.Bytes()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dm := cbor.NewDynamicModel()
		if _, err := cbor.Decode(enc, dm); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}

func BenchmarkBoron_JSONEncode_Extended(b *testing.B) {
	d := sampleData()
	m := cbor.NewDynamicModel()
	root := buildItem(m, d)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cborjson.Encode(root, cborjson.Extended, false); err != nil {
			b.Fatalf("cborjson.Encode: %v", err)
		}
	}
}

func BenchmarkFXCBOR_Encode(b *testing.B) {
	d := sampleData()
	encMode, err := fxcbor.CanonicalEncOptions().EncMode()
	if err != nil {
		b.Fatalf("fxcbor EncMode: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := encMode.Marshal(d); err != nil {
			b.Fatalf("fxcbor Marshal: %v", err)
		}
	}
}

func BenchmarkFXCBOR_Decode(b *testing.B) {
	d := sampleData()
	encMode, err := fxcbor.CanonicalEncOptions().EncMode()
	if err != nil {
		b.Fatalf("fxcbor EncMode: %v", err)
	}
	enc, err := encMode.Marshal(d)
	if err != nil {
		b.Fatalf("fxcbor Marshal: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out testData
		if err := fxcbor.Unmarshal(enc, &out); err != nil {
			b.Fatalf("fxcbor Unmarshal: %v", err)
		}
	}
}

func BenchmarkJSONv1_Encode(b *testing.B) {
	d := sampleData()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(d); err != nil {
			b.Fatalf("json.Marshal: %v", err)
		}
	}
}

func BenchmarkJSONv1_Decode(b *testing.B) {
	d := sampleData()
	enc, err := json.Marshal(d)
	if err != nil {
		b.Fatalf("json.Marshal: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out testData
		if err := json.Unmarshal(enc, &out); err != nil {
			b.Fatalf("json.Unmarshal: %v", err)
		}
	}
}

// Msgp has no generated MarshalMsg for testData without cborgen-style code
// generation, so encode-side cost is measured via msgp's reflection-based
// AppendIntf helper, the same approach the teacher's own msgp comparison
// benchmark used.
func BenchmarkMsgp_Encode(b *testing.B) {
	d := sampleData()
	m := map[string]any{
		"name": d.Name, "age": d.Age, "email": d.Email, "active": d.Active,
		"balance": d.Balance, "tags": d.Tags, "scores": d.Scores,
	}
	b.ReportAllocs()
	b.ResetTimer()
	var out []byte
	for i := 0; i < b.N; i++ {
		var err error
		out, err = msgp.AppendIntf(out[:0], m)
		if err != nil {
			b.Fatalf("msgp AppendIntf: %v", err)
		}
	}
}
