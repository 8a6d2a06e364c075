package render_test

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-rendercache/pkg/blocks/icecream"
	"github.com/goliatone/go-rendercache/pkg/render"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestEncodeJSON_Snapshot(t *testing.T) {
	data, err := render.EncodeJSON(icecream.Block{}.Build())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	snaps.MatchSnapshot(t, strings.TrimSpace(string(data)))
}

func TestEncodeJSON_KeepsMarkupUnescaped(t *testing.T) {
	data, err := render.EncodeJSON(render.Spec{Markup: "<em>soon</em> & later"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(data), `"<em>soon</em> & later"`) {
		t.Fatalf("expected raw markup in output, got %s", data)
	}
}

func TestEncode_OmitsLazyBuilderWithoutCallback(t *testing.T) {
	spec := render.Spec{Markup: "static <b>banner</b>"}

	for _, format := range []render.Format{render.FormatJSON, render.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := render.Encode(spec, format)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if strings.Contains(string(data), "#lazy_builder") {
				t.Fatalf("expected no lazy builder key, got %s", data)
			}
			got, err := render.Decode(data, format)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(spec, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalJSON_PlainEncoderOmitsEmptyLazyBuilder(t *testing.T) {
	data, err := json.Marshal(render.Spec{Markup: "x"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"#create_placeholder":false,"#markup":"x"}`; got != want {
		t.Fatalf("want %s got %s", want, got)
	}

	data, err = json.Marshal(icecream.Block{}.Build())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"#lazy_builder":["icecream:lazyCallback",[]]`) {
		t.Fatalf("expected lazy builder tuple, got %s", data)
	}
}

func TestDecodeJSON_AcceptsCallbackOnlyTuple(t *testing.T) {
	spec, err := render.DecodeJSON([]byte(`{"#lazy_builder":["icecream:lazyCallback"],"#create_placeholder":true,"#markup":"hi"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := render.Spec{
		LazyBuilder:       render.NewLazyBuilder("icecream:lazyCallback"),
		CreatePlaceholder: true,
		Markup:            "hi",
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
	}{
		{name: "tuple too long", input: `{"#lazy_builder":["a:b",[],"extra"]}`},
		{name: "empty tuple", input: `{"#lazy_builder":[]}`},
		{name: "object instead of tuple", input: `{"#lazy_builder":{"callback":"a:b"}}`},
		{name: "non string callback", input: `{"#lazy_builder":[1,[]]}`},
		{name: "placeholder without callback", input: `{"#create_placeholder":true,"#markup":"x"}`, sentinel: render.ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := render.DecodeJSON([]byte(tt.input))
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	input := `
"#lazy_builder": ["shop:cartSummary", ["eur", 3]]
"#create_placeholder": true
"#markup": Loading cart
`
	spec, err := render.DecodeYAML([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := render.Spec{
		LazyBuilder:       render.NewLazyBuilder("shop:cartSummary", "eur", 3),
		CreatePlaceholder: true,
		Markup:            "Loading cart",
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML_RejectsMapping(t *testing.T) {
	_, err := render.DecodeYAML([]byte("\"#lazy_builder\": {callback: a:b}\n"))
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRoundTrip_WithArguments(t *testing.T) {
	spec := render.Spec{
		LazyBuilder: render.NewLazyBuilder("shop:cartSummary",
			"eur", 3, 1.0, 2.5, int32(-7), uint8(9), true, nil,
			[]any{1, "two", 3.25},
			map[string]any{"qty": 4, "ratio": 0.5, "tags": []any{"a", 2.0}},
		),
		CreatePlaceholder: true,
		Markup:            "Loading <strong>cart</strong>",
	}

	for _, format := range []render.Format{render.FormatJSON, render.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := render.Encode(spec, format)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := render.Decode(data, format)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(spec, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_NumbersMatchConstructedArgs(t *testing.T) {
	want := render.Spec{LazyBuilder: render.NewLazyBuilder("shop:cartSummary", 3, 1.0, 2.5)}

	tests := []struct {
		name   string
		format render.Format
		input  string
	}{
		{name: "json", format: render.FormatJSON, input: `{"#lazy_builder":["shop:cartSummary",[3,1.0,2.5]]}`},
		{name: "json exponent", format: render.FormatJSON, input: `{"#lazy_builder":["shop:cartSummary",[3e0,1,25e-1]]}`},
		{name: "yaml", format: render.FormatYAML, input: "\"#lazy_builder\": [\"shop:cartSummary\", [3, 1.0, 2.5]]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render.Decode([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(want.LazyBuilder.Args, got.LazyBuilder.Args); diff != "" {
				t.Fatalf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]render.Format{"": render.FormatJSON, "JSON": render.FormatJSON, "yml": render.FormatYAML, " yaml ": render.FormatYAML} {
		got, err := render.ParseFormat(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %s got %s", raw, want, got)
		}
	}

	if _, err := render.ParseFormat("xml"); !errors.Is(err, render.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := render.Encode(render.Spec{}, render.Format("xml")); !errors.Is(err, render.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat from Encode, got %v", err)
	}
}
