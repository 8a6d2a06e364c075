package render_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-rendercache/pkg/render"
)

func TestParseCallbackID(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantModule string
		wantMethod string
		wantErr    bool
	}{
		{name: "canonical", raw: "icecream:lazyCallback", wantModule: "icecream", wantMethod: "lazyCallback"},
		{name: "trimmed", raw: "  icecream:lazyCallback\n", wantModule: "icecream", wantMethod: "lazyCallback"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no separator", raw: "lazyCallback", wantErr: true},
		{name: "missing module", raw: ":lazyCallback", wantErr: true},
		{name: "missing method", raw: "icecream:", wantErr: true},
		{name: "two separators", raw: "a:b:c", wantErr: true},
		{name: "inner whitespace", raw: "ice cream:lazy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := render.ParseCallbackID(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, render.ErrInvalidCallback) {
					t.Fatalf("expected ErrInvalidCallback, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if id.Module() != tt.wantModule || id.Method() != tt.wantMethod {
				t.Fatalf("unexpected halves: module=%q method=%q", id.Module(), id.Method())
			}
		})
	}
}
