package query

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/indicator"
)

func TestArgToList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, nil},
		{"empty", "", nil},
		{"single", "1.1.1.1", []string{"1.1.1.1"}},
		{"comma", "a, b ,c", []string{"a", "b", "c"}},
		{"drops empty", "a,,b,", []string{"a", "b"}},
		{"json array", `["x", "y"]`, []string{"x", "y"}},
		{"slice any", []any{"x", 3, nil}, []string{"x", "3"}},
		{"slice string", []string{" x ", ""}, []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArgToList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ArgToList(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestArgToBoolean(t *testing.T) {
	for _, in := range []any{true, "true", "Yes", " TRUE "} {
		if got, err := ArgToBoolean(in); err != nil || !got {
			t.Errorf("ArgToBoolean(%v) = %v, %v; want true", in, got, err)
		}
	}
	for _, in := range []any{false, "false", "NO"} {
		if got, err := ArgToBoolean(in); err != nil || got {
			t.Errorf("ArgToBoolean(%v) = %v, %v; want false", in, got, err)
		}
	}
	if _, err := ArgToBoolean("maybe"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ArgToBoolean(maybe) err = %v, want ErrInvalidArgument", err)
	}
}

func TestArgToInt(t *testing.T) {
	tests := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{nil, 20, false},
		{"", 20, false},
		{"50", 50, false},
		{float64(7), 7, false},
		{3, 3, false},
		{"ten", 0, true},
		{1.5, 0, true},
		{true, 0, true},
	}
	for _, tt := range tests {
		got, err := ArgToInt(tt.in, DefaultLimit)
		if (err != nil) != tt.wantErr {
			t.Errorf("ArgToInt(%v) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ArgToInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBuildFilterDefaults(t *testing.T) {
	f, err := BuildFilter(Args{})
	if err != nil {
		t.Fatalf("BuildFilter: %v", err)
	}
	if f.Size != DefaultLimit {
		t.Errorf("Size = %d, want %d", f.Size, DefaultLimit)
	}
	if f.Query != NotRevokedQuery {
		t.Errorf("Query = %q, want %q", f.Query, NotRevokedQuery)
	}
	if f.Entities != nil || f.EntityTypes != nil || f.RelationshipNames != nil {
		t.Errorf("expected nil lists, got %+v", f)
	}
}

func TestBuildFilter(t *testing.T) {
	f, err := BuildFilter(Args{
		Entities:      "8.8.8.8,example.com",
		EntitiesTypes: "IP, STIX Malware",
		Relationships: "resolves-to",
		Limit:         "5",
		Revoked:       "true",
	})
	if err != nil {
		t.Fatalf("BuildFilter: %v", err)
	}
	if f.Query != RevokedQuery {
		t.Errorf("Query = %q, want %q", f.Query, RevokedQuery)
	}
	if f.Size != 5 {
		t.Errorf("Size = %d, want 5", f.Size)
	}
	if want := []string{"8.8.8.8", "example.com"}; !reflect.DeepEqual(f.Entities, want) {
		t.Errorf("Entities = %v, want %v", f.Entities, want)
	}
	if want := []string{"IP", "Malware"}; !reflect.DeepEqual(f.EntityTypes, want) {
		t.Errorf("EntityTypes = %v, want %v", f.EntityTypes, want)
	}
	if want := []string{"resolves-to"}; !reflect.DeepEqual(f.RelationshipNames, want) {
		t.Errorf("RelationshipNames = %v, want %v", f.RelationshipNames, want)
	}
}

func TestBuildFilterRevokedFalse(t *testing.T) {
	f, err := BuildFilter(Args{Revoked: false})
	if err != nil {
		t.Fatal(err)
	}
	if f.Query != NotRevokedQuery {
		t.Errorf("Query = %q, want %q", f.Query, NotRevokedQuery)
	}
}

func TestBuildFilterErrors(t *testing.T) {
	if _, err := BuildFilter(Args{EntitiesTypes: "Nope"}); !errors.Is(err, indicator.ErrUnknownType) {
		t.Errorf("unknown type err = %v", err)
	}
	if _, err := BuildFilter(Args{Limit: "lots"}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad limit err = %v", err)
	}
	if _, err := BuildFilter(Args{Revoked: "sometimes"}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad revoked err = %v", err)
	}
}

func TestIsVerbose(t *testing.T) {
	if v, err := (Args{}).IsVerbose(); err != nil || v {
		t.Errorf("default verbose = %v, %v", v, err)
	}
	if v, err := (Args{Verbose: "true"}).IsVerbose(); err != nil || !v {
		t.Errorf("verbose true = %v, %v", v, err)
	}
}
