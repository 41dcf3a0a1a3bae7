package db_models

import (
	"reflect"
	"testing"
)

func TestImageURLsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		urls ImageURLs
		want string
	}{
		{
			name: "ordered list survives",
			urls: ImageURLs{"a.jpg", "b.jpg"},
			want: `["a.jpg","b.jpg"]`,
		},
		{
			name: "empty list encodes as empty array",
			urls: ImageURLs{},
			want: `[]`,
		},
		{
			name: "nil encodes as empty array, not null",
			urls: nil,
			want: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.urls.Value()
			if err != nil {
				t.Fatalf("Value failed: %v", err)
			}
			s, ok := v.(string)
			if !ok {
				t.Fatalf("Value returned %T, want string", v)
			}
			if s != tt.want {
				t.Errorf("encoded = %q, want %q", s, tt.want)
			}

			var decoded ImageURLs
			if err := decoded.Scan(s); err != nil {
				t.Fatalf("Scan failed: %v", err)
			}
			if len(tt.urls) == 0 {
				if len(decoded) != 0 {
					t.Errorf("decoded = %v, want empty", decoded)
				}
				return
			}
			if !reflect.DeepEqual(decoded, tt.urls) {
				t.Errorf("decoded = %v, want %v", decoded, tt.urls)
			}
		})
	}
}

func TestImageURLsScanBytesAndNil(t *testing.T) {
	var u ImageURLs
	if err := u.Scan([]byte(`["x.png","y.png","z.png"]`)); err != nil {
		t.Fatalf("Scan bytes failed: %v", err)
	}
	if len(u) != 3 || u[0] != "x.png" || u[2] != "z.png" {
		t.Errorf("decoded = %v, want ordered [x.png y.png z.png]", u)
	}

	if err := u.Scan(nil); err != nil {
		t.Fatalf("Scan nil failed: %v", err)
	}
	if u != nil {
		t.Errorf("decoded nil column = %v, want nil", u)
	}

	if err := u.Scan(42); err == nil {
		t.Error("expected error for unsupported column type")
	}
}
