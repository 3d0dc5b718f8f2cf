package service

import (
	"context"
	"errors"
	"testing"
)

func TestFlagService_Receive(t *testing.T) {
	cases := []struct {
		name    string
		flag    any
		wantErr bool
	}{
		{name: "string", flag: "FLAG{abc}"},
		{name: "number", flag: float64(1)},
		{name: "true", flag: true},
		{name: "object", flag: map[string]any{"k": "v"}},
		{name: "nil", flag: nil, wantErr: true},
		{name: "empty string", flag: "", wantErr: true},
		{name: "false", flag: false, wantErr: true},
		{name: "zero", flag: float64(0), wantErr: true},
		{name: "empty object", flag: map[string]any{}, wantErr: true},
		{name: "empty list", flag: []any{}, wantErr: true},
	}

	svc := NewFlagService()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Receive(context.Background(), tc.flag)
			if tc.wantErr {
				if !errors.Is(err, ErrMissingFlag) {
					t.Fatalf("expected ErrMissingFlag, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got == nil {
				t.Fatalf("expected echoed flag")
			}
		})
	}
}
