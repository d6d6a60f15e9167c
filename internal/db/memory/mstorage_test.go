package memory

import (
	"context"
	"errors"
	"testing"
)

func TestSet(t *testing.T) {
	type args[T any] struct {
		key  string
		val  *T
		m    *MStorage
		opts []func(*SetOptions)
	}
	type testCase[T any] struct {
		name    string
		args    args[T]
		wantErr error
	}
	type target struct {
		Key string
		Val int
	}
	ms := NewMemStorage()
	tests := []testCase[target]{
		{
			name: "default",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 1},
				m:    ms,
				opts: nil,
			},
		}, {
			name: "duplicate records",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 2},
				m:    ms,
				opts: nil,
			},
			wantErr: ErrDuplicateKey,
		}, {
			name: "overwrite",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 3},
				m:    ms,
				opts: []func(*SetOptions){WithOverwrite()},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set[target](t.Context(), tt.args.key, tt.args.val, tt.args.m, tt.args.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: Set() error = %+v, wantErr %+v", tt.name, err, tt.wantErr)
			}

			if tt.wantErr == nil {
				val, getErr := Get[target](t.Context(), tt.args.key, tt.args.m)
				if getErr != nil {
					t.Fatal(getErr)
				}
				if val.Key != tt.args.val.Key || val.Val != tt.args.val.Val {
					t.Errorf("%s: Set() Val = %+v, want %+v", tt.name, val, tt.args.val)
				}
			}
		})
	}
}

func TestDelete(t *testing.T) {
	ms := NewMemStorage()
	if err := Set[int](t.Context(), "a", new(int), ms); err != nil {
		t.Fatal(err)
	}

	existed, err := Delete(t.Context(), "a", ms)
	if err != nil || !existed {
		t.Fatalf("Delete() = %v, %v, want true, nil", existed, err)
	}

	existed, err = Delete(t.Context(), "a", ms)
	if err != nil || existed {
		t.Fatalf("second Delete() = %v, %v, want false, nil", existed, err)
	}

	if _, getErr := Get[int](t.Context(), "a", ms); !errors.Is(getErr, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want %v", getErr, ErrNotFound)
	}
}

func TestNextIDIsMonotonic(t *testing.T) {
	ms := NewMemStorage()
	var prev uint
	for range 5 {
		id := ms.NextID()
		if id <= prev {
			t.Fatalf("NextID() = %d, previous %d", id, prev)
		}
		prev = id
	}
}

func TestCanceledContext(t *testing.T) {
	ms := NewMemStorage()
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := GetAll[int](ctx, ms); !errors.Is(err, context.Canceled) {
		t.Errorf("GetAll() error = %v, want %v", err, context.Canceled)
	}
}
