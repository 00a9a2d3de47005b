package partition

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"ParReduce/internal/types"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
		want    []types.Partition
	}{
		{
			name: "even split", n: 8, workers: 4,
			want: []types.Partition{{0, 2}, {2, 4}, {4, 6}, {6, 8}},
		},
		{
			name: "last absorbs remainder", n: 10, workers: 4,
			want: []types.Partition{{0, 2}, {2, 4}, {4, 6}, {6, 10}},
		},
		{
			name: "fewer elements than workers", n: 3, workers: 4,
			want: []types.Partition{{0, 0}, {0, 0}, {0, 0}, {0, 3}},
		},
		{
			name: "empty input", n: 0, workers: 4,
			want: []types.Partition{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
		},
		{
			name: "single worker", n: 5, workers: 1,
			want: []types.Partition{{0, 5}},
		},
		{
			name: "zero workers clamps to one", n: 5, workers: 0,
			want: []types.Partition{{0, 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.n, tt.workers)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%d, %d) mismatch (-want +got):\n%s", tt.n, tt.workers, diff)
			}
		})
	}
}

// TestSplitCoverage checks that every index in [0, n) is owned by exactly one partition.
func TestSplitCoverage(t *testing.T) {
	for n := 0; n <= 67; n++ {
		for _, workers := range []int{1, 2, 3, 4, 7, 8, 16} {
			parts := Split(n, workers)
			if len(parts) != workers {
				t.Fatalf("Split(%d, %d): got %d partitions", n, workers, len(parts))
			}
			if !Covers(parts, n) {
				t.Fatalf("Split(%d, %d) does not tile [0, n): %v", n, workers, parts)
			}

			owners := make([]int, n)
			for _, p := range parts {
				for i := p.Start; i < p.End; i++ {
					owners[i]++
				}
			}
			for i, c := range owners {
				if c != 1 {
					t.Fatalf("Split(%d, %d): index %d owned %d times", n, workers, i, c)
				}
			}
		}
	}
}

func TestCovers(t *testing.T) {
	if !Covers([]types.Partition{{0, 3}, {3, 3}, {3, 5}}, 5) {
		t.Error("expected contiguous partitions to cover")
	}
	if Covers([]types.Partition{{0, 2}, {3, 5}}, 5) {
		t.Error("gap was accepted")
	}
	if Covers([]types.Partition{{0, 3}, {2, 5}}, 5) {
		t.Error("overlap was accepted")
	}
	if Covers([]types.Partition{{0, 3}}, 5) {
		t.Error("short tiling was accepted")
	}
}
