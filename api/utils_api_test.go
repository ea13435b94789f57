package api

import "testing"

func TestValidateSetup(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		lengths []int
		wantErr bool
	}{
		{name: "standard setup", size: 10, lengths: []int{5, 4, 3, 3, 2}},
		{name: "largest fleet", size: maxBoardSize, lengths: make([]int, maxFleetSize)},
		{name: "zero size", size: 0, wantErr: true},
		{name: "board too large", size: maxBoardSize + 1, wantErr: true},
		{name: "negative length", size: 10, lengths: []int{3, -1}, wantErr: true},
		{name: "fleet too large", size: 10, lengths: make([]int, maxFleetSize+1), wantErr: true},
		{name: "huge fleet", size: maxBoardSize, lengths: make([]int, 1000000), wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validateSetup(test.size, test.lengths)
			if test.wantErr != (err != nil) {
				t.Fatalf("expected error: %t\tgot: %v", test.wantErr, err)
			}
		})
	}
}
