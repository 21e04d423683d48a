package finance

import "testing"

func TestPaidTotal(t *testing.T) {
	tests := []struct {
		name     string
		payments []Payment
		want     float64
	}{
		{name: "empty", want: 0},
		{name: "nil", payments: nil, want: 0},
		{
			name:     "sums amounts",
			payments: []Payment{{Amount: 100}, {Amount: 50}},
			want:     150,
		},
		{
			name:     "order independent",
			payments: []Payment{{Amount: 50}, {Amount: 100}},
			want:     150,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaidTotal(tt.payments); got != tt.want {
				t.Errorf("PaidTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}
