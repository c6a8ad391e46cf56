package luhn

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{
			name:   "Valid number 79927398713",
			number: "79927398713",
			want:   true,
		},
		{
			name:   "Valid Visa 4556013050312704",
			number: "4556013050312704",
			want:   true,
		},
		{
			name:   "Valid Mastercard with spaces",
			number: "5232 7661 6131 6539",
			want:   true,
		},
		{
			name:   "Valid Voyager with irregular grouping",
			number: "86996 1472 21833 1",
			want:   true,
		},
		{
			name:   "Invalid Visa 4111111111111112",
			number: "4111111111111112",
			want:   false,
		},
		{
			name:   "Invalid number 79927398714",
			number: "79927398714",
			want:   false,
		},
		{
			name:   "Invalid Diners Club",
			number: "3000 0000 0000 05",
			want:   false,
		},
		{
			name:   "Empty string",
			number: "",
			want:   true,
		},
		{
			name:   "Only spaces",
			number: "   ",
			want:   true,
		},
		{
			name:   "String with letters",
			number: "4556a13050312704",
			want:   false,
		},
		{
			name:   "Letter at the end",
			number: "455601305031270x",
			want:   false,
		},
		{
			name:   "Single digit 0",
			number: "0",
			want:   true,
		},
		{
			name:   "Single digit 1",
			number: "1",
			want:   false,
		},
		{
			name:   "All zeros",
			number: "0000000000000000",
			want:   true,
		},
		{
			name:   "Dashes are not stripped",
			number: "4556-0130-5031-2704",
			want:   false,
		},
		{
			name:   "Tab is not stripped",
			number: "4556\t013050312704",
			want:   false,
		},
		{
			name:   "Non-ASCII digit",
			number: "455601305031270٤",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.number); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{digits: "", want: 0},
		{digits: "0", want: 0},
		{digits: "18", want: 10}, // 1*2=2, 8
		{digits: "59", want: 10}, // 5*2=10-9=1, 9
		{digits: "91", want: 10}, // 9*2=18-9=9, 1
		{digits: "79927398713", want: 70},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			if got := Checksum(tt.digits); got != tt.want {
				t.Errorf("Checksum(%q) = %d, want %d", tt.digits, got, tt.want)
			}
		})
	}
}

func TestIsDigits(t *testing.T) {
	if !IsDigits("0123456789") {
		t.Error("IsDigits(\"0123456789\") = false, want true")
	}
	if !IsDigits("") {
		t.Error("IsDigits(\"\") = false, want true")
	}
	if IsDigits("12 34") {
		t.Error("IsDigits(\"12 34\") = true, want false")
	}
}

func BenchmarkValidate(b *testing.B) {
	validNumbers := []string{
		"79927398713",
		"4556013050312704",
		"5232 7661 6131 6539",
		"3717 926525 53960",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Validate(validNumbers[i%len(validNumbers)])
	}
}
