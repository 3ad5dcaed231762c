package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		{"Bool < Int", FromBool(true), FromInt(1), -1},
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < String", FromFloat(1), FromString("a"), -1},
		{"String < List", FromString("a"), NewList(), -1},
		{"List < Dict", NewList(), NewDict(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float > Float", FromFloat(2.5), FromFloat(2.25), 1},
		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty List == Empty List", NewList(), NewList(), 0},
		{"Short List < Long List", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"List elements", FromSlice([]*Node{FromInt(3)}), FromSlice([]*Node{FromInt(2), FromInt(9)}), 1},

		{"Dict key order ignored",
			FromKeyVals([]KeyVal{{"a", FromInt(1)}, {"b", FromInt(2)}}),
			FromKeyVals([]KeyVal{{"b", FromInt(2)}, {"a", FromInt(1)}}),
			0},
		{"Dict value differs",
			FromKeyVals([]KeyVal{{"a", FromInt(1)}}),
			FromKeyVals([]KeyVal{{"a", FromInt(2)}}),
			-1},
		{"Dict fewer keys",
			FromKeyVals([]KeyVal{{"a", FromInt(1)}}),
			FromKeyVals([]KeyVal{{"a", FromInt(1)}, {"b", FromInt(1)}}),
			-1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare() reversed = %d, want %d", got, -tt.expected)
			}
		})
	}
}
