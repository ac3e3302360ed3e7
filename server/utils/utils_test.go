package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToJSONTime(t *testing.T) {
	full := StringToJSONTime("2024-03-05 14:30:00")
	assert.Equal(t, 2024, full.Year())
	assert.Equal(t, time.March, full.Month())
	assert.Equal(t, 14, full.Hour())

	dateOnly := StringToJSONTime("2024-03-05")
	assert.Equal(t, 5, dateOnly.Day())
	assert.Equal(t, 0, dateOnly.Hour())

	garbage := StringToJSONTime("not a date")
	assert.True(t, garbage.IsZero())
}

func TestJsonTimeMarshalJSON(t *testing.T) {
	jt := NewJsonTime(time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local))
	b, err := jt.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05 14:30:00"`, string(b))
}

func TestStruct2StrArr(t *testing.T) {
	type row struct {
		Name   string
		Count  int
		Cost   float64
		Active bool
		When   JsonTime
	}
	got := Struct2StrArr(row{
		Name:   "Laptop",
		Count:  3,
		Cost:   1299.5,
		Active: true,
		When:   NewJsonTime(time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)),
	})
	assert.Equal(t, []string{"Laptop", "3", "1299.5", "true", "2024-01-02 09:00:00"}, got)
}

func TestStruct2StrArrZeroTime(t *testing.T) {
	type row struct {
		Name string
		When JsonTime
	}
	got := Struct2StrArr(row{Name: "x"})
	assert.Equal(t, []string{"x", ""}, got)
}

func TestRemoveDuplicatesAndEmpty(t *testing.T) {
	got := RemoveDuplicatesAndEmpty([]string{" a@b.c ", "", "a@b.c", "d@e.f", "  "})
	assert.Equal(t, []string{"a@b.c", "d@e.f"}, got)
}

func TestContains(t *testing.T) {
	methods := []string{"Sold", "Donated", "Scrapped"}
	assert.True(t, Contains(methods, "Donated"))
	assert.False(t, Contains(methods, "Lost"))
}

func TestEncoderRoundTrip(t *testing.T) {
	hashed, err := Encoder.Encode([]byte("secret"))
	require.NoError(t, err)
	assert.NoError(t, Encoder.Match(hashed, []byte("secret")))
	assert.Error(t, Encoder.Match(hashed, []byte("wrong")))
}

func TestStringConversions(t *testing.T) {
	assert.Equal(t, 42, StringToInt("42"))
	assert.Equal(t, 0, StringToInt("x"))
	assert.Equal(t, 3.14, StringToFloat("3.14"))
	assert.Equal(t, 0.0, StringToFloat(""))
}
