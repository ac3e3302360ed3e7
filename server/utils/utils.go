package utils

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

type JsonTime struct {
	time.Time
}

func NewJsonTime(t time.Time) JsonTime {
	return JsonTime{
		Time: t,
	}
}

func NowJsonTime() JsonTime {
	return JsonTime{
		Time: time.Now(),
	}
}

// StringToJSONTime parses "2006-01-02 15:04:05" in local time, falling back
// to the date-only form used by import files.
func StringToJSONTime(str string) JsonTime {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", str, time.Local)
	if err != nil {
		t, _ = time.ParseInLocation("2006-01-02", str, time.Local)
	}
	return JsonTime{Time: t}
}

func (t JsonTime) MarshalJSON() ([]byte, error) {
	var stamp = fmt.Sprintf("\"%s\"", t.Format("2006-01-02 15:04:05"))
	return []byte(stamp), nil
}

func (t JsonTime) Value() (driver.Value, error) {
	var zeroTime time.Time
	if t.Time.UnixNano() == zeroTime.UnixNano() {
		return nil, nil
	}
	return t.Time, nil
}

func (t *JsonTime) Scan(v interface{}) error {
	value, ok := v.(time.Time)
	if ok {
		*t = JsonTime{Time: value}
		return nil
	}
	return fmt.Errorf("can not convert %v to timestamp", v)
}

type Bcrypt struct {
	cost int
}

func (b *Bcrypt) Encode(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, b.cost)
}

func (b *Bcrypt) Match(hashedPassword, password []byte) error {
	return bcrypt.CompareHashAndPassword(hashedPassword, password)
}

var Encoder = Bcrypt{
	cost: bcrypt.DefaultCost,
}

func UUID() string {
	v4, _ := uuid.NewV4()
	return v4.String()
}

// Struct2StrArr flattens a flat struct into its string representation,
// column order follows field order. Used by the Excel/CSV exports.
func Struct2StrArr(data interface{}) []string {
	var result []string
	getValue := reflect.ValueOf(data)
	for j := 0; j < getValue.NumField(); j++ {
		switch getValue.Field(j).Kind() {
		case reflect.String:
			result = append(result, getValue.Field(j).String())
		case reflect.Int:
			result = append(result, strconv.Itoa(int(getValue.Field(j).Int())))
		case reflect.Int64:
			result = append(result, strconv.FormatInt(getValue.Field(j).Int(), 10))
		case reflect.Float64:
			result = append(result, strconv.FormatFloat(getValue.Field(j).Float(), 'f', -1, 64))
		case reflect.Bool:
			result = append(result, strconv.FormatBool(getValue.Field(j).Bool()))
		case reflect.Struct:
			if jt, ok := getValue.Field(j).Interface().(JsonTime); ok {
				if jt.IsZero() {
					result = append(result, "")
				} else {
					result = append(result, jt.Format("2006-01-02 15:04:05"))
				}
			}
		}
	}
	return result
}

func RemoveDuplicatesAndEmpty(data []string) (result []string) {
	result = make([]string, 0)
	strMap := make(map[string]bool)
	for i := range data {
		data[i] = strings.TrimSpace(data[i])
		if data[i] == "" {
			continue
		}
		if _, ok := strMap[data[i]]; ok {
			continue
		}
		strMap[data[i]] = true
		result = append(result, data[i])
	}
	return result
}

func Contains(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}

func StringToInt(in string) (out int) {
	out, _ = strconv.Atoi(in)
	return
}

func StringToFloat(in string) (out float64) {
	out, _ = strconv.ParseFloat(in, 64)
	return
}
