package util

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"
)

// ErrAndExit writes a format string to stderr and then exits with a status code of 1
func ErrAndExit(format string, a ...interface{}) {
	os.Stderr.WriteString(errLine(format, a...))
	os.Exit(1)
}

// CheckErrSprintf exits with the formatted message if err is not nil
func CheckErrSprintf(err error, format string, a ...interface{}) {
	if err != nil {
		ErrAndExit(format, a...)
	}
}

func errLine(format string, a ...interface{}) string {
	out := fmt.Sprintf(format, a...)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// GetValue returns the reflect.Value of obj, dereferencing pointers
func GetValue(obj interface{}) reflect.Value {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v
}

// GetJSONField returns the struct field whose json tag (or name) matches field
func GetJSONField(obj interface{}, field string) *structs.Field {
	s := structs.New(obj)
	s.TagName = "json"
	for _, f := range s.Fields() {
		tag := strings.Split(f.Tag("json"), ",")[0]
		if tag == field || f.Name() == field {
			return f
		}
	}
	return nil
}
