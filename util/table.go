package util

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v2"
)

var out io.Writer

func init() {
	out = os.Stdout
}

// SetOut is used by unit tests to change where we're writing
func SetOut(newOut io.Writer) {
	out = newOut
}

// ObjField references a field to print.
// Name is the name of the field, which will print on the left side of table.
// Field is the field to lookup in the object, by json tag for structs.
// Transform is a function which will transform the given field value.
type ObjField struct {
	Name      string
	Field     string
	Transform func(interface{}) string
}

// PrintObj prints a struct as a two column key/value table. Best effort.
//
// key:   value
// key:   value
func PrintObj(fields []ObjField, obj interface{}) error {
	if GetValue(obj).Kind() != reflect.Struct {
		_, err := fmt.Fprintf(out, "%v\n", obj)
		return err
	}

	table := tablewriter.NewWriter(out)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: false, Top: false, Right: false, Bottom: false})
	table.SetColumnSeparator("  ")
	table.SetCenterSeparator("  ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, field := range fields {
		v := getFieldValue(obj, field)
		if v == nil {
			continue
		}
		if field.Transform != nil {
			table.Append([]string{color.GreenString("%s:", field.Name), field.Transform(v)})
			continue
		}
		table.Append([]string{color.GreenString("%s:", field.Name), formatValue(v)})
	}
	table.Render()
	return nil
}

// PrintYAML writes obj as YAML
func PrintYAML(obj interface{}) error {
	b, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}

func formatValue(v interface{}) string {
	switch v.(type) {
	case int, int32, int64, uint, uint32, uint64, float32, float64:
		return color.HiBlueString("%v", v)
	}
	return fmt.Sprintf("%v", v)
}

func getFieldValue(obj interface{}, field ObjField) interface{} {
	f := field.Field
	if f == "" {
		f = field.Name
	}
	sf := GetJSONField(obj, f)
	if sf == nil {
		return nil
	}
	return sf.Value()
}
