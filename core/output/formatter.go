// Package output 提供命令行结果的输出格式化。
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
)

// Format 输出格式
type Format string

const (
	// FormatJSON JSON格式（默认）
	FormatJSON Format = "json"
	// FormatPretty 美化JSON格式
	FormatPretty Format = "pretty"
	// FormatTable 表格格式
	FormatTable Format = "table"
	// FormatText 纯文本格式
	FormatText Format = "text"
)

// Formatter 输出格式化器。
// 数据输出与日志输出分流：数据走 writer（默认 stdout），
// 提示消息走 logWriter（默认 stderr），避免污染 JSON 管道。
type Formatter struct {
	format    Format
	writer    io.Writer
	logWriter io.Writer
}

// NewFormatter 创建格式化器
func NewFormatter(format Format, writer io.Writer) *Formatter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Formatter{
		format:    format,
		writer:    writer,
		logWriter: os.Stderr,
	}
}

// SetLogWriter 设置日志输出目标（默认 stderr）
func (f *Formatter) SetLogWriter(writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	f.logWriter = writer
}

// Print 按选定格式打印节点回复
func (f *Formatter) Print(data any) error {
	switch f.format {
	case FormatPretty:
		return f.printJSON(data, true)
	case FormatTable:
		return f.printTable(data)
	case FormatText:
		return f.printText(data)
	default:
		return f.printJSON(data, false)
	}
}

// printJSON 打印JSON格式
func (f *Formatter) printJSON(data any, pretty bool) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := fmt.Fprintln(f.writer, string(out)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// printTable 打印表格格式。回复字段按键名排序，输出稳定。
func (f *Formatter) printTable(data any) error {
	tw := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	defer func() {
		_ = tw.Flush()
	}()

	switch v := data.(type) {
	case map[string]any:
		return f.printMapTable(tw, v)
	case []any:
		return f.printSliceTable(tw, v)
	default:
		// 非结构化数据降级到美化JSON
		return f.printJSON(data, true)
	}
}

// printMapTable 打印两列表格: Field | Value
func (f *Formatter) printMapTable(tw *tabwriter.Writer, data map[string]any) error {
	if _, err := fmt.Fprintln(tw, "Field\tValue"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "-----\t-----"); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", key, formatValue(data[key])); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}

// printSliceTable 打印两列表格: # | Value
func (f *Formatter) printSliceTable(tw *tabwriter.Writer, data []any) error {
	if _, err := fmt.Fprintln(tw, "#\tValue"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "-\t-----"); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}
	for i, value := range data {
		if _, err := fmt.Fprintf(tw, "%d\t%s\n", i, formatValue(value)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}

// printText 打印纯文本格式
func (f *Formatter) printText(data any) error {
	if m, ok := data.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %s", k, formatValue(m[k])))
		}
		if _, err := fmt.Fprintln(f.writer, strings.Join(lines, "\n")); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintf(f.writer, "%v\n", data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// PrintError 打印错误消息（输出到 stderr，避免污染 JSON）
func (f *Formatter) PrintError(err error) {
	_, _ = fmt.Fprintf(f.logWriter, "错误: %v\n", err)
}

// PrintInfo 打印信息消息（输出到 stderr，避免污染 JSON）
func (f *Formatter) PrintInfo(message string) {
	_, _ = fmt.Fprintln(f.logWriter, message)
}

// formatValue 格式化单个取值
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return "-"
	case float64:
		// 节点协议中的数值普遍以字符串出现，浮点只来自 JSON 数字字面量
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
