package convert

import (
	"time"

	"github.com/spf13/cast"
)

// ToFloat64 容错的浮点解析
// 上游 API 的数值字段可能是 float、int 或字符串（如 "123.4"）
// 解析失败返回 nil，nil 统一表示"不可用"，不区分错误
func ToFloat64(value any) *float64 {
	if value == nil {
		return nil
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return nil
	}
	return &f
}

// ToInt 容错的整数解析，失败返回 nil
func ToInt(value any) *int {
	if value == nil {
		return nil
	}
	n, err := cast.ToIntE(value)
	if err != nil {
		return nil
	}
	return &n
}

// 上游 API 出现过的时间戳格式
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"20060102150405",
}

// ToLocalDatetime 容错地解析为带时区的时间
// 接受 time.Time、*time.Time、epoch 毫秒、字符串；不带时区的字符串按本地时区解释
// 缺失或无法解析时返回 nil
func ToLocalDatetime(value any) *time.Time {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		t := *v
		return &t
	case int64:
		return fromUnixMilli(v)
	case int:
		return fromUnixMilli(int64(v))
	case float64:
		return fromUnixMilli(int64(v))
	case string:
		if v == "" {
			return nil
		}
		for _, layout := range datetimeLayouts {
			if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
				return &t
			}
		}
		return nil
	default:
		return nil
	}
}

// fromUnixMilli 解析 epoch 毫秒时间戳
func fromUnixMilli(ms int64) *time.Time {
	if ms <= 0 {
		return nil
	}
	t := time.UnixMilli(ms)
	return &t
}
