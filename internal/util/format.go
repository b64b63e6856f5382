package util

import (
	"fmt"
	"strings"
	"time"
)

// 展示编号：后台列表里用户、品类、回收员、地址都带一个零填充编号。
func UserCode(id int) string      { return fmt.Sprintf("U%05d", id) }
func CategoryCode(id int) string  { return fmt.Sprintf("CAT%03d", id) }
func CollectorCode(id int) string { return fmt.Sprintf("C%05d", id) }
func AddressCode(id int) string   { return fmt.Sprintf("A%05d", id) }

// FormatDateTime 格式化为 YYYY-MM-DD HH:MM:SS，空值返回 nil
func FormatDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04:05")
	return &s
}

// FormatDate 格式化为 YYYY-MM-DD
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// FormatMinute 格式化为 YYYY-MM-DD HH:MM，小程序列表用分钟精度
func FormatMinute(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04")
	return &s
}

// JoinAddress 拼接省市区和详细地址，跳过空段
func JoinAddress(parts ...*string) string {
	var b strings.Builder
	for _, p := range parts {
		if p != nil {
			b.WriteString(*p)
		}
	}
	return b.String()
}
