package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDisplayCodes 测试展示编号的零填充格式
func TestDisplayCodes(t *testing.T) {
	assert.Equal(t, "U00007", UserCode(7))
	assert.Equal(t, "CAT012", CategoryCode(12))
	assert.Equal(t, "C00003", CollectorCode(3))
	assert.Equal(t, "A00456", AddressCode(456))
}

// TestFormatTime 测试时间格式化，空值返回 nil
func TestFormatTime(t *testing.T) {
	assert.Nil(t, FormatDateTime(nil))
	assert.Nil(t, FormatDate(nil))
	assert.Nil(t, FormatMinute(nil))

	ts := time.Date(2026, 3, 5, 9, 8, 7, 0, time.Local)
	assert.Equal(t, "2026-03-05 09:08:07", *FormatDateTime(&ts))
	assert.Equal(t, "2026-03-05", *FormatDate(&ts))
	assert.Equal(t, "2026-03-05 09:08", *FormatMinute(&ts))
}

// TestJoinAddress 测试地址拼接跳过空段
func TestJoinAddress(t *testing.T) {
	province := "浙江省"
	city := "杭州市"
	detail := "文一西路100号"

	assert.Equal(t, "浙江省杭州市文一西路100号", JoinAddress(&province, &city, nil, &detail))
	assert.Equal(t, "", JoinAddress(nil, nil))
}
