package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDecodeImageList 测试图片列表解码，坏数据返回 nil 而不是报错
func TestDecodeImageList(t *testing.T) {
	valid := `["a.jpg","b.jpg"]`
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, DecodeImageList(&valid))

	assert.Nil(t, DecodeImageList(nil))

	empty := ""
	assert.Nil(t, DecodeImageList(&empty))

	broken := `{"not":"a list"}`
	assert.Nil(t, DecodeImageList(&broken))

	garbage := `[1,2`
	assert.Nil(t, DecodeImageList(&garbage))
}
