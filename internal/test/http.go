package test

import (
	"encoding/json"
	"net/http/httptest"
)

// Result 与接口的统一响应结构一致
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// JSONResponseRecorder 把响应体解析为 Result[T]
type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() *JSONResponseRecorder[T] {
	return &JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

// MustScan 解析失败直接 panic，只在测试中使用
func (r *JSONResponseRecorder[T]) MustScan() Result[T] {
	var res Result[T]
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		panic(err)
	}
	return res
}
