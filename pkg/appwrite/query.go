package appwrite

import "encoding/json"

// Query 查询条件，编码为 Appwrite v1.5 的 JSON 查询串
// 例: {"method":"orderDesc","attribute":"$createdAt"}
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// Encode 编码为查询参数字符串
func (q Query) Encode() string {
	b, _ := json.Marshal(q)
	return string(b)
}

// QueryEqual 等值过滤
func QueryEqual(attribute string, value any) Query {
	return Query{Method: "equal", Attribute: attribute, Values: []any{value}}
}

// QueryOrderDesc 按字段降序
func QueryOrderDesc(attribute string) Query {
	return Query{Method: "orderDesc", Attribute: attribute}
}

// QueryOrderAsc 按字段升序
func QueryOrderAsc(attribute string) Query {
	return Query{Method: "orderAsc", Attribute: attribute}
}

// QueryLimit 限制返回条数
func QueryLimit(n int) Query {
	return Query{Method: "limit", Values: []any{n}}
}

// encodeQueries 批量编码
func encodeQueries(queries []Query) []string {
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		out = append(out, q.Encode())
	}
	return out
}
