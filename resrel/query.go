package resrel

import (
	"net/url"
	"strconv"
)

// Query-string construction for list endpoints. Only set fields are
// appended; the zero value of an option means "don't send the parameter".

func setInt(v url.Values, key string, n int) {
	if n > 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

func setString(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}

func setBool(v url.Values, key string, b *bool) {
	if b != nil {
		v.Set(key, strconv.FormatBool(*b))
	}
}

// ListOptions is the pagination subset shared by most list endpoints.
type ListOptions struct {
	Page    int
	PerPage int
	Limit   int
}

func (o *ListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "page", o.Page)
	setInt(v, "per_page", o.PerPage)
	setInt(v, "limit", o.Limit)
	return v
}

// listQuery turns options into RequestOptions, or nil when empty.
func listQuery(v url.Values) *RequestOptions {
	if len(v) == 0 {
		return nil
	}
	return &RequestOptions{Query: v}
}
