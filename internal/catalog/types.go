package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID accepts both JSON dialects the mock service has been observed to emit:
// numeric ids and string ids. Normalized to its string form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

func (id ID) Int() (int, bool) {
	n, err := strconv.Atoi(string(id))
	return n, err == nil
}

type Category struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type Product struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	CategoryID  ID       `json:"categoryId"`
}
